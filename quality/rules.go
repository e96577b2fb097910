package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf16"
)

// Contractions the brand voice expects to see. Matched case-insensitively as
// substrings; every occurrence counts.
var Contractions = []string{
	"we're", "you're", "they're", "it's", "that's",
	"we'll", "you'll", "they'll",
	"we've", "you've", "they've",
	"don't", "won't", "can't", "shouldn't", "wouldn't",
	"there's", "here's", "what's", "isn't", "aren't",
}

// ProhibitedPhrases are formal or negative phrasings that must not appear.
var ProhibitedPhrases = []string{
	"please be advised", "kindly note", "we wish to inform you",
	"pursuant to", "hereby", "heretofore", "disruptive",
}

// DiscouragedWords are flagged only as whole words.
var DiscouragedWords = []string{"easy", "quick", "just", "simply"}

var genericGreetings = []string{"hello", "hi there", "dear"}

// Penalties, in rule order.
const (
	penaltyNoContractions  = 15
	penaltyFewContractions = 5
	penaltyEmDash          = 20
	penaltySemicolon       = 10
	penaltyProhibited      = 15
	penaltyDiscouraged     = 5
	penaltyGreeting        = 5
	penaltyManyBullets     = 15
	penaltySomeBullets     = 5
	penaltyPassive         = 5
)

const (
	// Lines of this many UTF-16 code units or fewer do not count as content.
	minContentLineLength = 20
	fewContractions      = 3
	majorRatioThreshold  = 0.6
	minorRatioThreshold  = 0.8
	maxPassiveMatches    = 3
)

var (
	bulletLine   = regexp.MustCompile(`(?m)^\s*[-•*]\s`)
	passiveVoice = regexp.MustCompile(`(?i)\b(was|were|been|being)\s+\w+ed\b`)
	discouraged  = compileWholeWords(DiscouragedWords)
)

func compileWholeWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// rule inspects the draft, records what it saw on the report and returns the
// penalty and issue text, or zero and "" when it does not apply.
type rule func(d *draftText, r *Report) (int, string)

// rules is evaluated in this order; issues keep it.
var rules = []rule{
	checkContractions,
	checkEmDashes,
	checkSemicolons,
	checkProhibited,
	checkDiscouraged,
	checkGreeting,
	checkParagraphRatio,
	checkPassiveVoice,
}

type draftText struct {
	raw   string
	lower string
}

func checkContractions(d *draftText, r *Report) (int, string) {
	count := 0
	for _, c := range Contractions {
		count += strings.Count(d.lower, c)
	}
	r.Metrics.Contractions = count
	r.Flags.HasContractions = count > 0

	switch {
	case count == 0:
		return penaltyNoContractions, "No contractions detected, sounds too formal"
	case count < fewContractions:
		return penaltyFewContractions, fmt.Sprintf("Only %d contractions, use more for conversational flow", count)
	}
	return 0, ""
}

func checkEmDashes(d *draftText, r *Report) (int, string) {
	r.Flags.HasEmDashes = strings.Contains(d.raw, "—") || strings.Contains(d.raw, "--")
	if r.Flags.HasEmDashes {
		return penaltyEmDash, "Contains em dashes (—), strictly prohibited"
	}
	return 0, ""
}

func checkSemicolons(d *draftText, r *Report) (int, string) {
	r.Metrics.HasSemicolons = strings.Contains(d.raw, ";")
	if r.Metrics.HasSemicolons {
		return penaltySemicolon, "Contains semicolons, avoid in external communications"
	}
	return 0, ""
}

func checkProhibited(d *draftText, r *Report) (int, string) {
	var found []string
	for _, p := range ProhibitedPhrases {
		if strings.Contains(d.lower, p) {
			found = append(found, p)
		}
	}
	r.Metrics.ProhibitedPhrases = found
	r.Flags.HasProhibitedPhrases = len(found) > 0
	if len(found) == 0 {
		return 0, ""
	}
	return penaltyProhibited, "Prohibited phrases: " + strings.Join(found, ", ")
}

func checkDiscouraged(d *draftText, r *Report) (int, string) {
	var found []string
	for i, re := range discouraged {
		if re.MatchString(d.raw) {
			found = append(found, DiscouragedWords[i])
		}
	}
	r.Metrics.DiscouragedWords = found
	if len(found) == 0 {
		return 0, ""
	}
	return penaltyDiscouraged, "Discouraged words: " + strings.Join(found, ", ")
}

func checkGreeting(d *draftText, r *Report) (int, string) {
	first, _, _ := strings.Cut(strings.TrimSpace(d.lower), "\n")
	for _, g := range genericGreetings {
		if strings.Contains(first, g) {
			r.Metrics.GenericGreeting = true
			return penaltyGreeting, "Generic greeting, open with 'Ahoy!' or go straight to the point"
		}
	}
	return 0, ""
}

func checkParagraphRatio(d *draftText, r *Report) (int, string) {
	bullets := len(bulletLine.FindAllStringIndex(d.raw, -1))
	content := 0
	for _, line := range strings.Split(d.raw, "\n") {
		if utf16Len(strings.TrimSpace(line)) > minContentLineLength {
			content++
		}
	}
	r.Metrics.Bullets = bullets
	r.Metrics.ContentLines = content

	ratio := 1.0
	if content > 0 {
		ratio = float64(content-bullets) / float64(content)
	}
	// Short bullet lines are counted but not treated as content, so the raw
	// ratio can drop below zero.
	ratio = math.Max(0, ratio)
	r.Flags.ParagraphRatio = ratio

	pct := math.Round(ratio * 100)
	switch {
	case ratio < majorRatioThreshold:
		return penaltyManyBullets, fmt.Sprintf("Too many bullets (%.0f%% paragraphs), default to narrative", pct)
	case ratio < minorRatioThreshold:
		return penaltySomeBullets, fmt.Sprintf("Could use more narrative (%.0f%% paragraphs)", pct)
	}
	return 0, ""
}

func checkPassiveVoice(d *draftText, r *Report) (int, string) {
	count := len(passiveVoice.FindAllStringIndex(d.raw, -1))
	r.Metrics.PassiveVoice = count
	if count > maxPassiveMatches {
		return penaltyPassive, fmt.Sprintf("Possible passive voice (%d instances), use active voice", count)
	}
	return 0, ""
}

// utf16Len counts astral characters such as emoji as two units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
