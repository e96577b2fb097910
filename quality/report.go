// Package quality scores a draft against the brand voice rubric using fixed
// string and regex heuristics. Scoring is pure: the same draft always yields
// the same Report.
package quality

import (
	"fmt"
	"strings"
)

// MaxScore is the starting score before penalties.
const MaxScore = 100

// Report is the outcome of scoring one draft.
type Report struct {
	Score   int      `json:"score"`
	Issues  []string `json:"issues"`
	Flags   Flags    `json:"flags"`
	Metrics Metrics  `json:"metrics"`
}

// Flags are the values written back to the record.
type Flags struct {
	HasContractions      bool    `json:"has_contractions"`
	HasEmDashes          bool    `json:"has_em_dashes"`
	HasProhibitedPhrases bool    `json:"has_prohibited_phrases"`
	ParagraphRatio       float64 `json:"paragraph_ratio"`
}

// Metrics are informational and never change the score by themselves.
type Metrics struct {
	Contractions      int      `json:"contractions"`
	HasSemicolons     bool     `json:"has_semicolons"`
	ProhibitedPhrases []string `json:"prohibited_phrases,omitempty"`
	DiscouragedWords  []string `json:"discouraged_words,omitempty"`
	GenericGreeting   bool     `json:"generic_greeting"`
	Bullets           int      `json:"bullets"`
	ContentLines      int      `json:"content_lines"`
	PassiveVoice      int      `json:"passive_voice"`
}

// Score runs every rule once, in order, and sums the penalties.
func Score(draft string) Report {
	d := &draftText{raw: draft, lower: strings.ToLower(draft)}
	r := Report{Issues: []string{}}

	total := 0
	for _, check := range rules {
		penalty, issue := check(d, &r)
		if penalty == 0 {
			continue
		}
		total += penalty
		r.Issues = append(r.Issues, issue)
	}
	r.Score = max(0, MaxScore-total)
	return r
}

// Rating buckets a score for people. It does not feed back into the score.
func Rating(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Needs Improvement"
	default:
		return "Significant Issues"
	}
}

// Summary renders the report as the text stored in the issues field.
func (r Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d/%d)\n\n", Rating(r.Score), r.Score, MaxScore)
	if len(r.Issues) == 0 {
		sb.WriteString("All brand voice guidelines followed!")
		return sb.String()
	}
	sb.WriteString("Issues to address:")
	for _, issue := range r.Issues {
		sb.WriteString("\n- ")
		sb.WriteString(issue)
	}
	return sb.String()
}
