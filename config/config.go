package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompt styles understood by the generator.
const (
	StyleFull    = "full"
	StyleCompact = "compact"
)

// Config holds everything an invocation needs apart from credentials.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Store      StoreConfig      `yaml:"store"`
	Fields     Fields           `yaml:"fields"`
	Secrets    SecretNames      `yaml:"secrets"`
	ServerAddr string           `yaml:"server_addr,omitempty"`
}

// GenerationConfig selects models and prompt style for the text-generation endpoint.
type GenerationConfig struct {
	BaseURL         string `yaml:"base_url,omitempty"`
	DraftModel      string `yaml:"draft_model"`
	ReviewModel     string `yaml:"review_model"`
	Style           string `yaml:"style"`
	MaxOutputTokens int64  `yaml:"max_output_tokens,omitempty"`
}

// StoreConfig addresses the record store. Trigger is where automations fire,
// Target is where drafts and scores are written.
type StoreConfig struct {
	BaseURL string `yaml:"base_url"`
	Trigger Table  `yaml:"trigger"`
	Target  Table  `yaml:"target"`
}

// Table identifies one table in one base.
type Table struct {
	BaseID string `yaml:"base_id"`
	Name   string `yaml:"table"`
}

func (t Table) String() string {
	return t.BaseID + "/" + t.Name
}

// Fields names the record fields read and written. Optional fields are
// skipped when empty.
type Fields struct {
	Title          string `yaml:"title"`
	Notes          string `yaml:"notes"`
	SourceRecordID string `yaml:"source_record_id"`
	Draft          string `yaml:"draft"`
	DraftHTML      string `yaml:"draft_html,omitempty"`

	QualityScore   string `yaml:"quality_score"`
	QualityIssues  string `yaml:"quality_issues"`
	HasContraction string `yaml:"has_contractions"`
	HasEmDashes    string `yaml:"has_em_dashes"`
	HasProhibited  string `yaml:"has_prohibited"`
	ParagraphRatio string `yaml:"paragraph_ratio"`
	QualityNotes   string `yaml:"quality_notes,omitempty"`
}

// SecretNames are the environment variables holding the two credentials.
type SecretNames struct {
	GenerationKeyEnv string `yaml:"generation_key_env"`
	StoreKeyEnv      string `yaml:"store_key_env"`
}

// Default returns the configuration the automations were first deployed with.
func Default() Config {
	return Config{
		Generation: GenerationConfig{
			DraftModel:  "gpt-5-mini",
			ReviewModel: "gpt-5-nano",
			Style:       StyleFull,
		},
		Store: StoreConfig{
			BaseURL: "https://api.airtable.com/v0",
			// The synced table lives in the automation's own base, which has no default.
			Trigger: Table{Name: "Requests (synced)"},
			Target:  Table{BaseID: "appUuViqIBmzCCZXg", Name: "tbluenLXB4BtWLDB0"},
		},
		Fields: Fields{
			Title:          "Project Name",
			Notes:          "Notes",
			SourceRecordID: "Source Record ID",
			Draft:          "AI First Draft",
			QualityScore:   "Brand Voice Quality Score",
			QualityIssues:  "Quality Issues",
			HasContraction: "Has Contractions",
			HasEmDashes:    "Has Em Dashes",
			HasProhibited:  "Has Prohibited Phrases",
			ParagraphRatio: "Paragraph Ratio",
			QualityNotes:   "Quality Notes",
		},
		Secrets: SecretNames{
			GenerationKeyEnv: "OPENAI_API_KEY",
			StoreKeyEnv:      "AIRTABLE_API_KEY",
		},
		ServerAddr: ":8080",
	}
}

// Load reads a YAML file over the defaults. An empty path validates the
// defaults alone, which lack the trigger base.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required setting at once.
func (c Config) Validate() error {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("generation.draft_model", c.Generation.DraftModel)
	check("generation.review_model", c.Generation.ReviewModel)
	check("store.base_url", c.Store.BaseURL)
	check("store.trigger.base_id", c.Store.Trigger.BaseID)
	check("store.trigger.table", c.Store.Trigger.Name)
	check("store.target.base_id", c.Store.Target.BaseID)
	check("store.target.table", c.Store.Target.Name)
	check("fields.title", c.Fields.Title)
	check("fields.notes", c.Fields.Notes)
	check("fields.draft", c.Fields.Draft)
	check("fields.quality_score", c.Fields.QualityScore)
	check("fields.quality_issues", c.Fields.QualityIssues)
	check("fields.has_contractions", c.Fields.HasContraction)
	check("fields.has_em_dashes", c.Fields.HasEmDashes)
	check("fields.has_prohibited", c.Fields.HasProhibited)
	check("fields.paragraph_ratio", c.Fields.ParagraphRatio)
	check("secrets.generation_key_env", c.Secrets.GenerationKeyEnv)
	check("secrets.store_key_env", c.Secrets.StoreKeyEnv)

	switch c.Generation.Style {
	case StyleFull, StyleCompact:
	default:
		return &Error{Problems: append(missing, fmt.Sprintf("generation.style %q is not one of full, compact", c.Generation.Style))}
	}
	if len(missing) > 0 {
		return &Error{Problems: missing}
	}
	return nil
}

// Error lists every configuration problem found in one pass.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return "configuration: missing or invalid " + strings.Join(e.Problems, ", ")
}

// IsConfigError reports whether err carries a configuration problem.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
