package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathNeedsTriggerBase(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"store.trigger.base_id"}, ce.Problems)
}

func TestLoad_TriggerBaseIsAllThatIsNeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  trigger:\n    base_id: appSync\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Store.Trigger.BaseID = "appSync"
	assert.Equal(t, want, cfg)
	assert.Equal(t, "Requests (synced)", cfg.Store.Trigger.Name)
	assert.Equal(t, "appUuViqIBmzCCZXg", cfg.Store.Target.BaseID)
	assert.Equal(t, "gpt-5-mini", cfg.Generation.DraftModel)
	assert.Equal(t, "AI First Draft", cfg.Fields.Draft)
}

func TestLoad_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
generation:
  draft_model: gpt-5
  style: compact
store:
  trigger:
    base_id: appSync
  target:
    base_id: appOther
    table: Requests (TK)
fields:
  draft_html: AI First Draft (HTML)
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", cfg.Generation.DraftModel)
	assert.Equal(t, "gpt-5-nano", cfg.Generation.ReviewModel)
	assert.Equal(t, StyleCompact, cfg.Generation.Style)
	assert.Equal(t, Table{BaseID: "appSync", Name: "Requests (synced)"}, cfg.Store.Trigger)
	assert.Equal(t, Table{BaseID: "appOther", Name: "Requests (TK)"}, cfg.Store.Target)
	assert.Equal(t, "AI First Draft (HTML)", cfg.Fields.DraftHTML)
	assert.Equal(t, "Notes", cfg.Fields.Notes)
}

func TestLoad_ReportsEveryMissingSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
fields:
  title: ""
  draft: ""
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"store.trigger.base_id", "fields.title", "fields.draft"}, ce.Problems)
}

func TestValidate_RejectsUnknownStyle(t *testing.T) {
	cfg := Default()
	cfg.Generation.Style = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation.style")
}

func TestLoadSecrets_ListsAllMissing(t *testing.T) {
	cfg := Default()
	env := map[string]string{}

	_, err := loadSecrets(cfg, Need{Generation: true, Store: true}, func(k string) string { return env[k] })
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.Problems, 2)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "AIRTABLE_API_KEY")
}

func TestLoadSecrets_OnlyChecksWhatIsNeeded(t *testing.T) {
	cfg := Default()
	env := map[string]string{"AIRTABLE_API_KEY": " pat123 "}

	s, err := loadSecrets(cfg, Need{Store: true}, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "pat123", s.StoreKey)
	assert.Empty(t, s.GenerationKey)

	_, err = loadSecrets(cfg, Need{Generation: true, Store: true}, func(k string) string { return env[k] })
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "AIRTABLE_API_KEY")
}
