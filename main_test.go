package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brandvoice/automation"
	"brandvoice/config"
	"brandvoice/quality"
)

func TestRunCheck_FromStdin(t *testing.T) {
	logger = zap.NewNop()
	asJSON = false

	var out bytes.Buffer
	checkCmd.SetIn(strings.NewReader("Ahoy! We're thrilled you're here. It's going to be great."))
	checkCmd.SetOut(&out)

	require.NoError(t, runCheck(checkCmd, nil))
	assert.Equal(t, "Excellent (100/100)\n\nAll brand voice guidelines followed!\n", out.String())
}

func TestRunCheck_FileAsJSON(t *testing.T) {
	logger = zap.NewNop()
	asJSON = true
	defer func() { asJSON = false }()

	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("Please be advised this is disruptive — we regret the inconvenience; kindly note the outage."), 0o600))

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	require.NoError(t, runCheck(checkCmd, []string{path}))

	var report quality.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 40, report.Score)
	assert.True(t, report.Flags.HasEmDashes)
}

// useConfig points the CLI at a config file naming the trigger base.
func useConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brandvoice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  trigger:\n    base_id: appSync\n"), 0o600))
	configPath = path
	t.Cleanup(func() { configPath = "" })
}

func TestLoadDeps_DefaultsWithoutTriggerBaseIsConfigurationError(t *testing.T) {
	logger = zap.NewNop()
	configPath = ""
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AIRTABLE_API_KEY", "pat-test")

	_, err := loadDeps(config.Need{Generation: true, Store: true})
	require.Error(t, err)
	assert.True(t, automation.IsKind(err, automation.KindConfiguration))
	assert.Equal(t, 2, automation.ExitCode(err))
	assert.Contains(t, err.Error(), "store.trigger.base_id")
}

func TestLoadDeps_MissingCredentialsIsConfigurationError(t *testing.T) {
	logger = zap.NewNop()
	useConfig(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AIRTABLE_API_KEY", "")

	_, err := loadDeps(config.Need{Generation: true, Store: true})
	require.Error(t, err)
	assert.True(t, automation.IsKind(err, automation.KindConfiguration))
	assert.Equal(t, 2, automation.ExitCode(err))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "AIRTABLE_API_KEY")
}

func TestLoadDeps_BuildsOnlyWhatIsNeeded(t *testing.T) {
	logger = zap.NewNop()
	useConfig(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AIRTABLE_API_KEY", "pat-test")

	d, err := loadDeps(config.Need{Store: true})
	require.NoError(t, err)
	assert.NotNil(t, d.store)
	assert.Nil(t, d.agent)
}
