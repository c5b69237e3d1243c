package doctor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/hashenc/internal/codec"
	"github.com/kjourdan1/hashenc/internal/config"
	"github.com/kjourdan1/hashenc/internal/output"
)

func testSchema(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "schemas", "batch-v1.schema.json"))
	require.NoError(t, err)
	return data
}

func healthyEnv(t *testing.T) Env {
	s := config.Defaults()
	s.Audit.Path = filepath.Join(t.TempDir(), "logs", "audit.log")
	return Env{Settings: s, Schema: testSchema(t)}
}

func TestRunAll_Healthy(t *testing.T) {
	summary := RunAll(healthyEnv(t))

	assert.False(t, summary.HasFailure)
	assert.Equal(t, 4, summary.TotalPass)
	assert.Zero(t, summary.TotalFail)
	require.Len(t, summary.Results, 4)
	assert.Equal(t, "settings", summary.Results[0].Name)
	assert.Contains(t, summary.Results[0].Message, "using defaults")
	assert.Contains(t, summary.Results[2].Message, "6 vectors")
}

func TestSelfTestVectorsMatchEncoder(t *testing.T) {
	for _, tc := range selfTest {
		v, ok := codec.Encode(tc.input)
		assert.Equal(t, tc.ok, ok, tc.input)
		assert.Equal(t, tc.value, v, tc.input)
	}
	assert.Equal(t, StatusPass, checkEncoder().Run(Env{}).Status)
}

func TestCheckSettings(t *testing.T) {
	r := checkSettings().Run(Env{})
	assert.Equal(t, StatusFail, r.Status)
	assert.NotEmpty(t, r.Fix)

	r = checkSettings().Run(Env{Settings: config.Defaults(), ConfigFile: "/etc/hashenc.yaml"})
	assert.Equal(t, StatusPass, r.Status)
	assert.Equal(t, "loaded /etc/hashenc.yaml", r.Message)
}

func TestCheckSchema(t *testing.T) {
	assert.Equal(t, StatusFail, checkSchema().Run(Env{}).Status)
	assert.Equal(t, StatusFail, checkSchema().Run(Env{Schema: []byte(`{"type": 12}`)}).Status)
	assert.Equal(t, StatusPass, checkSchema().Run(Env{Schema: testSchema(t)}).Status)
}

func TestCheckAuditLog(t *testing.T) {
	s := config.Defaults()
	s.Audit.Enabled = false
	assert.Equal(t, StatusSkip, checkAuditLog().Run(Env{Settings: s}).Status)

	// A regular file where a directory is expected cannot be created.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	s = config.Defaults()
	s.Audit.Path = filepath.Join(blocker, "audit.log")
	r := checkAuditLog().Run(Env{Settings: s})
	assert.Equal(t, StatusWarn, r.Status)
	assert.NotEmpty(t, r.Fix)
}

func TestBuildSummary_NonCriticalFailure(t *testing.T) {
	checks := []Check{{Name: "a", Critical: false}, {Name: "b", Critical: true}}
	s := buildSummary([]CheckResult{{Status: StatusFail}, {Status: StatusPass}}, checks)
	assert.False(t, s.HasFailure)
	assert.Equal(t, 1, s.TotalFail)

	s = buildSummary([]CheckResult{{Status: StatusPass}, {Status: StatusFail}}, checks)
	assert.True(t, s.HasFailure)
}

func TestStatusIcon_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "[PASS]", StatusIcon(StatusPass))
	assert.Equal(t, "[FAIL]", StatusIcon(StatusFail))
	assert.Equal(t, "[WARN]", StatusIcon(StatusWarn))
	assert.Equal(t, "[SKIP]", StatusIcon(StatusSkip))
	assert.Equal(t, "[????]", StatusIcon("other"))
}

func TestPrintResults(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer

	env := healthyEnv(t)
	env.Schema = nil
	PrintResults(&buf, RunAll(env))

	out := buf.String()
	assert.Contains(t, out, "--- Configuration ---")
	assert.Contains(t, out, "--- Runtime ---")
	assert.Contains(t, out, "[FAIL]  batch manifest schema is not embedded")
	assert.Contains(t, out, "Fix: Rebuild hashenc")
}

func TestPrintResults_WarningSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out, errOut bytes.Buffer
	output.SetWriters(&out, &errOut)
	t.Cleanup(func() { output.SetWriters(nil, nil) })

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	env := healthyEnv(t)
	env.Settings.Audit.Path = filepath.Join(blocker, "audit.log")

	summary := RunAll(env)
	assert.False(t, summary.HasFailure)
	assert.Equal(t, 1, summary.TotalWarn)

	PrintResults(&out, summary)
	assert.Contains(t, out.String(), "[WARN]")
	assert.Contains(t, errOut.String(), "Doctor completed with warnings: 3 passed, 1 warnings")
}
