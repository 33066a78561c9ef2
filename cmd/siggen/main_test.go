package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siggen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const quietConfig = `cycle: 1ms
sample_rate: 10k
logging:
  level: disabled
`

func TestPatternsListsBothKinds(t *testing.T) {
	out, err := execute(t, "patterns")
	require.NoError(t, err)
	require.Contains(t, out, "walking-one")
	require.Contains(t, out, "sawtooth")
}

func TestValidateReportsSummary(t *testing.T) {
	path := writeConfig(t, quietConfig)
	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "10kHz")
	require.Contains(t, out, "8 logic")
}

func TestValidateRejectsBadConfig(t *testing.T) {
	path := writeConfig(t, "sample_rate: 0\n")
	_, err := execute(t, "validate", "--config", path)
	require.Error(t, err)
}

func TestValidatePrintsSchema(t *testing.T) {
	out, err := execute(t, "validate", "--schema")
	require.NoError(t, err)
	require.Contains(t, out, "#Config")
}

func TestRunWithOverrides(t *testing.T) {
	path := writeConfig(t, quietConfig)
	dir := filepath.Join(t.TempDir(), "npy")
	_, err := execute(t, "run", "--config", path, "--samples", "100", "--npy-dir", dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "logic.npy"))
	require.NoError(t, err)
}

func TestRunRejectsBadSampleRate(t *testing.T) {
	path := writeConfig(t, quietConfig)
	_, err := execute(t, "run", "--config", path, "--sample-rate", "fast")
	require.Error(t, err)
}

func TestRunMissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
