package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/planning-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, _, err := execute(t, "example-config", path)
	require.NoError(t, err)
	return path
}

func TestExampleConfigRoundTrips(t *testing.T) {
	path := writeExampleConfig(t)
	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Acquisition)
	assert.Len(t, cfg.Retirement.Events, 2)

	stdout, _, err := execute(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asset_price:")
}

func TestRunToStdout(t *testing.T) {
	path := writeExampleConfig(t)
	stdout, _, err := execute(t, "run", "--config", path, "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FINANCIAL PLANNING SUMMARY")
	assert.Contains(t, stdout, "Recommended:")
	assert.Contains(t, stdout, "Retirement at 65")
}

func TestCompareOnlyRendersAcquisition(t *testing.T) {
	path := writeExampleConfig(t)
	stdout, _, err := execute(t, "compare", "-c", path, "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, stdout, "REAL ESTATE ACQUISITION")
	assert.NotContains(t, stdout, "RETIREMENT PROJECTION")
}

func TestRetireFlags(t *testing.T) {
	path := writeExampleConfig(t)
	stdout, _, err := execute(t, "retire", "-c", path, "-f", "csv", "--solve-contribution", "--horizon", "20y")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "acquisition,")
	assert.Contains(t, stdout, "retirement,retirement_age,55")

	_, _, err = execute(t, "retire", "-c", path, "--horizon", "15y")
	assert.Error(t, err)
}

func TestRunWritesFiles(t *testing.T) {
	path := writeExampleConfig(t)
	dir := filepath.Join(t.TempDir(), "reports")
	stdout, _, err := execute(t, "run", "-c", path, "-f", "all", "-o", dir)
	require.NoError(t, err)

	files := strings.Fields(stdout)
	require.Len(t, files, 3)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestCommandErrors(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.EqualError(t, err, "--config is required")

	path := writeExampleConfig(t)
	_, _, err = execute(t, "run", "-c", path, "-f", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of:")

	_, _, err = execute(t, "run", "-c", path, "-f", "all")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatsCommand(t *testing.T) {
	stdout, _, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "formats: console, console-lite, csv")
	assert.Contains(t, stdout, "csv-detailed")
}
