package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyReport() *domain.Report {
	return &domain.Report{GeneratedAt: time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()

	files, err := output.GenerateReport(emptyReport(), "json", dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "planning_report_20250506_070809.json"), files[0])

	files, err = output.GenerateReport(emptyReport(), "csv-summary", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(files[0], ".csv"))

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "Section,Metric,Value\n", string(data))
}

func TestGenerateReport_All(t *testing.T) {
	files, err := output.GenerateReport(emptyReport(), "all", t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(emptyReport(), "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestRender(t *testing.T) {
	out, err := output.Render(emptyReport(), "console-lite")
	require.NoError(t, err)
	assert.Contains(t, string(out), "FINANCIAL PLANNING SUMMARY")

	_, err = output.Render(emptyReport(), "docx")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestWriteFormattedTo_Error(t *testing.T) {
	f := output.FormatterFunc{ID: "broken", F: func(*domain.Report) ([]byte, error) { return nil, errors.New("boom") }}
	err := output.WriteFormattedTo(f, emptyReport(), filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken formatter: boom")
}
