package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/planning-engine/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// Extension returns the file extension used when a formatter writes to disk.
func Extension(f Formatter) string {
	switch name := f.Name(); {
	case strings.Contains(name, "csv"):
		return "csv"
	case strings.HasPrefix(name, "console"):
		return "txt"
	default:
		return name
	}
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, report *domain.Report, dir string) (string, error) {
	stamp := report.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	filename := filepath.Join(dir, fmt.Sprintf("planning_report_%s.%s", stamp.Format("20060102_150405"), Extension(f)))
	if err := WriteFormattedTo(f, report, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteFormattedTo runs a formatter and writes output to path.
func WriteFormattedTo(f Formatter, report *domain.Report, path string) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
	XMLFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"pdf-report":      "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
