package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/planning-engine/internal/domain"
)

// Render formats a report with the named formatter.
func Render(report *domain.Report, format string) ([]byte, error) {
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}

// GenerateReport writes the report in the given format to a timestamped file
// in dir. The "all" format writes the verbose console, detailed CSV and HTML
// renditions.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
