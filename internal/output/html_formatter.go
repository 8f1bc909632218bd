package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/planning-engine/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"rate":  FormatRate,
	"pct":   FormatPercentage,
	"label": OptionLabel,
	"add":   func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Recommendation Recommendation
		Status         RetirementStatus
		Assumptions    []string
	}{report, AnalyzeAcquisition(report.Acquisition), AnalyzeRetirement(report.Retirement), GenerateAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
