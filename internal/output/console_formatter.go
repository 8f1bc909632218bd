package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/planning-engine/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL PLANNING SUMMARY")
	fmt.Fprintln(&buf, "================================")

	if a := report.Acquisition; a != nil {
		fmt.Fprintf(&buf, "Asset price: %s\n", FormatCurrency(a.Input.AssetPrice))
		for _, r := range a.Verdict.Ranking {
			fmt.Fprintf(&buf, "  %-16s cost=%s\n", OptionLabel(r.Option), FormatCurrency(r.Cost))
		}
		rec := AnalyzeAcquisition(a)
		fmt.Fprintf(&buf, "Recommended: %s (saves %s / %s vs %s)\n",
			OptionLabel(rec.Option), FormatCurrency(rec.Savings), FormatPercentage(rec.PercentageSaving), OptionLabel(rec.RunnerUp))
	}

	if p := report.Retirement; p != nil {
		if report.Acquisition != nil {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "Retirement at %d: required=%s projected=%s\n",
			p.RetirementAge, FormatCurrency(p.RequiredCapital), FormatCurrency(p.CapitalAtRetirement))
		fmt.Fprintf(&buf, "  Contribution used=%s required=%s\n",
			FormatCurrency(p.ContributionUsed), FormatCurrency(p.RequiredMonthlyContribution))
		if p.Exhausted() {
			fmt.Fprintf(&buf, "  Capital exhausted at age %d\n", *p.ExhaustionAge)
		} else {
			fmt.Fprintf(&buf, "  Capital lasts through age %d\n", p.LifeExpectancy)
		}
	}
	return buf.Bytes(), nil
}
