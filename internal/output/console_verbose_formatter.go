package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/planning-engine/internal/domain"
)

// scheduleSampleRows bounds how many installments the console prints at each
// end of a long schedule.
const scheduleSampleRows = 6

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "DETAILED FINANCIAL PLANNING REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.Acquisition != nil {
		writeAcquisition(&buf, report.Acquisition)
	}
	if report.Retirement != nil {
		writeRetirement(&buf, report.Retirement, report)
	}
	return buf.Bytes(), nil
}

func writeAcquisition(w io.Writer, a *domain.AcquisitionComparison) {
	fmt.Fprintln(w, "REAL ESTATE ACQUISITION")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Asset price:            %s\n", FormatCurrency(a.Input.AssetPrice))
	fmt.Fprintln(w)

	f := a.Financing
	fmt.Fprintln(w, "FINANCING (SAC):")
	fmt.Fprintf(w, "  Down payment:         %s\n", FormatCurrency(f.DownPayment))
	fmt.Fprintf(w, "  Financed amount:      %s\n", FormatCurrency(f.FinancedAmount))
	fmt.Fprintf(w, "  Monthly rate:         %s\n", FormatRate(f.MonthlyRate))
	fmt.Fprintf(w, "  First installment:    %s\n", FormatCurrency(f.FirstInstallment))
	fmt.Fprintf(w, "  Total paid:           %s\n", FormatCurrency(f.TotalPaid))
	fmt.Fprintf(w, "  Total interest:       %s\n", FormatCurrency(f.TotalCost))
	writeInstallments(w, f.Schedule)
	fmt.Fprintln(w)

	c := a.Consortium
	fmt.Fprintln(w, "CONSORTIUM:")
	fmt.Fprintf(w, "  Fixed payment:        %s\n", FormatCurrency(c.FixedPayment))
	fmt.Fprintf(w, "  Administrative fee:   %s\n", FormatCurrency(c.AdminFeeTotal))
	fmt.Fprintf(w, "  Embedded bid:         %s\n", FormatCurrency(c.EmbeddedBidValue))
	fmt.Fprintf(w, "  Net letter value:     %s\n", FormatCurrency(c.NetLetterValue))
	fmt.Fprintf(w, "  Contemplation month:  %d\n", a.Input.ContemplationMonth)
	fmt.Fprintf(w, "  Total paid:           %s\n", FormatCurrency(c.TotalPaid))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CASH PURCHASE (OPPORTUNITY COST):")
	fmt.Fprintf(w, "  Invested value after %d months: %s\n", a.Input.ComparisonHorizonMonths, FormatCurrency(a.Cash.FutureValue))
	fmt.Fprintf(w, "  Opportunity loss:     %s\n", FormatCurrency(a.Cash.OpportunityLoss))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "EFFECTIVE REAL COST RANKING:")
	for i, r := range a.Verdict.Ranking {
		fmt.Fprintf(w, "  %d. %-16s %s\n", i+1, OptionLabel(r.Option), FormatCurrency(r.Cost))
	}
	rec := AnalyzeAcquisition(a)
	fmt.Fprintf(w, "Recommended: %s, %s cheaper than %s\n", OptionLabel(rec.Option), FormatCurrency(rec.Savings), OptionLabel(rec.RunnerUp))
	fmt.Fprintln(w)
}

func writeInstallments(w io.Writer, schedule []domain.InstallmentRecord) {
	if len(schedule) == 0 {
		return
	}
	fmt.Fprintf(w, "  %-6s %16s %14s %14s %14s\n", "Month", "Balance", "Interest", "Amortization", "Installment")
	row := func(r domain.InstallmentRecord) {
		fmt.Fprintf(w, "  %-6d %16s %14s %14s %14s\n", r.Month,
			r.Balance.StringFixed(2), r.Interest.StringFixed(2), r.Amortization.StringFixed(2), r.Installment.StringFixed(2))
	}
	if len(schedule) <= 2*scheduleSampleRows {
		for _, r := range schedule {
			row(r)
		}
		return
	}
	for _, r := range schedule[:scheduleSampleRows] {
		row(r)
	}
	fmt.Fprintf(w, "  ... %d more installments ...\n", len(schedule)-2*scheduleSampleRows)
	for _, r := range schedule[len(schedule)-scheduleSampleRows:] {
		row(r)
	}
}

func writeRetirement(w io.Writer, p *domain.RetirementProjection, report *domain.Report) {
	fmt.Fprintln(w, "RETIREMENT PROJECTION")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Retirement age:               %d", p.RetirementAge)
	if report.RetirementDate != nil {
		fmt.Fprintf(w, " (%s)", report.RetirementDate.Format("2006-01-02"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Life expectancy:              %d\n", p.LifeExpectancy)
	fmt.Fprintf(w, "Required capital:             %s\n", FormatCurrency(p.RequiredCapital))
	fmt.Fprintf(w, "Required monthly contribution: %s\n", FormatCurrency(p.RequiredMonthlyContribution))
	fmt.Fprintf(w, "Contribution simulated:       %s\n", FormatCurrency(p.ContributionUsed))
	fmt.Fprintf(w, "Capital at retirement:        %s\n", FormatCurrency(p.CapitalAtRetirement))
	fmt.Fprintf(w, "Sustainable monthly income:   %s\n", FormatCurrency(p.SustainableMonthlyWithdrawal))
	if p.Exhausted() {
		fmt.Fprintf(w, "Capital exhausted at age:     %d\n", *p.ExhaustionAge)
	} else {
		fmt.Fprintln(w, "Capital exhausted at age:     never")
	}
	fmt.Fprintf(w, "Capital lasts until age %d (%d years of withdrawals)\n", p.Duration.FinalAge, p.Duration.YearsSustained)

	status := AnalyzeRetirement(p)
	if status.ContributionGap.IsPositive() {
		fmt.Fprintf(w, "Increase the monthly contribution by %s to reach the target\n", FormatCurrency(status.ContributionGap))
	}
	fmt.Fprintln(w)

	if len(p.Events) > 0 {
		fmt.Fprintln(w, "LIQUIDITY EVENTS:")
		for _, e := range p.Events {
			direction := "outflow"
			if e.Inflow {
				direction = "inflow"
			}
			fmt.Fprintf(w, "  age %-3d %-24s %-8s %s\n", e.Age, e.Label, direction, FormatCurrency(e.Amount))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "CAPITAL TRAJECTORY:")
	fmt.Fprintf(w, "  %-5s %-13s %18s\n", "Age", "Phase", "Capital")
	for _, pt := range report.VisibleTrajectory() {
		fmt.Fprintf(w, "  %-5d %-13s %18s\n", pt.Age, pt.Phase, pt.Capital.StringFixed(2))
	}
	fmt.Fprintln(w)
}
