package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/planning-engine/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per headline metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"Section", "Metric", "Value"}}

	if a := report.Acquisition; a != nil {
		rows = append(rows,
			[]string{"acquisition", "asset_price", a.Input.AssetPrice.StringFixed(2)},
			[]string{"acquisition", "financing_down_payment", a.Financing.DownPayment.StringFixed(2)},
			[]string{"acquisition", "financing_first_installment", a.Financing.FirstInstallment.StringFixed(2)},
			[]string{"acquisition", "financing_total_paid", a.Financing.TotalPaid.StringFixed(2)},
			[]string{"acquisition", "financing_cost", a.FinancingCost.StringFixed(2)},
			[]string{"acquisition", "consortium_fixed_payment", a.Consortium.FixedPayment.StringFixed(2)},
			[]string{"acquisition", "consortium_total_paid", a.Consortium.TotalPaid.StringFixed(2)},
			[]string{"acquisition", "consortium_net_letter_value", a.Consortium.NetLetterValue.StringFixed(2)},
			[]string{"acquisition", "consortium_cost", a.ConsortiumCost.StringFixed(2)},
			[]string{"acquisition", "cash_future_value", a.Cash.FutureValue.StringFixed(2)},
			[]string{"acquisition", "cash_cost", a.CashCost.StringFixed(2)},
			[]string{"acquisition", "best_option", string(a.Verdict.Best)},
		)
	}

	if p := report.Retirement; p != nil {
		exhaustion := ""
		if p.Exhausted() {
			exhaustion = intToString(*p.ExhaustionAge)
		}
		rows = append(rows,
			[]string{"retirement", "retirement_age", intToString(p.RetirementAge)},
			[]string{"retirement", "required_capital", p.RequiredCapital.StringFixed(2)},
			[]string{"retirement", "required_monthly_contribution", p.RequiredMonthlyContribution.StringFixed(2)},
			[]string{"retirement", "contribution_used", p.ContributionUsed.StringFixed(2)},
			[]string{"retirement", "capital_at_retirement", p.CapitalAtRetirement.StringFixed(2)},
			[]string{"retirement", "sustainable_monthly_withdrawal", p.SustainableMonthlyWithdrawal.StringFixed(2)},
			[]string{"retirement", "exhausted", boolToString(p.Exhausted())},
			[]string{"retirement", "exhaustion_age", exhaustion},
			[]string{"retirement", "final_age", intToString(p.Duration.FinalAge)},
			[]string{"retirement", "years_sustained", intToString(p.Duration.YearsSustained)},
		)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
