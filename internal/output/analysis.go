package output

import (
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation summarises the acquisition verdict: the cheapest option and
// how much it saves against the runner-up.
type Recommendation struct {
	Option           domain.AcquisitionOption
	Cost             decimal.Decimal
	RunnerUp         domain.AcquisitionOption
	Savings          decimal.Decimal
	PercentageSaving decimal.Decimal
}

// AnalyzeAcquisition extracts the recommendation from a comparison. The zero
// value is returned when there is nothing to compare.
func AnalyzeAcquisition(c *domain.AcquisitionComparison) Recommendation {
	if c == nil || len(c.Verdict.Ranking) == 0 {
		return Recommendation{}
	}
	best := c.Verdict.Ranking[0]
	rec := Recommendation{Option: best.Option, Cost: best.Cost}
	if len(c.Verdict.Ranking) < 2 {
		return rec
	}
	next := c.Verdict.Ranking[1]
	rec.RunnerUp = next.Option
	rec.Savings = next.Cost.Sub(best.Cost)
	if !next.Cost.IsZero() {
		rec.PercentageSaving = rec.Savings.Div(next.Cost.Abs()).Mul(decimalHundred)
	}
	return rec
}

// RetirementStatus summarises whether the projected plan funds the desired
// withdrawal.
type RetirementStatus struct {
	OnTrack bool
	// ContributionGap is the extra monthly contribution still needed; zero
	// when the contribution used already covers the requirement.
	ContributionGap decimal.Decimal
	// CapitalGap is the required capital minus the capital simulated at retirement.
	CapitalGap decimal.Decimal
}

// AnalyzeRetirement reports how far the simulated plan is from the target.
func AnalyzeRetirement(p *domain.RetirementProjection) RetirementStatus {
	if p == nil {
		return RetirementStatus{}
	}
	gap := p.RequiredMonthlyContribution.Sub(p.ContributionUsed)
	if gap.IsNegative() {
		gap = decimal.Zero
	}
	return RetirementStatus{
		OnTrack:         !p.Exhausted(),
		ContributionGap: gap,
		CapitalGap:      p.RequiredCapital.Sub(p.CapitalAtRetirement),
	}
}

// OptionLabel is the display name of an acquisition option.
func OptionLabel(o domain.AcquisitionOption) string {
	switch o {
	case domain.OptionFinancing:
		return "Financing (SAC)"
	case domain.OptionConsortium:
		return "Consortium"
	case domain.OptionCash:
		return "Cash purchase"
	default:
		return string(o)
	}
}
