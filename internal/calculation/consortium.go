package calculation

import (
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Consortium builds the flat consortium schedule: the letter value and the
// administrative fee are both spread evenly over the term.
//
// The embedded bid only reduces the net letter value reported to the caller.
// It does not change the payment stream, and therefore not the comparison
// cost either. This is a modelled simplification pending product review.
func Consortium(p domain.ConsortiumParameters) domain.ConsortiumSchedule {
	adminFeeTotal := p.Price.Mul(p.AdminFeePct)
	embeddedBid := p.Price.Mul(p.EmbeddedBidPct)

	result := domain.ConsortiumSchedule{
		AdminFeeTotal:    adminFeeTotal,
		EmbeddedBidValue: embeddedBid,
		NetLetterValue:   p.Price.Sub(embeddedBid),
		TotalPaid:        decimal.Zero,
	}
	if p.TermMonths <= 0 {
		return result
	}

	term := decimal.NewFromInt(int64(p.TermMonths))
	result.MonthlyQuota = p.Price.Div(term)
	result.MonthlyAdminFee = adminFeeTotal.Div(term)
	result.FixedPayment = result.MonthlyQuota.Add(result.MonthlyAdminFee)
	result.TotalPaid = result.FixedPayment.Mul(term)

	result.Schedule = make([]domain.ConsortiumInstallmentRecord, 0, p.TermMonths)
	for month := 1; month <= p.TermMonths; month++ {
		phase := domain.PhaseAfterContemplation
		if month < p.ContemplationMonth {
			phase = domain.PhaseBeforeContemplation
		}
		result.Schedule = append(result.Schedule, domain.ConsortiumInstallmentRecord{
			Month:   month,
			Phase:   phase,
			Payment: result.FixedPayment,
		})
	}
	return result
}

// ConsortiumCost is the effective real cost of the consortium.
func ConsortiumCost(price decimal.Decimal, s domain.ConsortiumSchedule) decimal.Decimal {
	return s.TotalPaid.Sub(price)
}
