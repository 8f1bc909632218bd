package calculation

import (
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/pkg/finmath"
)

// OpportunityCost compounds the purchase price monthly at the real return it
// would have earned if invested instead of spent. The loss is the growth
// forgone over the horizon.
func OpportunityCost(p domain.OpportunityCostParameters) domain.OpportunityCostResult {
	monthlyRate := finmath.MonthlyRate(p.AnnualRealReturn)
	value := p.Price

	var evolution []domain.InvestmentRecord
	if p.HorizonMonths > 0 {
		evolution = make([]domain.InvestmentRecord, 0, p.HorizonMonths)
	}
	for month := 1; month <= p.HorizonMonths; month++ {
		yield := finmath.RoundScale(value.Mul(monthlyRate))
		value = value.Add(yield)
		evolution = append(evolution, domain.InvestmentRecord{
			Month: month,
			Value: value,
			Yield: yield,
		})
	}

	return domain.OpportunityCostResult{
		FutureValue:     value,
		Evolution:       evolution,
		OpportunityLoss: value.Sub(p.Price),
	}
}
