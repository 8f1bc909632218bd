package calculation

import (
	"sort"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// SelectBest ranks the three acquisition costs, cheapest first. Equal costs
// keep declaration order: financing, consortium, cash.
func SelectBest(financing, consortium, cash decimal.Decimal) domain.ComparisonVerdict {
	ranking := []domain.RankedOption{
		{Option: domain.OptionFinancing, Cost: financing},
		{Option: domain.OptionConsortium, Cost: consortium},
		{Option: domain.OptionCash, Cost: cash},
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Cost.LessThan(ranking[j].Cost)
	})
	return domain.ComparisonVerdict{Best: ranking[0].Option, Ranking: ranking}
}

// Compare runs the three real-estate engines over one input and selects the
// cheapest option. The input must already be validated.
func Compare(in domain.AcquisitionInput) domain.AcquisitionComparison {
	financing := Amortize(in.Loan())
	consortium := Consortium(in.Consortium())
	cash := OpportunityCost(in.OpportunityCost())

	out := domain.AcquisitionComparison{
		Input:          in,
		Financing:      financing,
		Consortium:     consortium,
		Cash:           cash,
		FinancingCost:  FinancingCost(in.AssetPrice, financing),
		ConsortiumCost: ConsortiumCost(in.AssetPrice, consortium),
		CashCost:       cash.OpportunityLoss,
	}
	out.Verdict = SelectBest(out.FinancingCost, out.ConsortiumCost, out.CashCost)
	return out
}
