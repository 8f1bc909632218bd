package calculation

import (
	"testing"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest(t *testing.T) {
	cases := []struct {
		name       string
		financing  string
		consortium string
		cash       string
		wantBest   domain.AcquisitionOption
		wantOrder  []domain.AcquisitionOption
	}{
		{"cash cheapest", "400000", "100000", "50000", domain.OptionCash,
			[]domain.AcquisitionOption{domain.OptionCash, domain.OptionConsortium, domain.OptionFinancing}},
		{"consortium cheapest", "400000", "90000", "150000", domain.OptionConsortium,
			[]domain.AcquisitionOption{domain.OptionConsortium, domain.OptionCash, domain.OptionFinancing}},
		{"financing cheapest", "10", "20", "30", domain.OptionFinancing,
			[]domain.AcquisitionOption{domain.OptionFinancing, domain.OptionConsortium, domain.OptionCash}},
		{"tie keeps declaration order", "100", "100", "100", domain.OptionFinancing,
			[]domain.AcquisitionOption{domain.OptionFinancing, domain.OptionConsortium, domain.OptionCash}},
		{"tie between consortium and cash", "500", "100", "100", domain.OptionConsortium,
			[]domain.AcquisitionOption{domain.OptionConsortium, domain.OptionCash, domain.OptionFinancing}},
		{"negative cost wins", "-5", "0", "0", domain.OptionFinancing,
			[]domain.AcquisitionOption{domain.OptionFinancing, domain.OptionConsortium, domain.OptionCash}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := SelectBest(d(tc.financing), d(tc.consortium), d(tc.cash))
			assert.Equal(t, tc.wantBest, v.Best)
			require.Len(t, v.Ranking, 3)
			for i, opt := range tc.wantOrder {
				assert.Equal(t, opt, v.Ranking[i].Option)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	in := domain.AcquisitionInput{
		AssetPrice:              d("500000"),
		DownPaymentPct:          d("0.2"),
		FinancingRealRate:       d("0.07"),
		FinancingTermMonths:     420,
		AdminFeePct:             d("0.2"),
		EmbeddedBidPct:          d("0.3"),
		ConsortiumTermMonths:    200,
		ContemplationMonth:      60,
		CashReturnRate:          d("0.04"),
		ComparisonHorizonMonths: 420,
	}

	c := Compare(in)
	assert.True(t, c.FinancingCost.Equal(c.Financing.TotalPaid.Add(c.Financing.DownPayment).Sub(in.AssetPrice)))
	assert.True(t, c.ConsortiumCost.Equal(d("100000")))
	assert.True(t, c.CashCost.Equal(c.Cash.OpportunityLoss))
	assert.Equal(t, domain.OptionConsortium, c.Verdict.Best)
	assert.True(t, c.CostOf(c.Verdict.Best).Equal(c.Verdict.Ranking[0].Cost))
	assert.Equal(t, c, Compare(in))
}
