package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validAcquisition() AcquisitionInput {
	return AcquisitionInput{
		AssetPrice:              decimal.NewFromInt(500000),
		DownPaymentPct:          decimal.NewFromFloat(0.2),
		FinancingRealRate:       decimal.NewFromFloat(0.07),
		FinancingTermMonths:     420,
		AdminFeePct:             decimal.NewFromFloat(0.2),
		EmbeddedBidPct:          decimal.NewFromFloat(0.1),
		ConsortiumTermMonths:    220,
		ContemplationMonth:      40,
		CashReturnRate:          decimal.NewFromFloat(0.05),
		ComparisonHorizonMonths: 420,
	}
}

func TestAcquisitionInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *AcquisitionInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(in *AcquisitionInput) {}},
		{name: "full down payment allowed", mutate: func(in *AcquisitionInput) { in.DownPaymentPct = decimal.NewFromInt(1) }},
		{name: "down payment above 100%", mutate: func(in *AcquisitionInput) { in.DownPaymentPct = decimal.NewFromFloat(1.01) }, wantErr: true},
		{name: "negative price", mutate: func(in *AcquisitionInput) { in.AssetPrice = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "zero financing term", mutate: func(in *AcquisitionInput) { in.FinancingTermMonths = 0 }, wantErr: true},
		{name: "negative consortium term", mutate: func(in *AcquisitionInput) { in.ConsortiumTermMonths = -12 }, wantErr: true},
		{name: "admin fee above 100%", mutate: func(in *AcquisitionInput) { in.AdminFeePct = decimal.NewFromInt(2) }, wantErr: true},
		{name: "rate below domain", mutate: func(in *AcquisitionInput) { in.CashReturnRate = decimal.NewFromFloat(-0.9) }, wantErr: true},
		{name: "negative horizon", mutate: func(in *AcquisitionInput) { in.ComparisonHorizonMonths = -1 }, wantErr: true},
		{name: "term beyond bounds", mutate: func(in *AcquisitionInput) { in.FinancingTermMonths = 5000 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAcquisition()
			tt.mutate(&in)
			err := in.Validate(DefaultBounds())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameterRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAcquisitionInput_Projections(t *testing.T) {
	in := validAcquisition()

	loan := in.Loan()
	assert.True(t, loan.Price.Equal(in.AssetPrice))
	assert.Equal(t, 420, loan.TermMonths)

	cons := in.Consortium()
	assert.Equal(t, 220, cons.TermMonths)
	assert.Equal(t, 40, cons.ContemplationMonth)

	cash := in.OpportunityCost()
	assert.True(t, cash.AnnualRealReturn.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 420, cash.HorizonMonths)
}
