package output

import (
	"testing"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeAcquisition_SavingsAgainstRunnerUp(t *testing.T) {
	c := &domain.AcquisitionComparison{
		Verdict: domain.ComparisonVerdict{
			Best: domain.OptionConsortium,
			Ranking: []domain.RankedOption{
				{Option: domain.OptionConsortium, Cost: decimal.NewFromInt(75000)},
				{Option: domain.OptionCash, Cost: decimal.NewFromInt(100000)},
				{Option: domain.OptionFinancing, Cost: decimal.NewFromInt(400000)},
			},
		},
	}

	rec := AnalyzeAcquisition(c)
	assert.Equal(t, domain.OptionConsortium, rec.Option)
	assert.Equal(t, domain.OptionCash, rec.RunnerUp)
	assert.True(t, rec.Savings.Equal(decimal.NewFromInt(25000)))
	assert.True(t, rec.PercentageSaving.Equal(decimal.NewFromInt(25)))
}

func TestAnalyzeAcquisition_Empty(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeAcquisition(nil))
	assert.Equal(t, Recommendation{}, AnalyzeAcquisition(&domain.AcquisitionComparison{}))
}

func TestAnalyzeRetirement(t *testing.T) {
	age := 80
	p := &domain.RetirementProjection{
		RequiredCapital:             decimal.NewFromInt(2000000),
		CapitalAtRetirement:         decimal.NewFromInt(1500000),
		RequiredMonthlyContribution: decimal.NewFromInt(3500),
		ContributionUsed:            decimal.NewFromInt(2000),
		ExhaustionAge:               &age,
	}

	s := AnalyzeRetirement(p)
	assert.False(t, s.OnTrack)
	assert.True(t, s.ContributionGap.Equal(decimal.NewFromInt(1500)))
	assert.True(t, s.CapitalGap.Equal(decimal.NewFromInt(500000)))

	p.ContributionUsed = decimal.NewFromInt(5000)
	p.ExhaustionAge = nil
	s = AnalyzeRetirement(p)
	assert.True(t, s.OnTrack)
	assert.True(t, s.ContributionGap.IsZero())

	assert.Equal(t, RetirementStatus{}, AnalyzeRetirement(nil))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Financing (SAC)", OptionLabel(domain.OptionFinancing))
	assert.Equal(t, "Cash purchase", OptionLabel(domain.OptionCash))
	assert.Equal(t, "other", OptionLabel(domain.AcquisitionOption("other")))
}
