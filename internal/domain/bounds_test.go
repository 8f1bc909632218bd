package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBounds_PartialBlockKeepsDefaults(t *testing.T) {
	defaults := DefaultBounds()

	var fromYAML Bounds
	require.NoError(t, yaml.Unmarshal([]byte("max_term_months: 600\n"), &fromYAML))

	var fromJSON Bounds
	require.NoError(t, json.Unmarshal([]byte(`{"max_term_months": 600}`), &fromJSON))

	for name, b := range map[string]Bounds{"yaml": fromYAML, "json": fromJSON} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 600, b.MaxTermMonths)
			assert.Equal(t, defaults.MaxAge, b.MaxAge)
			assert.True(t, b.MinAnnualRate.Equal(defaults.MinAnnualRate))
			assert.True(t, b.MaxAnnualRate.Equal(defaults.MaxAnnualRate))
			assert.NoError(t, b.CheckRate("financing real rate", decimal.NewFromFloat(0.07)))
			assert.ErrorIs(t, b.CheckTerm("financing term", 700), ErrInvalidParameterRange)
		})
	}
}

func TestBounds_ExplicitRatesOverrideDefaults(t *testing.T) {
	var b Bounds
	require.NoError(t, yaml.Unmarshal([]byte("min_annual_rate: 0\nmax_annual_rate: 0.1\n"), &b))

	assert.True(t, b.MinAnnualRate.IsZero())
	assert.NoError(t, b.CheckRate("rate", decimal.NewFromFloat(0.07)))
	assert.ErrorIs(t, b.CheckRate("rate", decimal.NewFromFloat(0.12)), ErrInvalidParameterRange)
	assert.ErrorIs(t, b.CheckRate("rate", decimal.NewFromFloat(-0.01)), ErrInvalidParameterRange)
	assert.Equal(t, DefaultBounds().MaxTermMonths, b.MaxTermMonths)
}
