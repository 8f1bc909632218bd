package calculation

import (
	"testing"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertClose(t *testing.T, expected, actual, tolerance decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, actual.Sub(expected).Abs().LessThanOrEqual(tolerance),
		append([]interface{}{"expected %s, got %s (tolerance %s)", expected.String(), actual.String(), tolerance.String()}, msgAndArgs...)...)
}

func TestAmortize_ReferenceScenario(t *testing.T) {
	s := Amortize(domain.LoanParameters{
		Price:          d("500000"),
		DownPaymentPct: d("0.20"),
		AnnualRealRate: d("0.07"),
		TermMonths:     420,
	})

	require.Len(t, s.Schedule, 420)
	assert.True(t, s.DownPayment.Equal(d("100000")))
	assert.True(t, s.FinancedAmount.Equal(d("400000")))

	// 400,000 / 420 months of principal plus interest on the full balance.
	amortization := d("400000").Div(decimal.NewFromInt(420))
	first := s.Schedule[0]
	assertClose(t, d("952.38"), first.Amortization, d("0.01"))
	assertClose(t, d("400000").Mul(s.MonthlyRate), first.Interest, d("0.000001"))
	assertClose(t, d("3214.04"), s.FirstInstallment, d("0.01"))

	closing := s.Schedule[419].Balance.Sub(amortization)
	assertClose(t, decimal.Zero, closing, d("0.000001"))
	assertClose(t, d("476079"), s.TotalCost, d("1"))
	assert.True(t, s.TotalCost.Equal(s.TotalPaid.Sub(s.FinancedAmount)))
}

func TestAmortize_Invariants(t *testing.T) {
	cases := []struct {
		name string
		p    domain.LoanParameters
	}{
		{"short term", domain.LoanParameters{Price: d("250000"), DownPaymentPct: d("0.3"), AnnualRealRate: d("0.05"), TermMonths: 12}},
		{"long term", domain.LoanParameters{Price: d("1200000"), DownPaymentPct: d("0.1"), AnnualRealRate: d("0.09"), TermMonths: 360}},
		{"odd split", domain.LoanParameters{Price: d("333333.33"), DownPaymentPct: d("0.17"), AnnualRealRate: d("0.045"), TermMonths: 97}},
		{"negative real rate", domain.LoanParameters{Price: d("100000"), DownPaymentPct: d("0"), AnnualRealRate: d("-0.01"), TermMonths: 60}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Amortize(tc.p)
			require.Len(t, s.Schedule, tc.p.TermMonths)

			sum := decimal.Zero
			paid := decimal.Zero
			for i, rec := range s.Schedule {
				assert.Equal(t, i+1, rec.Month)
				assert.True(t, rec.Installment.Equal(rec.Amortization.Add(rec.Interest)))
				assert.True(t, rec.Amortization.Equal(s.Schedule[0].Amortization), "amortization must be constant")
				if i > 0 {
					assert.True(t, rec.Balance.LessThan(s.Schedule[i-1].Balance), "balance must strictly decrease")
					assert.True(t, rec.Balance.Equal(s.Schedule[i-1].Balance.Sub(rec.Amortization)))
				}
				sum = sum.Add(rec.Amortization)
				paid = paid.Add(rec.Installment)
			}

			tolerance := s.FinancedAmount.Mul(d("0.000001"))
			assertClose(t, s.FinancedAmount, sum, tolerance)
			assert.True(t, paid.Equal(s.TotalPaid))

			last := s.Schedule[len(s.Schedule)-1]
			assertClose(t, decimal.Zero, last.Balance.Sub(last.Amortization), tolerance)
		})
	}
}

func TestAmortize_ZeroRate(t *testing.T) {
	s := Amortize(domain.LoanParameters{
		Price:          d("120000"),
		DownPaymentPct: d("0.25"),
		AnnualRealRate: decimal.Zero,
		TermMonths:     90,
	})

	expected := s.FinancedAmount.Div(decimal.NewFromInt(90))
	for _, rec := range s.Schedule {
		assert.True(t, rec.Interest.IsZero())
		assert.True(t, rec.Installment.Equal(expected), "month %d: %s", rec.Month, rec.Installment)
	}
	assert.True(t, s.MonthlyRate.IsZero())
}

func TestAmortize_FullDownPayment(t *testing.T) {
	s := Amortize(domain.LoanParameters{
		Price:          d("300000"),
		DownPaymentPct: d("1"),
		AnnualRealRate: d("0.06"),
		TermMonths:     24,
	})

	assert.True(t, s.FinancedAmount.IsZero())
	require.Len(t, s.Schedule, 24)
	for _, rec := range s.Schedule {
		assert.True(t, rec.Installment.IsZero())
	}
	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, FinancingCost(d("300000"), s).IsZero())
}

func TestAmortize_NonPositiveTerm(t *testing.T) {
	s := Amortize(domain.LoanParameters{Price: d("1000"), DownPaymentPct: d("0"), AnnualRealRate: d("0.05")})
	assert.Empty(t, s.Schedule)
	assert.True(t, s.TotalPaid.IsZero())
}

func TestAmortize_Idempotent(t *testing.T) {
	p := domain.LoanParameters{Price: d("480000"), DownPaymentPct: d("0.2"), AnnualRealRate: d("0.065"), TermMonths: 240}
	assert.Equal(t, Amortize(p), Amortize(p))
}
