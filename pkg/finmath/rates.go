// Package finmath holds the compounding and annuity idioms shared by the
// real-estate and retirement engines. Every formula takes and returns
// shopspring decimals; only the fractional-power rate conversion goes
// through float64.
package finmath

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the compounding frequency used by every engine.
const MonthsPerYear = 12

// Scale is the number of decimal places kept on running balances so that
// month-by-month recurrences do not accumulate unbounded precision.
const Scale = 16

// growthPrecision bounds the scale of integer powers so long horizons do not
// carry thousands of digits into later multiplications.
const growthPrecision = 20

var (
	one      = decimal.NewFromInt(1)
	epsilon  = decimal.New(1, -12)
	monthsPY = decimal.NewFromInt(MonthsPerYear)
)

// MonthlyRate converts an annual effective rate into the equivalent monthly
// rate: (1+annual)^(1/12) - 1.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	if annual.IsZero() {
		return decimal.Zero
	}
	m := math.Pow(1+annual.InexactFloat64(), 1.0/MonthsPerYear) - 1
	return decimal.NewFromFloat(m)
}

// IsDegenerateRate reports whether a periodic rate is close enough to zero
// that the closed-form annuity formulas must use their linear branch.
func IsDegenerateRate(rate decimal.Decimal) bool {
	return rate.Abs().LessThan(epsilon)
}

// Growth returns (1+rate)^n. Negative n yields the discount factor.
func Growth(rate decimal.Decimal, n int) decimal.Decimal {
	if n == 0 || rate.IsZero() {
		return one
	}
	base := one.Add(rate)
	if n < 0 {
		return one.DivRound(Growth(rate, -n), growthPrecision)
	}
	return base.Pow(decimal.NewFromInt(int64(n))).Round(growthPrecision)
}

// PMT is the spreadsheet payment function. The result carries the
// spreadsheet sign convention: money paid out is negative. due selects
// payments at the start of each period.
func PMT(rate decimal.Decimal, periods int, pv, fv decimal.Decimal, due bool) decimal.Decimal {
	n := decimal.NewFromInt(int64(periods))
	if IsDegenerateRate(rate) {
		return pv.Add(fv).Neg().Div(n)
	}
	x := Growth(rate, periods)
	numerator := pv.Mul(x).Add(fv).Neg().Mul(rate)
	denominator := x.Sub(one)
	if due {
		denominator = denominator.Mul(one.Add(rate))
	}
	return numerator.Div(denominator)
}

// AnnuityPresentValue is the present value of periods level payments made at
// the end of each period.
func AnnuityPresentValue(payment, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if IsDegenerateRate(rate) {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	return payment.Mul(one.Sub(Growth(rate, -periods))).Div(rate)
}

// AnnuityFutureValue is the value after periods level end-of-period payments.
func AnnuityFutureValue(payment, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if IsDegenerateRate(rate) {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	return payment.Mul(Growth(rate, periods).Sub(one)).Div(rate)
}

// AnnuityPayment is the level end-of-period payout that a present value
// sustains for periods periods.
func AnnuityPayment(pv, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if IsDegenerateRate(rate) {
		return pv.Div(decimal.NewFromInt(int64(periods)))
	}
	return pv.Mul(rate).Div(one.Sub(Growth(rate, -periods)))
}

// FutureValue compounds a lump sum for periods periods.
func FutureValue(pv, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return pv
	}
	return pv.Mul(Growth(rate, periods))
}

// RoundScale rounds a running balance to Scale places.
func RoundScale(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Annualize turns a monthly amount into a yearly one.
func Annualize(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPY)
}
