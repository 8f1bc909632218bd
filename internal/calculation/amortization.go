package calculation

import (
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// Amortize builds a constant-amortization (SAC) schedule: the principal repaid
// each month is fixed and interest accrues on the opening balance, so the
// installment declines over time.
//
// Amortize performs arithmetic only. Callers validate the parameters first
// (CalculationEngine.CompareAcquisition does); a non-positive term yields an
// empty schedule.
func Amortize(p domain.LoanParameters) domain.LoanSchedule {
	downPayment := p.Price.Mul(p.DownPaymentPct)
	financed := p.Price.Sub(downPayment)
	monthlyRate := finmath.MonthlyRate(p.AnnualRealRate)

	result := domain.LoanSchedule{
		DownPayment:    downPayment,
		FinancedAmount: financed,
		MonthlyRate:    monthlyRate,
		TotalPaid:      decimal.Zero,
	}
	if p.TermMonths <= 0 {
		result.TotalCost = financed.Neg()
		return result
	}

	amortization := financed.Div(decimal.NewFromInt(int64(p.TermMonths)))
	balance := financed
	result.Schedule = make([]domain.InstallmentRecord, 0, p.TermMonths)

	for month := 1; month <= p.TermMonths; month++ {
		interest := finmath.RoundScale(balance.Mul(monthlyRate))
		installment := amortization.Add(interest)
		result.Schedule = append(result.Schedule, domain.InstallmentRecord{
			Month:        month,
			Balance:      balance,
			Interest:     interest,
			Amortization: amortization,
			Installment:  installment,
		})
		balance = balance.Sub(amortization)
		result.TotalPaid = result.TotalPaid.Add(installment)
	}

	result.FirstInstallment = result.Schedule[0].Installment
	result.TotalCost = result.TotalPaid.Sub(financed)
	return result
}

// FinancingCost is the effective real cost of financing: everything paid,
// down payment included, above the asset price.
func FinancingCost(price decimal.Decimal, s domain.LoanSchedule) decimal.Decimal {
	return s.TotalPaid.Add(s.DownPayment).Sub(price)
}
