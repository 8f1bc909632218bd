package calculation

import (
	"fmt"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/pkg/finmath"
	"github.com/shopspring/decimal"
)

func futureValue(pv, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	return finmath.FutureValue(pv, monthlyRate, months)
}

// checkAges is the precondition every retirement operation enforces, even
// when called without the engine's full validation.
func checkAges(p domain.RetirementParameters) error {
	if p.RetirementAge <= p.CurrentAge {
		return fmt.Errorf("%w: retirement age (%d) must be greater than current age (%d)",
			domain.ErrInvalidParameterRange, p.RetirementAge, p.CurrentAge)
	}
	if p.LifeExpectancy <= p.RetirementAge {
		return fmt.Errorf("%w: life expectancy (%d) must be greater than retirement age (%d)",
			domain.ErrInvalidParameterRange, p.LifeExpectancy, p.RetirementAge)
	}
	return nil
}

// RequiredCapital is the capital needed at retirement to fund the desired
// monthly withdrawal until life expectancy: the present value of an ordinary
// annuity at the decumulation rate.
func RequiredCapital(p domain.RetirementParameters) decimal.Decimal {
	months := p.DecumulationYears() * 12
	rate := finmath.MonthlyRate(p.DecumulationRate)
	return finmath.AnnuityPresentValue(p.DesiredMonthlyWithdrawal, rate, months)
}

// projectedCapital is the value at retirement of today's capital and every
// pre-retirement liquidity event, compounded monthly at the accumulation rate.
func projectedCapital(p domain.RetirementParameters) decimal.Decimal {
	rate := finmath.MonthlyRate(p.AccumulationRate)
	current := futureValue(p.CurrentCapital, rate, p.AccumulationYears()*12)
	return current.Add(eventsFutureValue(p, rate))
}

// SolveRequiredContribution returns the level monthly contribution that closes
// the gap between the required capital and what current capital plus
// pre-retirement events will be worth at retirement. It is zero when there is
// no gap.
func SolveRequiredContribution(p domain.RetirementParameters) (decimal.Decimal, error) {
	if err := checkAges(p); err != nil {
		return decimal.Zero, err
	}
	shortfall := RequiredCapital(p).Sub(projectedCapital(p))
	if !shortfall.IsPositive() {
		return decimal.Zero, nil
	}
	rate := finmath.MonthlyRate(p.AccumulationRate)
	months := p.AccumulationYears() * 12
	return finmath.PMT(rate, months, decimal.Zero, shortfall, false).Abs(), nil
}

// SimulateWithContribution reproduces the year-by-year capital curve using
// the given monthly contribution. Liquidity events apply at the start of
// their year, before growth. During decumulation the recorded capital is
// floored at zero; the first age at which capital is exhausted is returned,
// or nil when it lasts through life expectancy.
func SimulateWithContribution(p domain.RetirementParameters, monthlyContribution decimal.Decimal) ([]domain.CapitalPoint, *int, error) {
	if err := checkAges(p); err != nil {
		return nil, nil, err
	}

	events := bucketEvents(p.Events)
	trajectory := make([]domain.CapitalPoint, 0, p.LifeExpectancy-p.CurrentAge+1)
	capital := p.CurrentCapital
	annualContribution := finmath.Annualize(monthlyContribution)

	for age := p.CurrentAge; age < p.RetirementAge; age++ {
		capital = capital.Add(events.at(age))
		trajectory = append(trajectory, domain.CapitalPoint{Age: age, Capital: capital, Phase: domain.PhaseAccumulation})
		capital = finmath.RoundScale(capital.Add(capital.Mul(p.AccumulationRate)).Add(annualContribution))
	}

	annualWithdrawal := finmath.Annualize(p.DesiredMonthlyWithdrawal)
	var exhaustedAt *int
	for age := p.RetirementAge; age <= p.LifeExpectancy; age++ {
		capital = capital.Add(events.at(age))
		if !capital.IsPositive() {
			capital = decimal.Zero
			trajectory = append(trajectory, domain.CapitalPoint{Age: age, Capital: capital, Phase: domain.PhaseDecumulation})
			if exhaustedAt == nil {
				a := age
				exhaustedAt = &a
			}
			continue
		}
		trajectory = append(trajectory, domain.CapitalPoint{Age: age, Capital: capital, Phase: domain.PhaseDecumulation})
		capital = finmath.RoundScale(capital.Add(capital.Mul(p.DecumulationRate)).Sub(annualWithdrawal))
	}

	return trajectory, exhaustedAt, nil
}

// CapitalDurationFrom reruns the decumulation recurrence from the capital at
// retirement, ignoring liquidity events, and reports the last age reached
// with positive capital and how many years of withdrawals it sustained.
func CapitalDurationFrom(p domain.RetirementParameters, capitalAtRetirement decimal.Decimal) domain.CapitalDuration {
	annualWithdrawal := finmath.Annualize(p.DesiredMonthlyWithdrawal)
	capital := capitalAtRetirement
	age := p.RetirementAge

	for capital.IsPositive() && age < p.LifeExpectancy {
		capital = finmath.RoundScale(capital.Add(capital.Mul(p.DecumulationRate)).Sub(annualWithdrawal))
		age++
	}

	if capital.IsPositive() {
		return domain.CapitalDuration{
			FinalAge:       p.LifeExpectancy,
			YearsSustained: p.DecumulationYears(),
		}
	}
	finalAge := age - 1
	if finalAge < p.RetirementAge {
		finalAge = p.RetirementAge
	}
	return domain.CapitalDuration{
		FinalAge:       finalAge,
		YearsSustained: finalAge - p.RetirementAge,
	}
}

// SustainableMonthlyWithdrawal is the level monthly payout that the capital
// accumulated with the given contribution would fund until life expectancy.
func SustainableMonthlyWithdrawal(p domain.RetirementParameters, monthlyContribution decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAges(p); err != nil {
		return decimal.Zero, err
	}
	accRate := finmath.MonthlyRate(p.AccumulationRate)
	accumulated := projectedCapital(p).Add(
		finmath.AnnuityFutureValue(monthlyContribution, accRate, p.AccumulationYears()*12))
	if !accumulated.IsPositive() {
		return decimal.Zero, nil
	}
	decRate := finmath.MonthlyRate(p.DecumulationRate)
	return finmath.AnnuityPayment(accumulated, decRate, p.DecumulationYears()*12), nil
}

// Project computes the full retirement projection simulated with the
// caller's own monthly contribution. The solved contribution is reported
// alongside but not used.
func Project(p domain.RetirementParameters) (domain.RetirementProjection, error) {
	return project(p, false)
}

// ProjectWithSolvedContribution computes the projection after feeding the
// solved contribution back into the simulation.
func ProjectWithSolvedContribution(p domain.RetirementParameters) (domain.RetirementProjection, error) {
	return project(p, true)
}

func project(p domain.RetirementParameters, useSolved bool) (domain.RetirementProjection, error) {
	if err := checkAges(p); err != nil {
		return domain.RetirementProjection{}, err
	}

	required, err := SolveRequiredContribution(p)
	if err != nil {
		return domain.RetirementProjection{}, err
	}
	contribution := p.MonthlyContribution
	if useSolved {
		contribution = required
	}

	trajectory, exhaustedAt, err := SimulateWithContribution(p, contribution)
	if err != nil {
		return domain.RetirementProjection{}, err
	}
	sustainable, err := SustainableMonthlyWithdrawal(p, contribution)
	if err != nil {
		return domain.RetirementProjection{}, err
	}

	out := domain.RetirementProjection{
		Trajectory:                   trajectory,
		RetirementAge:                p.RetirementAge,
		LifeExpectancy:               p.LifeExpectancy,
		RequiredCapital:              RequiredCapital(p),
		RequiredMonthlyContribution:  required,
		ContributionUsed:             contribution,
		ExhaustionAge:                exhaustedAt,
		SustainableMonthlyWithdrawal: sustainable,
		Events:                       append([]domain.LiquidityEvent(nil), p.Events...),
	}
	out.CapitalAtRetirement, _ = out.CapitalAt(p.RetirementAge)
	out.Duration = CapitalDurationFrom(p, out.CapitalAtRetirement)
	return out, nil
}

// HorizonPreset picks a retirement age relative to the current age.
type HorizonPreset string

const (
	HorizonFull   HorizonPreset = "full"
	Horizon10Year HorizonPreset = "10y"
	Horizon20Year HorizonPreset = "20y"
	Horizon30Year HorizonPreset = "30y"
)

// RetirementAgeForPreset resolves a preset to a retirement age. The full
// preset, and an empty one, keep the configured age.
func RetirementAgeForPreset(p domain.RetirementParameters, preset HorizonPreset) (int, error) {
	switch preset {
	case "", HorizonFull:
		return p.RetirementAge, nil
	case Horizon10Year:
		return p.CurrentAge + 10, nil
	case Horizon20Year:
		return p.CurrentAge + 20, nil
	case Horizon30Year:
		return p.CurrentAge + 30, nil
	default:
		return 0, fmt.Errorf("%w: unknown horizon preset %q", domain.ErrInvalidParameterRange, preset)
	}
}

// ViewUntilAge resolves a view preset to the last age the trajectory shows.
// The full view, and an empty one, return zero.
func ViewUntilAge(p domain.RetirementParameters, view HorizonPreset) (int, error) {
	switch view {
	case "", HorizonFull:
		return 0, nil
	case Horizon10Year, Horizon20Year, Horizon30Year:
		return RetirementAgeForPreset(p, view)
	default:
		return 0, fmt.Errorf("%w: unknown view %q", domain.ErrInvalidParameterRange, view)
	}
}
