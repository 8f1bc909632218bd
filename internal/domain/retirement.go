package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiquidityEvent is a one-off inflow or outflow applied once, at the start of
// the simulated year matching Age. Amount is a magnitude; Inflow gives the sign.
type LiquidityEvent struct {
	ID     string          `yaml:"id" json:"id"`
	Label  string          `yaml:"label" json:"label"`
	Age    int             `yaml:"age" json:"age"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Inflow bool            `yaml:"inflow" json:"inflow"`
}

// NewLiquidityEvent creates an event with a fresh identifier.
func NewLiquidityEvent(label string, age int, amount decimal.Decimal, inflow bool) LiquidityEvent {
	return LiquidityEvent{
		ID:     uuid.NewString(),
		Label:  label,
		Age:    age,
		Amount: amount,
		Inflow: inflow,
	}
}

// SignedAmount is the event's effect on capital.
func (e LiquidityEvent) SignedAmount() decimal.Decimal {
	if e.Inflow {
		return e.Amount
	}
	return e.Amount.Neg()
}

// Validate applies the admission rules for a new event: a label, a positive
// amount and an age inside the simulated window.
func (e LiquidityEvent) Validate(currentAge, lifeExpectancy int) error {
	if strings.TrimSpace(e.Label) == "" {
		return invalidf("liquidity event label is required")
	}
	if !e.Amount.IsPositive() {
		return invalidf("liquidity event %q amount must be positive, got %s", e.Label, e.Amount.String())
	}
	if e.Age < currentAge || e.Age > lifeExpectancy {
		return invalidf("liquidity event %q age must be between %d and %d, got %d", e.Label, currentAge, lifeExpectancy, e.Age)
	}
	return nil
}

// RetirementParameters is the input of the retirement projection. Ages are
// whole years; rates are annual real rates.
type RetirementParameters struct {
	CurrentAge               int              `yaml:"current_age" json:"current_age"`
	RetirementAge            int              `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy           int              `yaml:"life_expectancy" json:"life_expectancy"`
	CurrentCapital           decimal.Decimal  `yaml:"current_capital" json:"current_capital"`
	MonthlyContribution      decimal.Decimal  `yaml:"monthly_contribution" json:"monthly_contribution"`
	DesiredMonthlyWithdrawal decimal.Decimal  `yaml:"desired_monthly_withdrawal" json:"desired_monthly_withdrawal"`
	AccumulationRate         decimal.Decimal  `yaml:"accumulation_rate" json:"accumulation_rate"`
	DecumulationRate         decimal.Decimal  `yaml:"decumulation_rate" json:"decumulation_rate"`
	Events                   []LiquidityEvent `yaml:"events,omitempty" json:"events,omitempty"`
}

// Validate enforces current < retirement < life expectancy and sane amounts.
func (p RetirementParameters) Validate(b Bounds) error {
	if p.CurrentAge < 0 {
		return invalidf("current age cannot be negative, got %d", p.CurrentAge)
	}
	if p.RetirementAge <= p.CurrentAge {
		return invalidf("retirement age (%d) must be greater than current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if p.LifeExpectancy <= p.RetirementAge {
		return invalidf("life expectancy (%d) must be greater than retirement age (%d)", p.LifeExpectancy, p.RetirementAge)
	}
	if b.MaxAge > 0 && p.LifeExpectancy > b.MaxAge {
		return invalidf("life expectancy must not exceed %d, got %d", b.MaxAge, p.LifeExpectancy)
	}
	if err := checkNonNegative("current capital", p.CurrentCapital); err != nil {
		return err
	}
	if err := checkNonNegative("monthly contribution", p.MonthlyContribution); err != nil {
		return err
	}
	if err := checkNonNegative("desired monthly withdrawal", p.DesiredMonthlyWithdrawal); err != nil {
		return err
	}
	if err := b.CheckRate("accumulation rate", p.AccumulationRate); err != nil {
		return err
	}
	if err := b.CheckRate("decumulation rate", p.DecumulationRate); err != nil {
		return err
	}
	for _, e := range p.Events {
		if e.Amount.IsNegative() {
			return invalidf("liquidity event %q amount cannot be negative; use inflow=false for outflows", e.Label)
		}
	}
	return nil
}

// AccumulationYears is the number of simulated years before retirement.
func (p RetirementParameters) AccumulationYears() int { return p.RetirementAge - p.CurrentAge }

// DecumulationYears is the number of years of withdrawals.
func (p RetirementParameters) DecumulationYears() int { return p.LifeExpectancy - p.RetirementAge }

// WithEvent returns a copy of p with e appended. p is not modified.
func (p RetirementParameters) WithEvent(e LiquidityEvent) RetirementParameters {
	events := make([]LiquidityEvent, 0, len(p.Events)+1)
	events = append(events, p.Events...)
	p.Events = append(events, e)
	return p
}

// WithoutEvent returns a copy of p without the event with the given id.
func (p RetirementParameters) WithoutEvent(id string) RetirementParameters {
	events := make([]LiquidityEvent, 0, len(p.Events))
	for _, e := range p.Events {
		if e.ID != id {
			events = append(events, e)
		}
	}
	p.Events = events
	return p
}

// Phase is the state of the simulation in a given year.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseDecumulation Phase = "decumulation"
)

// CapitalPoint is the capital recorded for one simulated age.
type CapitalPoint struct {
	Age     int             `json:"age"`
	Capital decimal.Decimal `json:"capital"`
	Phase   Phase           `json:"phase"`
}

// CapitalDuration summarises how long the capital at retirement lasts.
type CapitalDuration struct {
	FinalAge       int `json:"final_age"`
	YearsSustained int `json:"years_sustained"`
}

// RetirementProjection is the full result of a retirement projection.
// ExhaustionAge is nil when capital lasts through life expectancy.
type RetirementProjection struct {
	Trajectory                   []CapitalPoint   `json:"trajectory"`
	RetirementAge                int              `json:"retirement_age"`
	LifeExpectancy               int              `json:"life_expectancy"`
	RequiredCapital              decimal.Decimal  `json:"required_capital"`
	RequiredMonthlyContribution  decimal.Decimal  `json:"required_monthly_contribution"`
	ContributionUsed             decimal.Decimal  `json:"contribution_used"`
	CapitalAtRetirement          decimal.Decimal  `json:"capital_at_retirement"`
	ExhaustionAge                *int             `json:"exhaustion_age"`
	Duration                     CapitalDuration  `json:"duration"`
	SustainableMonthlyWithdrawal decimal.Decimal  `json:"sustainable_monthly_withdrawal"`
	Events                       []LiquidityEvent `json:"events,omitempty"`
}

// CapitalAt returns the recorded capital at an age and whether the age was simulated.
func (rp *RetirementProjection) CapitalAt(age int) (decimal.Decimal, bool) {
	for _, pt := range rp.Trajectory {
		if pt.Age == age {
			return pt.Capital, true
		}
	}
	return decimal.Zero, false
}

// Exhausted reports whether capital ran out before life expectancy.
func (rp *RetirementProjection) Exhausted() bool { return rp.ExhaustionAge != nil }

// Window returns the trajectory points up to and including maxAge.
func (rp *RetirementProjection) Window(maxAge int) []CapitalPoint {
	out := make([]CapitalPoint, 0, len(rp.Trajectory))
	for _, pt := range rp.Trajectory {
		if pt.Age <= maxAge {
			out = append(out, pt)
		}
	}
	return out
}
