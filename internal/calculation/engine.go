package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/pkg/dateutil"
)

// CalculationEngine validates inputs against the configured bounds and runs
// the real-estate and retirement engines. It holds only read-only
// configuration and is safe for concurrent use once constructed.
type CalculationEngine struct {
	Bounds domain.Bounds
	Logger Logger
}

// NewCalculationEngine creates an engine with the default bounds
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithBounds(domain.DefaultBounds())
}

// NewCalculationEngineWithBounds creates an engine with custom rate and term bounds
func NewCalculationEngineWithBounds(b domain.Bounds) *CalculationEngine {
	return &CalculationEngine{
		Bounds: b,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CompareAcquisition validates the input and compares financing, consortium
// and cash purchase.
func (ce *CalculationEngine) CompareAcquisition(ctx context.Context, in domain.AcquisitionInput) (*domain.AcquisitionComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(ce.Bounds); err != nil {
		return nil, fmt.Errorf("acquisition input: %w", err)
	}

	result := Compare(in)
	ce.Logger.Debugf("acquisition price=%s financing=%s consortium=%s cash=%s best=%s",
		in.AssetPrice.StringFixed(2),
		result.FinancingCost.StringFixed(2),
		result.ConsortiumCost.StringFixed(2),
		result.CashCost.StringFixed(2),
		result.Verdict.Best)
	return &result, nil
}

// ProjectRetirement validates the parameters and projects the capital curve.
// With solveContribution the solved contribution replaces the caller's own.
func (ce *CalculationEngine) ProjectRetirement(ctx context.Context, p domain.RetirementParameters, solveContribution bool) (*domain.RetirementProjection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Validate(ce.Bounds); err != nil {
		return nil, fmt.Errorf("retirement parameters: %w", err)
	}

	var (
		projection domain.RetirementProjection
		err        error
	)
	if solveContribution {
		projection, err = ProjectWithSolvedContribution(p)
	} else {
		projection, err = Project(p)
	}
	if err != nil {
		return nil, fmt.Errorf("retirement projection: %w", err)
	}

	ce.Logger.Debugf("retirement required_capital=%s contribution=%s capital_at_retirement=%s events=%d",
		projection.RequiredCapital.StringFixed(2),
		projection.ContributionUsed.StringFixed(2),
		projection.CapitalAtRetirement.StringFixed(2),
		len(p.Events))
	if projection.Exhausted() {
		ce.Logger.Warnf("capital exhausted at age %d, before life expectancy %d",
			*projection.ExhaustionAge, p.LifeExpectancy)
	}
	return &projection, nil
}

// AddLiquidityEvent admits a new event into the parameters and returns the
// updated copy. The input is left untouched. An event without an ID gets one.
func (ce *CalculationEngine) AddLiquidityEvent(p domain.RetirementParameters, e domain.LiquidityEvent) (domain.RetirementParameters, error) {
	if err := e.Validate(p.CurrentAge, p.LifeExpectancy); err != nil {
		return p, err
	}
	if e.ID == "" {
		e = domain.NewLiquidityEvent(e.Label, e.Age, e.Amount, e.Inflow)
	}
	return p.WithEvent(e), nil
}

// RunConfiguration runs every block present in the configuration and
// assembles the report.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is nil", domain.ErrInvalidParameterRange)
	}
	if cfg.Acquisition == nil && cfg.Retirement == nil {
		return nil, fmt.Errorf("%w: configuration has neither an acquisition nor a retirement block", domain.ErrInvalidParameterRange)
	}

	engine := ce
	if cfg.Bounds != nil {
		engine = &CalculationEngine{Bounds: *cfg.Bounds, Logger: ce.Logger}
	}

	report := &domain.Report{GeneratedAt: nowFunc()}

	if cfg.Acquisition != nil {
		comparison, err := engine.CompareAcquisition(ctx, *cfg.Acquisition)
		if err != nil {
			return nil, err
		}
		report.Acquisition = comparison
		report.Assumptions = append(report.Assumptions,
			"Financing uses constant amortization (SAC) with interest on the opening balance",
			"Consortium embedded bid reduces the net letter value only; payments are unchanged",
			"Cash purchase cost is the yield forgone over the comparison horizon")
	}

	if cfg.Retirement != nil {
		params := cfg.Retirement.RetirementParameters
		age, err := RetirementAgeForPreset(params, HorizonPreset(cfg.Retirement.HorizonPreset))
		if err != nil {
			return nil, err
		}
		params.RetirementAge = age

		projection, err := engine.ProjectRetirement(ctx, params, cfg.Retirement.SolveContribution)
		if err != nil {
			return nil, err
		}
		report.Retirement = projection
		report.ViewUntilAge, err = ViewUntilAge(params, HorizonPreset(cfg.Retirement.View))
		if err != nil {
			return nil, err
		}
		if cfg.Retirement.BirthDate != nil {
			date := dateutil.DateAtAge(*cfg.Retirement.BirthDate, params.RetirementAge)
			report.RetirementDate = &date
		}
		report.Assumptions = append(report.Assumptions,
			"Rates are real; annual rates convert to the equivalent monthly rate",
			"Liquidity events apply at the start of the year matching their age",
			"Capital at or below zero during retirement is reported as zero")
		if cfg.Retirement.SolveContribution {
			report.Assumptions = append(report.Assumptions,
				"The simulation uses the solved monthly contribution")
		}
	}

	return report, nil
}
