package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct {
	// Now is the reference date used to turn a birth date into an age.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a configuration document and validates it.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. A birth date is
// resolved into the current age and liquidity events without an id get one.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Acquisition == nil && config.Retirement == nil {
		return fmt.Errorf("%w: no acquisition or retirement block provided", domain.ErrInvalidParameterRange)
	}

	bounds := config.EffectiveBounds()

	if config.Acquisition != nil {
		if err := config.Acquisition.Validate(bounds); err != nil {
			return fmt.Errorf("acquisition: %w", err)
		}
	}

	if config.Retirement != nil {
		if err := ip.validateRetirement(config.Retirement, bounds); err != nil {
			return fmt.Errorf("retirement: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateRetirement(in *domain.RetirementInput, bounds domain.Bounds) error {
	if in.BirthDate != nil {
		now := time.Now
		if ip.Now != nil {
			now = ip.Now
		}
		at := now()
		if in.BirthDate.After(at) {
			return fmt.Errorf("%w: birth date %s is in the future", domain.ErrInvalidParameterRange, in.BirthDate.Format("2006-01-02"))
		}
		in.CurrentAge = dateutil.Age(*in.BirthDate, at)
	}

	params := in.RetirementParameters
	age, err := calculation.RetirementAgeForPreset(params, calculation.HorizonPreset(in.HorizonPreset))
	if err != nil {
		return err
	}
	params.RetirementAge = age

	if err := params.Validate(bounds); err != nil {
		return err
	}
	if _, err := calculation.ViewUntilAge(params, calculation.HorizonPreset(in.View)); err != nil {
		return err
	}

	for i := range in.Events {
		e := &in.Events[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if err := e.Validate(params.CurrentAge, params.LifeExpectancy); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	return nil
}

// MarshalConfiguration renders a configuration as YAML.
func MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}

// CreateExampleConfiguration creates an example configuration with the
// simulator's default values.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Acquisition: &domain.AcquisitionInput{
			AssetPrice:              decimal.NewFromInt(500000),
			DownPaymentPct:          decimal.NewFromFloat(0.20),
			FinancingRealRate:       decimal.NewFromFloat(0.07),
			FinancingTermMonths:     420,
			AdminFeePct:             decimal.NewFromFloat(0.20),
			EmbeddedBidPct:          decimal.NewFromFloat(0.10),
			ConsortiumTermMonths:    220,
			ContemplationMonth:      40,
			CashReturnRate:          decimal.NewFromFloat(0.05),
			ComparisonHorizonMonths: 420,
		},
		Retirement: &domain.RetirementInput{
			RetirementParameters: domain.RetirementParameters{
				CurrentAge:               35,
				RetirementAge:            65,
				LifeExpectancy:           90,
				CurrentCapital:           decimal.NewFromInt(100000),
				MonthlyContribution:      decimal.NewFromInt(2000),
				DesiredMonthlyWithdrawal: decimal.NewFromInt(10000),
				AccumulationRate:         decimal.NewFromFloat(0.03),
				DecumulationRate:         decimal.NewFromFloat(0.03),
				Events: []domain.LiquidityEvent{
					{ID: "inheritance", Label: "Inheritance", Age: 50, Amount: decimal.NewFromInt(200000), Inflow: true},
					{ID: "house-renovation", Label: "House renovation", Age: 58, Amount: decimal.NewFromInt(80000), Inflow: false},
				},
			},
		},
	}
}
