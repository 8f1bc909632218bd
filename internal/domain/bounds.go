package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Bounds is the read-only configuration shared by every engine: the sane
// domain for real rates and the longest terms accepted.
type Bounds struct {
	MinAnnualRate decimal.Decimal `yaml:"min_annual_rate" json:"min_annual_rate"`
	MaxAnnualRate decimal.Decimal `yaml:"max_annual_rate" json:"max_annual_rate"`
	MaxTermMonths int             `yaml:"max_term_months" json:"max_term_months"`
	MaxAge        int             `yaml:"max_age" json:"max_age"`
}

// DefaultBounds allows real rates between -50% and 100% a year, terms up to
// 100 years and ages up to 130.
func DefaultBounds() Bounds {
	return Bounds{
		MinAnnualRate: decimal.NewFromFloat(-0.5),
		MaxAnnualRate: decimal.NewFromInt(1),
		MaxTermMonths: 1200,
		MaxAge:        130,
	}
}

// UnmarshalYAML decodes a bounds block on top of DefaultBounds, so fields the
// document leaves out keep their defaults.
func (b *Bounds) UnmarshalYAML(value *yaml.Node) error {
	type plain Bounds
	decoded := plain(DefaultBounds())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*b = Bounds(decoded)
	return nil
}

// UnmarshalJSON is the JSON counterpart of UnmarshalYAML.
func (b *Bounds) UnmarshalJSON(data []byte) error {
	type plain Bounds
	decoded := plain(DefaultBounds())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = Bounds(decoded)
	return nil
}

// CheckRate validates an annual real rate against the bounds.
func (b Bounds) CheckRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(b.MinAnnualRate) || rate.GreaterThan(b.MaxAnnualRate) {
		return invalidf("%s must be between %s and %s, got %s", name,
			b.MinAnnualRate.String(), b.MaxAnnualRate.String(), rate.String())
	}
	return nil
}

// CheckTerm validates a term in months.
func (b Bounds) CheckTerm(name string, months int) error {
	if months <= 0 {
		return invalidf("%s must be positive, got %d", name, months)
	}
	if b.MaxTermMonths > 0 && months > b.MaxTermMonths {
		return invalidf("%s must not exceed %d months, got %d", name, b.MaxTermMonths, months)
	}
	return nil
}

func checkFraction(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		return invalidf("%s must be between 0 and 1, got %s", name, v.String())
	}
	return nil
}

func checkNonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalidf("%s cannot be negative, got %s", name, v.String())
	}
	return nil
}
