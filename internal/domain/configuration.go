package domain

import "time"

// RetirementInput is the retirement block of a configuration file. When
// BirthDate is set the current age is derived from it at load time.
type RetirementInput struct {
	RetirementParameters `yaml:",inline"`
	BirthDate            *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	SolveContribution    bool       `yaml:"solve_contribution,omitempty" json:"solve_contribution,omitempty"`
	HorizonPreset        string     `yaml:"horizon_preset,omitempty" json:"horizon_preset,omitempty"`
	// View limits the rendered trajectory to the first 10, 20 or 30 years.
	View string `yaml:"view,omitempty" json:"view,omitempty"`
}

// Configuration is the document read by the CLI: either block may be omitted.
type Configuration struct {
	Bounds      *Bounds           `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Acquisition *AcquisitionInput `yaml:"acquisition,omitempty" json:"acquisition,omitempty"`
	Retirement  *RetirementInput  `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// EffectiveBounds returns the configured bounds or the defaults.
func (c *Configuration) EffectiveBounds() Bounds {
	if c.Bounds != nil {
		return *c.Bounds
	}
	return DefaultBounds()
}

// Report is what the output formatters render.
type Report struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Acquisition *AcquisitionComparison `json:"acquisition,omitempty"`
	Retirement  *RetirementProjection  `json:"retirement,omitempty"`
	// RetirementDate is set when the configuration carried a birth date.
	RetirementDate *time.Time `json:"retirement_date,omitempty"`
	Assumptions    []string   `json:"assumptions,omitempty"`
	// ViewUntilAge caps the trajectory the formatters render; zero shows it all.
	ViewUntilAge int `json:"view_until_age,omitempty"`
}

// VisibleTrajectory returns the retirement trajectory within the report's view.
func (r *Report) VisibleTrajectory() []CapitalPoint {
	if r.Retirement == nil {
		return nil
	}
	if r.ViewUntilAge <= 0 {
		return r.Retirement.Trajectory
	}
	return r.Retirement.Window(r.ViewUntilAge)
}
