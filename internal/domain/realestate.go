package domain

import "github.com/shopspring/decimal"

// LoanParameters describes a constant-amortization (SAC) financing.
// AnnualRealRate is already net of inflation; callers convert nominal rates.
type LoanParameters struct {
	Price          decimal.Decimal `yaml:"price" json:"price"`
	DownPaymentPct decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	AnnualRealRate decimal.Decimal `yaml:"annual_real_rate" json:"annual_real_rate"`
	TermMonths     int             `yaml:"term_months" json:"term_months"`
}

// Validate checks the loan against the bounds. A down payment of 100% is
// accepted and yields an all-zero schedule.
func (p LoanParameters) Validate(b Bounds) error {
	if err := checkNonNegative("price", p.Price); err != nil {
		return err
	}
	if err := checkFraction("down payment", p.DownPaymentPct); err != nil {
		return err
	}
	if err := b.CheckRate("financing real rate", p.AnnualRealRate); err != nil {
		return err
	}
	return b.CheckTerm("financing term", p.TermMonths)
}

// InstallmentRecord is one month of a SAC schedule. Balance is the opening
// balance for the month.
type InstallmentRecord struct {
	Month        int             `json:"month"`
	Balance      decimal.Decimal `json:"balance"`
	Interest     decimal.Decimal `json:"interest"`
	Amortization decimal.Decimal `json:"amortization"`
	Installment  decimal.Decimal `json:"installment"`
}

// LoanSchedule is the result of amortizing a loan.
type LoanSchedule struct {
	DownPayment      decimal.Decimal     `json:"down_payment"`
	FinancedAmount   decimal.Decimal     `json:"financed_amount"`
	MonthlyRate      decimal.Decimal     `json:"monthly_rate"`
	FirstInstallment decimal.Decimal     `json:"first_installment"`
	Schedule         []InstallmentRecord `json:"schedule"`
	TotalPaid        decimal.Decimal     `json:"total_paid"`
	TotalCost        decimal.Decimal     `json:"total_cost"`
}

// ConsortiumParameters describes a consortium letter. ContemplationMonth only
// labels the schedule; it never changes the payment.
type ConsortiumParameters struct {
	Price              decimal.Decimal `yaml:"price" json:"price"`
	AdminFeePct        decimal.Decimal `yaml:"admin_fee_pct" json:"admin_fee_pct"`
	EmbeddedBidPct     decimal.Decimal `yaml:"embedded_bid_pct" json:"embedded_bid_pct"`
	TermMonths         int             `yaml:"term_months" json:"term_months"`
	ContemplationMonth int             `yaml:"contemplation_month" json:"contemplation_month"`
}

// Validate checks the consortium inputs against the bounds.
func (p ConsortiumParameters) Validate(b Bounds) error {
	if err := checkNonNegative("price", p.Price); err != nil {
		return err
	}
	if err := checkFraction("administrative fee", p.AdminFeePct); err != nil {
		return err
	}
	if err := checkFraction("embedded bid", p.EmbeddedBidPct); err != nil {
		return err
	}
	if err := b.CheckTerm("consortium term", p.TermMonths); err != nil {
		return err
	}
	if p.ContemplationMonth < 0 {
		return invalidf("contemplation month cannot be negative, got %d", p.ContemplationMonth)
	}
	return nil
}

// ConsortiumPhase labels a consortium month relative to contemplation.
type ConsortiumPhase string

const (
	PhaseBeforeContemplation ConsortiumPhase = "before_contemplation"
	PhaseAfterContemplation  ConsortiumPhase = "after_contemplation"
)

// ConsortiumInstallmentRecord is one monthly consortium payment.
type ConsortiumInstallmentRecord struct {
	Month   int             `json:"month"`
	Phase   ConsortiumPhase `json:"phase"`
	Payment decimal.Decimal `json:"payment"`
}

// ConsortiumSchedule is the result of the consortium engine. NetLetterValue is
// informational: the embedded bid does not reduce the payment stream.
type ConsortiumSchedule struct {
	FixedPayment     decimal.Decimal               `json:"fixed_payment"`
	MonthlyQuota     decimal.Decimal               `json:"monthly_quota"`
	MonthlyAdminFee  decimal.Decimal               `json:"monthly_admin_fee"`
	AdminFeeTotal    decimal.Decimal               `json:"admin_fee_total"`
	EmbeddedBidValue decimal.Decimal               `json:"embedded_bid_value"`
	NetLetterValue   decimal.Decimal               `json:"net_letter_value"`
	Schedule         []ConsortiumInstallmentRecord `json:"schedule"`
	TotalPaid        decimal.Decimal               `json:"total_paid"`
}

// OpportunityCostParameters prices the return forgone by paying cash.
type OpportunityCostParameters struct {
	Price            decimal.Decimal `yaml:"price" json:"price"`
	AnnualRealReturn decimal.Decimal `yaml:"annual_real_return" json:"annual_real_return"`
	HorizonMonths    int             `yaml:"horizon_months" json:"horizon_months"`
}

// Validate checks the cash purchase inputs against the bounds.
func (p OpportunityCostParameters) Validate(b Bounds) error {
	if err := checkNonNegative("price", p.Price); err != nil {
		return err
	}
	if err := b.CheckRate("cash real return", p.AnnualRealReturn); err != nil {
		return err
	}
	if p.HorizonMonths < 0 {
		return invalidf("comparison horizon cannot be negative, got %d", p.HorizonMonths)
	}
	if b.MaxTermMonths > 0 && p.HorizonMonths > b.MaxTermMonths {
		return invalidf("comparison horizon must not exceed %d months, got %d", b.MaxTermMonths, p.HorizonMonths)
	}
	return nil
}

// InvestmentRecord is the invested cash at the end of a month.
type InvestmentRecord struct {
	Month int             `json:"month"`
	Value decimal.Decimal `json:"value"`
	Yield decimal.Decimal `json:"yield"`
}

// OpportunityCostResult is the result of the opportunity cost engine.
type OpportunityCostResult struct {
	FutureValue     decimal.Decimal    `json:"future_value"`
	Evolution       []InvestmentRecord `json:"evolution"`
	OpportunityLoss decimal.Decimal    `json:"opportunity_loss"`
}

// AcquisitionOption identifies one way of buying the asset. The order of the
// constants is the tie-break order of the comparison.
type AcquisitionOption string

const (
	OptionFinancing  AcquisitionOption = "financing"
	OptionConsortium AcquisitionOption = "consortium"
	OptionCash       AcquisitionOption = "cash"
)

// AcquisitionOptions lists the options in declaration order.
var AcquisitionOptions = []AcquisitionOption{OptionFinancing, OptionConsortium, OptionCash}

// RankedOption pairs an acquisition option with its total cost.
type RankedOption struct {
	Option AcquisitionOption `json:"option"`
	Cost   decimal.Decimal   `json:"cost"`
}

// ComparisonVerdict holds the cheapest option and the full ranking, cheapest first.
type ComparisonVerdict struct {
	Best    AcquisitionOption `json:"best"`
	Ranking []RankedOption    `json:"ranking"`
}

// AcquisitionInput is the full set of named inputs of the real-estate comparison.
type AcquisitionInput struct {
	AssetPrice              decimal.Decimal `yaml:"asset_price" json:"asset_price"`
	DownPaymentPct          decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	FinancingRealRate       decimal.Decimal `yaml:"financing_real_rate" json:"financing_real_rate"`
	FinancingTermMonths     int             `yaml:"financing_term_months" json:"financing_term_months"`
	AdminFeePct             decimal.Decimal `yaml:"admin_fee_pct" json:"admin_fee_pct"`
	EmbeddedBidPct          decimal.Decimal `yaml:"embedded_bid_pct" json:"embedded_bid_pct"`
	ConsortiumTermMonths    int             `yaml:"consortium_term_months" json:"consortium_term_months"`
	ContemplationMonth      int             `yaml:"contemplation_month" json:"contemplation_month"`
	CashReturnRate          decimal.Decimal `yaml:"cash_return_rate" json:"cash_return_rate"`
	ComparisonHorizonMonths int             `yaml:"comparison_horizon_months" json:"comparison_horizon_months"`
}

func (in AcquisitionInput) Loan() LoanParameters {
	return LoanParameters{
		Price:          in.AssetPrice,
		DownPaymentPct: in.DownPaymentPct,
		AnnualRealRate: in.FinancingRealRate,
		TermMonths:     in.FinancingTermMonths,
	}
}

func (in AcquisitionInput) Consortium() ConsortiumParameters {
	return ConsortiumParameters{
		Price:              in.AssetPrice,
		AdminFeePct:        in.AdminFeePct,
		EmbeddedBidPct:     in.EmbeddedBidPct,
		TermMonths:         in.ConsortiumTermMonths,
		ContemplationMonth: in.ContemplationMonth,
	}
}

func (in AcquisitionInput) OpportunityCost() OpportunityCostParameters {
	return OpportunityCostParameters{
		Price:            in.AssetPrice,
		AnnualRealReturn: in.CashReturnRate,
		HorizonMonths:    in.ComparisonHorizonMonths,
	}
}

// Validate checks every engine's parameters derived from the input.
func (in AcquisitionInput) Validate(b Bounds) error {
	if err := in.Loan().Validate(b); err != nil {
		return err
	}
	if err := in.Consortium().Validate(b); err != nil {
		return err
	}
	return in.OpportunityCost().Validate(b)
}

// AcquisitionComparison is the full real-estate result: the three schedules,
// their effective real costs and the verdict.
type AcquisitionComparison struct {
	Input          AcquisitionInput      `json:"input"`
	Financing      LoanSchedule          `json:"financing"`
	Consortium     ConsortiumSchedule    `json:"consortium"`
	Cash           OpportunityCostResult `json:"cash"`
	FinancingCost  decimal.Decimal       `json:"financing_cost"`
	ConsortiumCost decimal.Decimal       `json:"consortium_cost"`
	CashCost       decimal.Decimal       `json:"cash_cost"`
	Verdict        ComparisonVerdict     `json:"verdict"`
}

// CostOf returns the effective cost of one option.
func (c *AcquisitionComparison) CostOf(o AcquisitionOption) decimal.Decimal {
	switch o {
	case OptionFinancing:
		return c.FinancingCost
	case OptionConsortium:
		return c.ConsortiumCost
	default:
		return c.CashCost
	}
}
