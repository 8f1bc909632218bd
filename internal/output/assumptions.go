package output

import (
	"fmt"

	"github.com/rpgo/planning-engine/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when the report carries none.
var DefaultAssumptions = []string{
	"All rates are real (inflation-adjusted) annual rates",
	"Annual rates convert to the equivalent monthly rate (1+r)^(1/12)-1",
	"Liquidity events apply once, at the start of the year matching their age",
}

// GenerateAssumptions lists the report's own assumptions followed by the
// rates it was computed with.
func GenerateAssumptions(report *domain.Report) []string {
	out := append([]string(nil), report.Assumptions...)
	if len(out) == 0 {
		out = append(out, DefaultAssumptions...)
	}
	if a := report.Acquisition; a != nil {
		out = append(out,
			fmt.Sprintf("Financing real rate: %s a year over %d months", FormatRate(a.Input.FinancingRealRate), a.Input.FinancingTermMonths),
			fmt.Sprintf("Consortium administrative fee: %s over %d months", FormatRate(a.Input.AdminFeePct), a.Input.ConsortiumTermMonths),
			fmt.Sprintf("Cash alternative real return: %s a year over %d months", FormatRate(a.Input.CashReturnRate), a.Input.ComparisonHorizonMonths),
		)
	}
	return out
}
