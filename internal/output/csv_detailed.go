package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/planning-engine/internal/domain"
)

// CSVDetailedExporter exports every schedule and the capital trajectory, one
// row per period. Columns that do not apply to a series are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Series", "Period", "Phase", "Balance", "Interest", "Amortization", "Payment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if a := report.Acquisition; a != nil {
		for _, r := range a.Financing.Schedule {
			row := []string{"financing", intToString(r.Month), "", r.Balance.StringFixed(2), r.Interest.StringFixed(2), r.Amortization.StringFixed(2), r.Installment.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		for _, r := range a.Consortium.Schedule {
			row := []string{"consortium", intToString(r.Month), string(r.Phase), "", "", "", r.Payment.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		for _, r := range a.Cash.Evolution {
			row := []string{"cash", intToString(r.Month), "", r.Value.StringFixed(2), r.Yield.StringFixed(2), "", ""}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if report.Retirement != nil {
		for _, pt := range report.VisibleTrajectory() {
			row := []string{"retirement", intToString(pt.Age), string(pt.Phase), pt.Capital.StringFixed(2), "", "", ""}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
