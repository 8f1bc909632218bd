package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/planning-engine/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfLabelWidth   = 110.0
)

// PDFFormatter renders the report as an A4 PDF document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Financial Planning Report", false)
	// fixed dates keep the output byte-for-byte reproducible
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetModificationDate(report.GeneratedAt)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Financial Planning Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 6, "Generated: "+report.GeneratedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdfHeading(pdf, "Key Assumptions")
	pdf.SetFont("Arial", "", 9)
	for _, a := range GenerateAssumptions(report) {
		pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}
	pdf.Ln(4)

	if a := report.Acquisition; a != nil {
		pdfHeading(pdf, "Real Estate Acquisition")
		pdfRow(pdf, "Asset price", FormatCurrency(a.Input.AssetPrice))
		pdfRow(pdf, "Financing: first installment", FormatCurrency(a.Financing.FirstInstallment))
		pdfRow(pdf, "Financing: total paid", FormatCurrency(a.Financing.TotalPaid))
		pdfRow(pdf, "Consortium: fixed payment", FormatCurrency(a.Consortium.FixedPayment))
		pdfRow(pdf, "Consortium: net letter value", FormatCurrency(a.Consortium.NetLetterValue))
		pdfRow(pdf, "Cash: opportunity loss", FormatCurrency(a.Cash.OpportunityLoss))
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(pdfContentWidth, 7, "Effective real cost ranking", "", 1, "L", false, 0, "")
		for i, r := range a.Verdict.Ranking {
			pdfRow(pdf, fmt.Sprintf("%d. %s", i+1, OptionLabel(r.Option)), FormatCurrency(r.Cost))
		}
		pdf.Ln(4)
	}

	if r := report.Retirement; r != nil {
		pdfHeading(pdf, "Retirement Projection")
		pdfRow(pdf, "Retirement age", intToString(r.RetirementAge))
		pdfRow(pdf, "Required capital", FormatCurrency(r.RequiredCapital))
		pdfRow(pdf, "Required monthly contribution", FormatCurrency(r.RequiredMonthlyContribution))
		pdfRow(pdf, "Contribution simulated", FormatCurrency(r.ContributionUsed))
		pdfRow(pdf, "Capital at retirement", FormatCurrency(r.CapitalAtRetirement))
		pdfRow(pdf, "Sustainable monthly income", FormatCurrency(r.SustainableMonthlyWithdrawal))
		exhaustion := "never"
		if r.Exhausted() {
			exhaustion = intToString(*r.ExhaustionAge)
		}
		pdfRow(pdf, "Capital exhausted at age", exhaustion)
		pdf.Ln(4)

		pdfHeading(pdf, "Capital Trajectory")
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(245, 247, 250)
		pdf.CellFormat(30, 6, "Age", "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 6, "Phase", "1", 0, "C", true, 0, "")
		pdf.CellFormat(pdfContentWidth-80, 6, "Capital", "1", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, pt := range report.VisibleTrajectory() {
			pdf.CellFormat(30, 5, intToString(pt.Age), "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 5, string(pt.Phase), "1", 0, "C", false, 0, "")
			pdf.CellFormat(pdfContentWidth-80, 5, FormatCurrency(pt.Capital), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(50, 50, 50)
	pdf.Ln(2)
}

func pdfRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfLabelWidth, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfContentWidth-pdfLabelWidth, 6, value, "", 1, "R", false, 0, "")
}
