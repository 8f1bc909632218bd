package output

import (
	"github.com/beevik/etree"
	"github.com/rpgo/planning-engine/internal/domain"
)

// XMLFormatter renders the headline figures and series as an XML document
// for spreadsheet and document-management imports.
type XMLFormatter struct{}

func (x XMLFormatter) Name() string { return "xml" }

func (x XMLFormatter) Format(report *domain.Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("planningReport")
	root.CreateAttr("generatedAt", report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))

	if a := report.Acquisition; a != nil {
		acq := root.CreateElement("acquisition")
		acq.CreateAttr("assetPrice", a.Input.AssetPrice.StringFixed(2))
		acq.CreateAttr("best", string(a.Verdict.Best))
		for _, r := range a.Verdict.Ranking {
			opt := acq.CreateElement("option")
			opt.CreateAttr("name", string(r.Option))
			opt.CreateAttr("cost", r.Cost.StringFixed(2))
		}

		fin := acq.CreateElement("financing")
		fin.CreateAttr("downPayment", a.Financing.DownPayment.StringFixed(2))
		fin.CreateAttr("financedAmount", a.Financing.FinancedAmount.StringFixed(2))
		fin.CreateAttr("totalPaid", a.Financing.TotalPaid.StringFixed(2))
		for _, rec := range a.Financing.Schedule {
			inst := fin.CreateElement("installment")
			inst.CreateAttr("month", intToString(rec.Month))
			inst.CreateAttr("balance", rec.Balance.StringFixed(2))
			inst.CreateAttr("interest", rec.Interest.StringFixed(2))
			inst.CreateAttr("amortization", rec.Amortization.StringFixed(2))
			inst.CreateAttr("total", rec.Installment.StringFixed(2))
		}

		con := acq.CreateElement("consortium")
		con.CreateAttr("fixedPayment", a.Consortium.FixedPayment.StringFixed(2))
		con.CreateAttr("netLetterValue", a.Consortium.NetLetterValue.StringFixed(2))
		con.CreateAttr("totalPaid", a.Consortium.TotalPaid.StringFixed(2))

		cash := acq.CreateElement("cash")
		cash.CreateAttr("futureValue", a.Cash.FutureValue.StringFixed(2))
		cash.CreateAttr("opportunityLoss", a.Cash.OpportunityLoss.StringFixed(2))
	}

	if p := report.Retirement; p != nil {
		ret := root.CreateElement("retirement")
		ret.CreateAttr("retirementAge", intToString(p.RetirementAge))
		ret.CreateAttr("lifeExpectancy", intToString(p.LifeExpectancy))
		ret.CreateElement("requiredCapital").SetText(p.RequiredCapital.StringFixed(2))
		ret.CreateElement("requiredMonthlyContribution").SetText(p.RequiredMonthlyContribution.StringFixed(2))
		ret.CreateElement("contributionUsed").SetText(p.ContributionUsed.StringFixed(2))
		ret.CreateElement("capitalAtRetirement").SetText(p.CapitalAtRetirement.StringFixed(2))
		if p.Exhausted() {
			ret.CreateElement("exhaustionAge").SetText(intToString(*p.ExhaustionAge))
		}
		dur := ret.CreateElement("duration")
		dur.CreateAttr("finalAge", intToString(p.Duration.FinalAge))
		dur.CreateAttr("yearsSustained", intToString(p.Duration.YearsSustained))

		traj := ret.CreateElement("trajectory")
		for _, pt := range report.VisibleTrajectory() {
			point := traj.CreateElement("point")
			point.CreateAttr("age", intToString(pt.Age))
			point.CreateAttr("phase", string(pt.Phase))
			point.SetText(pt.Capital.StringFixed(2))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
