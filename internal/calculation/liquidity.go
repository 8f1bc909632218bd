package calculation

import (
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// eventBuckets maps an age to the net effect of every liquidity event at that
// age. Building it once keeps the yearly simulation O(years + events).
type eventBuckets map[int]decimal.Decimal

func bucketEvents(events []domain.LiquidityEvent) eventBuckets {
	buckets := make(eventBuckets, len(events))
	for _, e := range events {
		buckets[e.Age] = buckets.at(e.Age).Add(e.SignedAmount())
	}
	return buckets
}

func (b eventBuckets) at(age int) decimal.Decimal {
	if d, ok := b[age]; ok {
		return d
	}
	return decimal.Zero
}

// eventsFutureValue compounds every event dated from currentAge up to (but
// excluding) the retirement age forward to the retirement date. Events are
// netted per age first so the growth factor is computed once per year.
func eventsFutureValue(p domain.RetirementParameters, monthlyRate decimal.Decimal) decimal.Decimal {
	buckets := bucketEvents(p.Events)
	total := decimal.Zero
	accumulationMonths := p.AccumulationYears() * 12
	for age := p.CurrentAge; age < p.RetirementAge; age++ {
		net, ok := buckets[age]
		if !ok || net.IsZero() {
			continue
		}
		monthsToRetirement := accumulationMonths - (age-p.CurrentAge)*12
		total = total.Add(futureValue(net, monthlyRate, monthsToRetirement))
	}
	return total
}
