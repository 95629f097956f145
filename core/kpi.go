package core

import (
	"github.com/huangsam/churnscope/schema"
)

// Summarize computes the headline KPIs over a record set. An empty set
// yields the placeholder summary rather than NaN rates or divide-by-zero.
func Summarize(records schema.RecordSet) schema.KPISummary {
	if len(records) == 0 {
		return schema.EmptyKPISummary()
	}

	churned := 0
	monthly := 0.0
	tenure := 0
	for _, c := range records {
		if c.Churned() {
			churned++
		}
		monthly += c.MonthlyCharges
		tenure += c.TenureMonths
	}

	n := len(records)
	summary := schema.KPISummary{
		Count:          n,
		ChurnRate:      float64(churned) / float64(n) * 100.0,
		MonthlyRevenue: monthly,
		AvgTenure:      float64(tenure) / float64(n),
	}
	summary.CountLabel = schema.FormatCount(summary.Count)
	summary.ChurnRateLabel = schema.FormatPercent(summary.ChurnRate)
	summary.MonthlyRevenueLabel = schema.FormatCurrency(summary.MonthlyRevenue)
	summary.AvgTenureLabel = schema.FormatTenure(summary.AvgTenure)
	return summary
}
