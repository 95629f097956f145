package schema

// KPISummary holds the four headline metrics for a filtered record set.
// Each metric carries both the raw numeric value and the pre-formatted display
// string. On an empty set the labels take defined placeholders instead of
// propagating a numeric error.
type KPISummary struct {
	Count          int     `json:"count"`
	ChurnRate      float64 `json:"churnRate"`      // percentage in [0, 100]
	MonthlyRevenue float64 `json:"monthlyRevenue"` // sum of monthly charges
	AvgTenure      float64 `json:"avgTenure"`      // mean tenure in months

	CountLabel          string `json:"countLabel"`          // e.g. "7,043"
	ChurnRateLabel      string `json:"churnRateLabel"`      // e.g. "26.54%"
	MonthlyRevenueLabel string `json:"monthlyRevenueLabel"` // e.g. "$456,117"
	AvgTenureLabel      string `json:"avgTenureLabel"`      // e.g. "32.4"
}

// EmptyKPISummary returns the defined defaults for a zero-record set.
func EmptyKPISummary() KPISummary {
	return KPISummary{
		CountLabel:          "0",
		ChurnRateLabel:      "0%",
		MonthlyRevenueLabel: "$0",
		AvgTenureLabel:      "0",
	}
}
