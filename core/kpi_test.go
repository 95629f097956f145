package core

import (
	"testing"

	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summary := Summarize(threeCustomers())

	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 100.0/3.0, summary.ChurnRate, 1e-9)
	assert.InDelta(t, 100.0, summary.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 27.0, summary.AvgTenure, 1e-9)

	assert.Equal(t, "3", summary.CountLabel)
	assert.Equal(t, "33.33%", summary.ChurnRateLabel)
	assert.Equal(t, "$100", summary.MonthlyRevenueLabel)
	assert.Equal(t, "27.0", summary.AvgTenureLabel)
}

func TestSummarizeFilteredSubset(t *testing.T) {
	sel := schema.DefaultSelection()
	sel.InternetService = "DSL"
	summary := Summarize(ApplyFilter(threeCustomers(), sel))

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "50.00%", summary.ChurnRateLabel)
}

func TestSummarizeEmptySet(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.ChurnRate)
	assert.Zero(t, summary.MonthlyRevenue)
	assert.Zero(t, summary.AvgTenure)

	// Placeholder labels, never NaN or a divide-by-zero artifact
	assert.Equal(t, "0", summary.CountLabel)
	assert.Equal(t, "0%", summary.ChurnRateLabel)
	assert.Equal(t, "$0", summary.MonthlyRevenueLabel)
	assert.Equal(t, "0", summary.AvgTenureLabel)
}

func TestSummarizeRateBounds(t *testing.T) {
	allChurned := schema.RecordSet{
		newCustomer("DSL", "Month-to-month", "Electronic check", 1, 30, 30, "Yes"),
	}
	assert.InDelta(t, 100.0, Summarize(allChurned).ChurnRate, 1e-9)

	noneChurned := schema.RecordSet{
		newCustomer("DSL", "Month-to-month", "Electronic check", 1, 30, 30, "No"),
	}
	assert.Zero(t, Summarize(noneChurned).ChurnRate)
}
