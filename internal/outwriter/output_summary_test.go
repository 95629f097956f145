package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() schema.KPISummary {
	return schema.KPISummary{
		Count:               3,
		ChurnRate:           33.333333,
		MonthlyRevenue:      100,
		AvgTenure:           27,
		CountLabel:          "3",
		ChurnRateLabel:      "33.33%",
		MonthlyRevenueLabel: "$100",
		AvgTenureLabel:      "27.0",
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 2,
		Width:     120,
		UseColors: false,
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	err := writeSummaryCSV(&buf, testSummary(), fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "metric,value,display")
	assert.Contains(t, out, "customers,3,3")
	assert.Contains(t, out, "churn_rate,33.33,33.33%")
	assert.Contains(t, out, "monthly_revenue,100.00,$100")
	assert.Contains(t, out, "avg_tenure,27.00,27.0")
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	err := writeSummaryTable(&buf, testSummary(), testConfig(), fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Churn Rate")
	assert.Contains(t, out, "33.33%")
	// 33.33% sits in the High severity band
	assert.Contains(t, out, "Churn severity: High")
	assert.Contains(t, out, "Summary completed in")
}

func TestPrintSummaryJSONToStdoutIsQuiet(t *testing.T) {
	// JSON mode with no output file writes to stdout without error
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	assert.NoError(t, PrintSummary(testSummary(), cfg, time.Millisecond))
}
