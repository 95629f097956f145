package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummary displays the headline KPI bundle using the configured
// output format.
func PrintSummary(summary schema.KPISummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeSummaryCSV writes the KPI bundle as metric rows.
func writeSummaryCSV(w io.Writer, summary schema.KPISummary, fmtFloat func(float64) string) error {
	header := []string{"metric", "value", "display"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		rows := [][]string{
			{"customers", fmt.Sprintf("%d", summary.Count), summary.CountLabel},
			{"churn_rate", fmtFloat(summary.ChurnRate), summary.ChurnRateLabel},
			{"monthly_revenue", fmtFloat(summary.MonthlyRevenue), summary.MonthlyRevenueLabel},
			{"avg_tenure", fmtFloat(summary.AvgTenure), summary.AvgTenureLabel},
		}
		for _, row := range rows {
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeSummaryTable generates and writes the human-readable KPI table.
func writeSummaryTable(w io.Writer, summary schema.KPISummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Display"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	severity := contract.GetPlainLabel(summary.ChurnRate)
	if cfg.UseColors {
		severity = contract.GetColorLabel(summary.ChurnRate)
	}

	data := [][]string{
		{"Customers", fmt.Sprintf("%d", summary.Count), summary.CountLabel},
		{"Churn Rate", fmtFloat(summary.ChurnRate), summary.ChurnRateLabel},
		{"Monthly Revenue", fmtFloat(summary.MonthlyRevenue), summary.MonthlyRevenueLabel},
		{"Avg Tenure", fmtFloat(summary.AvgTenure), summary.AvgTenureLabel},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Churn severity: %s\n", severity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Summary completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
