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

// PrintChart displays a single chart spec using the configured output format.
func PrintChart(spec schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	return PrintCharts([]schema.ChartSpec{spec}, cfg, duration)
}

// PrintCharts displays one or more chart specs using the configured output format.
func PrintCharts(specs []schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(specs) == 1 {
				return writeJSON(w, specs[0])
			}
			return writeJSON(w, specs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartCSV(w, specs, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartTables(w, specs, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeChartCSV flattens chart specs into one long-format row per point.
func writeChartCSV(w io.Writer, specs []schema.ChartSpec, fmtFloat func(float64) string) error {
	header := []string{"chart", "series", "label", "value", "display"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, spec := range specs {
			for _, series := range spec.Series {
				for _, p := range series.Points {
					row := []string{
						string(spec.Kind),
						series.Name,
						p.Label,
						fmtFloat(p.Value),
						p.Text,
					}
					if err := csvWriter.Write(row); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
			}
		}
		return nil
	})
}

// writeChartTables generates and writes one human-readable table per spec.
func writeChartTables(w io.Writer, specs []schema.ChartSpec, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	maxLabel := getMaxTableLabelWidth(cfg)

	for _, spec := range specs {
		if _, err := fmt.Fprintf(w, "%s (%s)\n", spec.Title, spec.Kind); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Series", spec.XTitle, spec.YTitle, "Display"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, series := range spec.Series {
			for _, p := range series.Points {
				data = append(data, []string{
					series.Name,
					truncateLabel(p.Label, maxLabel),
					fmtFloat(p.Value),
					p.Text,
				})
			}
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if spec.Empty() {
			if _, err := fmt.Fprintln(w, "No matching customers."); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Rendered %d chart spec(s) in %v\n", len(specs), duration); err != nil {
		return err
	}
	return nil
}
