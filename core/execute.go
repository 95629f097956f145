package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/internal/dataset"
	"github.com/huangsam/churnscope/internal/outwriter"
	"github.com/huangsam/churnscope/internal/parquet"
	"github.com/huangsam/churnscope/schema"
)

// ExecutorFunc defines the function signature for executing different
// analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// LoadEngine loads the dataset once and wraps it in a query engine
// configured from cfg. Every command surface goes through this.
func LoadEngine(ctx context.Context, cfg *contract.Config) (*Engine, error) {
	if err := dataset.Init(ctx, cfg); err != nil {
		return nil, err
	}
	return NewEngine(dataset.Records(), cfg.Order, cfg.LTVBasis), nil
}

// ExecuteSummary runs the KPI summary over the configured selection and
// prints results to stdout. It serves as the main entry point for the
// 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	engine, err := LoadEngine(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("the summary command does not support parquet output; use export")
	}
	summary := engine.GetSummary(cfg.Selection)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteSummary(summary, cfg, duration)
}

// ExecuteChart builds a single chart spec over the configured selection and
// prints it to stdout. It serves as the main entry point for the 'chart'
// command.
func ExecuteChart(ctx context.Context, cfg *contract.Config, kind schema.ChartKind) error {
	start := time.Now()
	engine, err := LoadEngine(ctx, cfg)
	if err != nil {
		return err
	}
	spec, err := engine.GetChart(cfg.Selection, kind)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return writeChartParquet([]schema.ChartSpec{spec}, cfg)
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteChart(spec, cfg, duration)
}

// ExecuteCharts builds every chart kind over the configured selection in
// the canonical presentation order.
func ExecuteCharts(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	engine, err := LoadEngine(ctx, cfg)
	if err != nil {
		return err
	}
	specs, err := engine.GetCharts(cfg.Selection)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return writeChartParquet(specs, cfg)
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteCharts(specs, cfg, duration)
}

// ExecuteExport writes the filtered, normalized dataset in the configured
// format. Parquet is the primary target; CSV and JSON fall back to the
// standard writers.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	if err := dataset.Init(ctx, cfg); err != nil {
		return err
	}
	filtered := ApplyFilter(dataset.Records(), cfg.Selection)

	if cfg.Output == schema.ParquetOut {
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.CustomerRows(filtered)
		if err := parquet.WriteCustomersParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s in %v\n", len(rows), cfg.OutputFile, time.Since(start))
		return nil
	}

	duration := time.Since(start)
	return outwriter.PrintRecords(filtered, cfg, duration)
}

// writeChartParquet flattens chart specs into long-format rows and writes
// them to the configured output file.
func writeChartParquet(specs []schema.ChartSpec, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ChartRows(specs)
	if err := parquet.WriteChartRowsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d chart rows to %s\n", len(rows), cfg.OutputFile)
	return nil
}
