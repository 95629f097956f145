package cmd

import (
	"fmt"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/spf13/cobra"
)

// chartCmd builds a single chart spec.
var chartCmd = &cobra.Command{
	Use:   "chart <kind> [data-file]",
	Short: "Build one deterministic chart spec for a filtered customer subset.",
	Long: `Build a chart specification of the given kind over the selected customers.

Supported kinds:
  rate-internet     Churn rate by internet service
  rate-contract     Churn rate by contract type
  rate-payment      Churn rate by payment method
  tenure-histogram  Tenure distribution, churned vs stayed
  ltv-internet      Mean customer value by tenure bin and internet service
  ltv-contract      Mean customer value by tenure bin and contract type
  bundle-value      Realized vs lost value per contract-internet bundle

The spec carries titles, category order, series colors, axis ranges and
formatted point labels, so the same inputs always produce the same bytes.

Examples:
  # Churn rate by contract, bars sorted by rate
  churnscope chart rate-contract telco.csv

  # Same chart in the fixed domain order
  churnscope chart rate-contract telco.csv --order domain

  # LTV curve on the tenure-times-monthly proxy, as JSON
  churnscope chart ltv-internet telco.csv --ltv-basis proxy --output json`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := schema.ValidChartKinds[schema.ChartKind(args[0])]; !ok {
			return fmt.Errorf("unknown chart kind %q", args[0])
		}
		return sharedSetup(rootCtx, cmd, args[1:])
	},
	Run: func(_ *cobra.Command, args []string) {
		kind := schema.ChartKind(args[0])
		if err := core.ExecuteChart(rootCtx, cfg, kind); err != nil {
			contract.LogFatal("Cannot build chart", err)
		}
	},
}

// chartsCmd builds every chart spec in presentation order.
var chartsCmd = &cobra.Command{
	Use:   "charts [data-file]",
	Short: "Build every chart spec for a filtered customer subset.",
	Long: `Build all supported chart specifications over one filtered subset.

The filter runs once; every kind is rendered in the canonical order.

Examples:
  # All charts as readable tables
  churnscope charts telco.csv

  # All charts as a JSON array for a dashboard frontend
  churnscope charts telco.csv --output json --output-file charts.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCharts(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build charts", err)
		}
	},
}
