package cmd

import (
	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd computes the headline KPI bundle.
var summaryCmd = &cobra.Command{
	Use:   "summary [data-file]",
	Short: "Show headline churn KPIs for a filtered customer subset.",
	Long: `Compute the four headline KPIs over the selected customers:
- Customer count
- Churn rate (%)
- Total monthly revenue
- Average tenure (months)

Any filter flag narrows the subset; without filters the full dataset is used.
An empty subset yields placeholder values rather than an error.

Examples:
  # KPIs over the whole dataset
  churnscope summary telco.csv

  # KPIs for month-to-month fiber customers
  churnscope summary telco.csv --contract Month-to-month --internet "Fiber optic"

  # KPIs for short-tenure customers, as JSON
  churnscope summary telco.csv --tenure-max 12 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}
