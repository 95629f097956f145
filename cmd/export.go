package cmd

import (
	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the normalized dataset to a file.
var exportCmd = &cobra.Command{
	Use:   "export [data-file]",
	Short: "Export the filtered, normalized dataset.",
	Long: `Export the selected customers with their derived columns
(churn flag, tenure band, bundle segment) for downstream analytics.

Parquet is the primary target and requires --output-file; CSV and JSON
write to stdout unless --output-file is given.

Examples:
  # Full dataset to Parquet
  churnscope export telco.csv --output parquet --output-file customers.parquet

  # DSL customers only, as CSV
  churnscope export telco.csv --internet DSL --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export dataset", err)
		}
	},
}
