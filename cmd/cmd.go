// Package cmd defines the command-line interface for churnscope.
package cmd

import (
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(datasetCmd)

	// Add the dataset subcommands to the parent dataset command
	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetMigrateCmd)
	datasetCmd.AddCommand(datasetStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", string(schema.CSVBackend), "Dataset source: csv or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for sqlite/mysql/postgresql sources")
	rootCmd.PersistentFlags().String("table", contract.DefaultTable, "Table name for database sources")
	rootCmd.PersistentFlags().String("gender", "", "Filter by gender (Male/Female, empty = all)")
	rootCmd.PersistentFlags().String("dependents", "", "Filter by dependents (Yes/No, empty = all)")
	rootCmd.PersistentFlags().String("phone", "", "Filter by phone service (Yes/No, empty = all)")
	rootCmd.PersistentFlags().String("paperless", "", "Filter by paperless billing (Yes/No, empty = all)")
	rootCmd.PersistentFlags().String("internet", "", "Filter by internet service (Fiber optic/DSL/No, empty = all)")
	rootCmd.PersistentFlags().String("contract", "", "Filter by contract type (Month-to-month/One year/Two year, empty = all)")
	rootCmd.PersistentFlags().String("payment", "", "Filter by payment method, long form (empty = all)")
	rootCmd.PersistentFlags().Int("tenure-min", contract.TenureUnset, "Inclusive lower tenure bound in months (-1 = open)")
	rootCmd.PersistentFlags().Int("tenure-max", contract.TenureUnset, "Inclusive upper tenure bound in months (-1 = open)")
	rootCmd.PersistentFlags().String("order", string(schema.RateOrder), "Rate chart ordering: rate or domain")
	rootCmd.PersistentFlags().String("ltv-basis", string(schema.TotalBasis), "LTV curve basis: total or proxy")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("listen", contract.DefaultListenAddr, "Bind address for the serve command")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of datasetMigrateCmd to Viper
	datasetMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(datasetMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dataset migrate flags", err)
	}
}
