package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/internal/dataset"
	"github.com/huangsam/churnscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// datasetSetup loads the minimal configuration needed for dataset management.
// Commands like migrate must run against a fresh database, so this skips the
// full shared setup and its data-file requirements.
func datasetSetup() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	source := schema.SourceBackend(strings.ToLower(viper.GetString("source")))
	if _, ok := schema.ValidSourceBackends[source]; !ok {
		return fmt.Errorf("invalid source backend %q. Must be csv, sqlite, mysql, or postgresql", viper.GetString("source"))
	}
	if source == schema.CSVBackend {
		return fmt.Errorf("dataset management requires a database source; pass --source sqlite, mysql, or postgresql")
	}
	if source != schema.SQLiteBackend && viper.GetString("db-connect") == "" {
		return fmt.Errorf("--db-connect is required for the %s source", source)
	}

	cfg.Source = source
	cfg.DBConnect = viper.GetString("db-connect")
	cfg.Table = viper.GetString("table")
	if cfg.Table == "" {
		cfg.Table = contract.DefaultTable
	}
	return nil
}

// datasetSetupWrapper wraps datasetSetup to provide PreRunE for dataset commands.
func datasetSetupWrapper(_ *cobra.Command, _ []string) error {
	return datasetSetup()
}

// datasetCmd focused on database-backed dataset management.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage database-backed customer datasets",
	Long: `Manage the customers table behind the sqlite, mysql and postgresql sources.

Subcommands:
  import   - Load a CSV file into the customers table
  migrate  - Run or roll back schema migrations
  status   - Show row and churn counts for the table

The csv source needs none of this; it reads the file directly.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// datasetImportCmd bulk-loads a CSV file into the configured table.
var datasetImportCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Load a customer CSV file into the database",
	Long: `Normalize a customer CSV file and bulk-insert it into the configured table.
Run 'dataset migrate' first so the table exists.

Examples:
  # Into the default local SQLite dataset
  churnscope dataset import telco.csv --source sqlite

  # Into MySQL
  churnscope dataset import telco.csv --source mysql --db-connect "user:pass@tcp(localhost:3306)/churn"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		n, err := dataset.ImportCSV(rootCtx, cfg.Source, cfg.DBConnect, cfg.Table, args[0])
		if err != nil {
			contract.LogFatal("Cannot import dataset", err)
		}
		fmt.Printf("Imported %d records into %s\n", n, cfg.Table)
	},
}

// datasetMigrateCmd runs schema migrations for the customers table.
var datasetMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations for the customers table",
	Long: `Apply or roll back the schema migrations behind the database sources.

The --target-version flag selects the target state:
  -1  migrate to the latest version (default)
   0  roll back all migrations
  >0  migrate to that specific version

Examples:
  churnscope dataset migrate --source sqlite
  churnscope dataset migrate --source postgresql --db-connect "host=localhost user=postgres dbname=churn" --target-version 0`,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := dataset.Migrate(cfg.Source, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
		fmt.Println("Migrations complete")
	},
}

// datasetStatusCmd reports table statistics.
var datasetStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show row and churn counts for the customers table",
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := dataset.GetStatus(rootCtx, cfg.Source, cfg.DBConnect, cfg.Table)
		if err != nil {
			contract.LogFatal("Cannot query dataset status", err)
		}
		fmt.Printf("Backend: %s\n", status.Backend)
		fmt.Printf("Table:   %s\n", status.Table)
		fmt.Printf("Rows:    %d\n", status.RowCount)
		fmt.Printf("Churned: %d\n", status.Churned)
	},
}
