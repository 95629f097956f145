package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/api"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/spf13/cobra"
)

// serveCmd runs the read-only HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve [data-file]",
	Short: "Serve summary and chart queries over HTTP.",
	Long: `Load the dataset once and serve it over a read-only HTTP API:

  GET /healthz                 Liveness and record count
  GET /api/v1/summary          KPI bundle for a query-filtered subset
  GET /api/v1/charts           Every chart spec for one subset
  GET /api/v1/charts/{kind}    One chart spec

Filter flags set the base selection; query parameters (gender, internet,
contract, payment, tenure_min, ...) narrow it per request. Each response
carries a unique X-Request-ID header.

Examples:
  # Serve on the default port
  churnscope serve telco.csv

  # Serve a pre-filtered senior view on a custom port
  churnscope serve telco.csv --contract "Two year" --listen :9000`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		engine, err := core.LoadEngine(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}
		// SIGINT/SIGTERM cancel the context, draining in-flight requests
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := api.NewServer(engine, cfg).Start(ctx); err != nil {
			contract.LogFatal("Cannot serve HTTP API", err)
		}
	},
}
