package cmd

import (
	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [data-file]",
	Short: "Start the churnscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to query churn KPIs and chart specs via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep setup quiet: stdio is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		engine, err := core.LoadEngine(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}
		return mcp.StartMCPServer(rootCtx, cfg, engine)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
