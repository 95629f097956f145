// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the churnscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, engine *core.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		"Churnscope Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  engine,
	}

	// --- 1. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Compute headline churn KPIs (customer count, churn rate, monthly revenue, average tenure) over a filtered customer subset."),
		mcp.WithString("gender", mcp.Description("Filter by gender (Male, Female). Defaults to all.")),
		mcp.WithString("dependents", mcp.Description("Filter by dependents (Yes, No). Defaults to all.")),
		mcp.WithString("phone", mcp.Description("Filter by phone service (Yes, No). Defaults to all.")),
		mcp.WithString("paperless", mcp.Description("Filter by paperless billing (Yes, No). Defaults to all.")),
		mcp.WithString("internet", mcp.Description("Filter by internet service (Fiber optic, DSL, No). Defaults to all.")),
		mcp.WithString("contract", mcp.Description("Filter by contract type (Month-to-month, One year, Two year). Defaults to all.")),
		mcp.WithString("payment", mcp.Description("Filter by payment method, long form (e.g. 'Electronic check'). Defaults to all.")),
		mcp.WithNumber("tenure_min", mcp.Description("Inclusive lower tenure bound in months.")),
		mcp.WithNumber("tenure_max", mcp.Description("Inclusive upper tenure bound in months.")),
	), h.handleGetSummary)

	// --- 2. Tool: get_chart ---
	s.AddTool(mcp.NewTool("get_chart",
		mcp.WithDescription("Build a deterministic chart specification over a filtered customer subset."),
		mcp.WithString("kind", mcp.Description("Chart kind to build."), mcp.Required(),
			mcp.Enum("rate-internet", "rate-contract", "rate-payment", "tenure-histogram", "ltv-internet", "ltv-contract", "bundle-value")),
		mcp.WithString("gender", mcp.Description("Filter by gender (Male, Female). Defaults to all.")),
		mcp.WithString("dependents", mcp.Description("Filter by dependents (Yes, No). Defaults to all.")),
		mcp.WithString("phone", mcp.Description("Filter by phone service (Yes, No). Defaults to all.")),
		mcp.WithString("paperless", mcp.Description("Filter by paperless billing (Yes, No). Defaults to all.")),
		mcp.WithString("internet", mcp.Description("Filter by internet service (Fiber optic, DSL, No). Defaults to all.")),
		mcp.WithString("contract", mcp.Description("Filter by contract type (Month-to-month, One year, Two year). Defaults to all.")),
		mcp.WithString("payment", mcp.Description("Filter by payment method, long form. Defaults to all.")),
		mcp.WithNumber("tenure_min", mcp.Description("Inclusive lower tenure bound in months.")),
		mcp.WithNumber("tenure_max", mcp.Description("Inclusive upper tenure bound in months.")),
	), h.handleGetChart)

	// --- 3. Tool: list_charts ---
	s.AddTool(mcp.NewTool("list_charts",
		mcp.WithDescription("List every supported chart kind in presentation order."),
	), h.handleListCharts)

	return s
}

// StartMCPServer starts the churnscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, engine *core.Engine) error {
	s := NewMCPServer(baseCfg, engine)
	return server.ServeStdio(s)
}
