package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
}

// selectionFromRequest overlays filter arguments onto the base selection.
// Absent arguments keep the base config's values; the engine treats unknown
// dimension values as zero-match filters rather than errors.
func (h *toolHandler) selectionFromRequest(request mcp.CallToolRequest) schema.Selection {
	sel := h.baseCfg.Clone().Selection
	if v := request.GetString("gender", ""); v != "" {
		sel.Gender = v
	}
	if v := request.GetString("dependents", ""); v != "" {
		sel.Dependents = v
	}
	if v := request.GetString("phone", ""); v != "" {
		sel.PhoneService = v
	}
	if v := request.GetString("paperless", ""); v != "" {
		sel.PaperlessBilling = v
	}
	if v := request.GetString("internet", ""); v != "" {
		sel.InternetService = v
	}
	if v := request.GetString("contract", ""); v != "" {
		sel.Contract = v
	}
	if v := request.GetString("payment", ""); v != "" {
		sel.PaymentMethod = v
	}
	if v := request.GetInt("tenure_min", contract.TenureUnset); v != contract.TenureUnset {
		sel.TenureMin = &v
	}
	if v := request.GetInt("tenure_max", contract.TenureUnset); v != contract.TenureUnset {
		sel.TenureMax = &v
	}
	return sel
}

func (h *toolHandler) handleGetSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel := h.selectionFromRequest(request)

	summary := h.engine.GetSummary(sel)
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetChart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := schema.ChartKind(request.GetString("kind", ""))
	if _, ok := schema.ValidChartKinds[kind]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown chart kind: %s", kind)), nil
	}
	sel := h.selectionFromRequest(request)

	spec, err := h.engine.GetChart(sel, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(spec, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListCharts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(schema.AllChartKinds, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
