package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/radhian/loan-reconciliation-mcp/consts"
)

// CallTool decodes tools/call params and dispatches to the named tool.
func (h *ToolHandler) CallTool(ctx context.Context, params json.RawMessage) (ToolCallResult, error) {
	var call ToolCallParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &call); err != nil {
			return ToolCallResult{}, fmt.Errorf("decode tools/call params: %w", err)
		}
	}

	switch call.Name {
	case consts.ToolQueryLoans:
		return h.QueryLoans(ctx, call.Arguments)
	case consts.ToolGetStatistics:
		return h.GetStatistics(ctx)
	default:
		return ToolCallResult{}, fmt.Errorf("unknown tool: %q", call.Name)
	}
}
