package handler

import (
	"github.com/radhian/loan-reconciliation-mcp/consts"
)

// ListTools returns the tool descriptors for tools/list, in a fixed order.
func (h *ToolHandler) ListTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name: consts.ToolQueryLoans,
			Description: "Query loan reconciliation records with natural language. " +
				"Supports mismatch and difference filters, reconciliation status, " +
				"loan ID and borrower lookups, top/bottom rankings, counts and summaries.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": `Natural language query, e.g. "Show loans with difference > 5000"`,
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum records per page",
						"default":     consts.DefaultQueryLimit,
					},
					"skip": map[string]interface{}{
						"type":        "integer",
						"description": "Records to skip before the page starts",
						"default":     0,
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name: consts.ToolGetStatistics,
			Description: "Report dataset health: record count, last load time and " +
				"whether data is loaded.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
