package handler

import (
	"encoding/json"
	"fmt"

	usecase "github.com/radhian/loan-reconciliation-mcp/usecase/loanquery"
)

// ToolHandler exposes the loan query usecase as MCP tools. Handler methods
// return an error only for protocol-level faults (bad arguments, unknown
// tool); domain failures travel inside the tool result with success=false.
type ToolHandler struct {
	Usecase usecase.LoanQueryUsecase
}

func NewToolHandler(uc usecase.LoanQueryUsecase) *ToolHandler {
	return &ToolHandler{Usecase: uc}
}

type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type ToolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

type ToolCallResult struct {
	Content []ToolContentItem `json:"content"`
}

type ToolContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps a payload as the single JSON text content item every
// tool on this server returns.
func textResult(payload interface{}) (ToolCallResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ToolCallResult{}, fmt.Errorf("encode tool payload: %w", err)
	}
	return ToolCallResult{
		Content: []ToolContentItem{{Type: "text", Text: string(encoded)}},
	}, nil
}
