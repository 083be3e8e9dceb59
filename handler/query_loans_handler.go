package handler

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/radhian/loan-reconciliation-mcp/entity"
)

// QueryLoans runs the free-text query tool. The query argument is required,
// limit and skip are optional paging controls.
func (h *ToolHandler) QueryLoans(ctx context.Context, args map[string]interface{}) (ToolCallResult, error) {
	query, err := requiredStringArg(args, "query")
	if err != nil {
		return ToolCallResult{}, err
	}
	limit, err := optionalIntArg(args, "limit")
	if err != nil {
		return ToolCallResult{}, err
	}
	skip, err := optionalIntArg(args, "skip")
	if err != nil {
		return ToolCallResult{}, err
	}

	result := h.Usecase.ExecuteQuery(ctx, entity.QueryRequest{
		Query: query,
		Limit: limit,
		Skip:  skip,
	})
	return textResult(result)
}

func requiredStringArg(args map[string]interface{}, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return value, nil
}

// optionalIntArg tolerates the numeric types a JSON decoder may hand over.
// Absent keys yield zero, which the usecase maps to its defaults.
func optionalIntArg(args map[string]interface{}, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		if math.Trunc(v) != v {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}
