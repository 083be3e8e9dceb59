package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radhian/loan-reconciliation-mcp/consts"
	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/store"
	usecase "github.com/radhian/loan-reconciliation-mcp/usecase/loanquery"
)

func newTestHandler(t *testing.T, records ...entity.LoanRecord) *ToolHandler {
	t.Helper()
	s := store.New()
	if len(records) > 0 {
		s.Build(records)
	}
	return NewToolHandler(usecase.NewLoanQueryUsecase(s))
}

func sampleRecords() []entity.LoanRecord {
	return []entity.LoanRecord{
		entity.NewLoanRecord("LN-000001", "Aria Stone", 100.00, 100.00, "Reconciled"),
		entity.NewLoanRecord("LN-000002", "Ben Ozawa", 220.50, 200.00, "Pending"),
		entity.NewLoanRecord("LN-000003", "Cleo Marsh", 310.00, 410.00, "Pending"),
	}
}

func decodeQueryResult(t *testing.T, res ToolCallResult) entity.QueryResult {
	t.Helper()
	require.Len(t, res.Content, 1)
	require.Equal(t, "text", res.Content[0].Type)

	var result entity.QueryResult
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &result))
	return result
}

func TestQueryLoansReturnsResultAsJSONText(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	res, err := h.QueryLoans(context.Background(), map[string]interface{}{
		"query": "List all loans",
	})
	require.NoError(t, err)

	result := decodeQueryResult(t, res)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, consts.QueryTypeAllLoans, result.Metadata.QueryType)
}

func TestQueryLoansRequiresQuery(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	cases := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing", map[string]interface{}{}},
		{"wrong type", map[string]interface{}{"query": 42}},
		{"blank", map[string]interface{}{"query": "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.QueryLoans(context.Background(), tc.args)
			assert.Error(t, err)
		})
	}
}

func TestQueryLoansPagingArguments(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	res, err := h.QueryLoans(context.Background(), map[string]interface{}{
		"query": "List all loans",
		"limit": float64(1),
		"skip":  float64(2),
	})
	require.NoError(t, err)

	result := decodeQueryResult(t, res)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "LN-000003", result.Data[0].LoanID)
	assert.Equal(t, 3, result.TotalCount)
}

func TestQueryLoansRejectsFractionalPaging(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	_, err := h.QueryLoans(context.Background(), map[string]interface{}{
		"query": "List all loans",
		"limit": 1.5,
	})
	assert.ErrorContains(t, err, "limit must be an integer")
}

func TestQueryLoansFailedQueryStaysInsideResult(t *testing.T) {
	h := newTestHandler(t) // no build, so the usecase reports no dataset

	res, err := h.QueryLoans(context.Background(), map[string]interface{}{
		"query": "List all loans",
	})
	require.NoError(t, err)

	result := decodeQueryResult(t, res)
	assert.False(t, result.Success)
	assert.Equal(t, "no dataset loaded", result.Message)
}

func TestListToolsDescribesBothTools(t *testing.T) {
	h := newTestHandler(t)

	defs := h.ListTools()
	require.Len(t, defs, 2)
	assert.Equal(t, consts.ToolQueryLoans, defs[0].Name)
	assert.Equal(t, consts.ToolGetStatistics, defs[1].Name)
	assert.Equal(t, []string{"query"}, defs[0].InputSchema["required"])
}

func TestCallToolDispatchesByName(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	res, err := h.CallTool(context.Background(), json.RawMessage(
		`{"name":"query_loans","arguments":{"query":"how many loans"}}`,
	))
	require.NoError(t, err)

	result := decodeQueryResult(t, res)
	assert.Equal(t, consts.QueryTypeLoanCount, result.Metadata.QueryType)
	assert.Equal(t, 3, result.TotalCount)
}

func TestCallToolUnknownName(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	_, err := h.CallTool(context.Background(), json.RawMessage(`{"name":"no_such_tool"}`))
	assert.ErrorContains(t, err, "unknown tool")
}

func TestCallToolMalformedParams(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	_, err := h.CallTool(context.Background(), json.RawMessage(`{"name":`))
	assert.Error(t, err)
}
