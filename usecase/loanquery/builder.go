package loanquery

import (
	"context"

	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/store"
)

type LoanQueryUsecase interface {
	ExecuteQuery(ctx context.Context, req entity.QueryRequest) entity.QueryResult
	DatasetStatistics(ctx context.Context) entity.DatasetStatistics
}

type loanQueryUsecase struct {
	store *store.Store
	rules []queryRule
}

func NewLoanQueryUsecase(s *store.Store) LoanQueryUsecase {
	return &loanQueryUsecase{store: s, rules: buildQueryRules()}
}
