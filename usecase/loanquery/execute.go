package loanquery

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/consts"
	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/metrics"
)

// ExecuteQuery classifies the free-text query, runs the selected operation
// against the current snapshot, and paginates the match set. Any panic below
// this boundary is converted into a success=false result; the store is never
// mutated by a query.
func (u *loanQueryUsecase) ExecuteQuery(ctx context.Context, req entity.QueryRequest) (res entity.QueryResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Query] Panic recovered for query %q: %v", req.Query, r)
			res = entity.QueryResult{
				Success: false,
				Message: fmt.Sprintf("query failed: %v", r),
				Data:    []entity.LoanRecord{},
				Metadata: entity.QueryMetadata{
					QueryType:       consts.QueryTypeUnknown,
					ExecutionTimeMs: time.Since(start).Milliseconds(),
					Statistics:      map[string]float64{},
				},
			}
		}
	}()

	snap := u.store.Snapshot()
	if snap == nil {
		return entity.QueryResult{
			Success: false,
			Message: "no dataset loaded",
			Data:    []entity.LoanRecord{},
			Metadata: entity.QueryMetadata{
				QueryType:       consts.QueryTypeUnknown,
				ExecutionTimeMs: time.Since(start).Milliseconds(),
				Statistics:      map[string]float64{},
			},
		}
	}

	q := newQueryText(req.Query)
	rule := u.classify(q)
	outcome := rule.run(snap, q)

	stats := computeStatistics(outcome.matched)
	page := paginate(outcome.matched, req.Skip, req.Limit, outcome.sampleCap)

	elapsed := time.Since(start)
	metrics.QueriesTotal.WithLabelValues(rule.name).Inc()
	metrics.QueryDuration.WithLabelValues(rule.name).Observe(elapsed.Seconds())
	log.Infof("[Query] %q classified as %s: %d matched, %d returned in %dms",
		req.Query, rule.name, len(outcome.matched), len(page), elapsed.Milliseconds())

	return entity.QueryResult{
		Success:    true,
		Message:    outcome.message,
		Data:       page,
		TotalCount: len(outcome.matched),
		Metadata: entity.QueryMetadata{
			QueryType:       rule.name,
			ExecutionTimeMs: elapsed.Milliseconds(),
			Statistics:      stats,
		},
	}
}

func (u *loanQueryUsecase) classify(q queryText) queryRule {
	for _, rule := range u.rules {
		if rule.match(q) {
			return rule
		}
	}
	// The fallback rule matches everything, so this is unreachable.
	return u.rules[len(u.rules)-1]
}

// paginate clamps negative skip to 0, applies the default limit when the
// caller sent none, and slices skip then limit out of the ordered match set.
func paginate(matched []entity.LoanRecord, skip, limit, sampleCap int) []entity.LoanRecord {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = consts.DefaultQueryLimit
	}
	if sampleCap > 0 && limit > sampleCap {
		limit = sampleCap
	}
	if skip >= len(matched) {
		return []entity.LoanRecord{}
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end]
}

func (u *loanQueryUsecase) DatasetStatistics(ctx context.Context) entity.DatasetStatistics {
	snap := u.store.Snapshot()
	if snap == nil {
		return entity.DatasetStatistics{}
	}
	return entity.DatasetStatistics{
		TotalRecords:    snap.Count(),
		LastLoadTime:    snap.BuildTime,
		DataLoaded:      true,
		MismatchCount:   len(snap.Mismatches),
		SnapshotVersion: snap.Version,
	}
}
