package loanquery

import (
	"fmt"
	"strings"

	"github.com/radhian/loan-reconciliation-mcp/consts"
	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/store"
)

// queryRule is one entry of the classification cascade. Rules are evaluated
// in slice order and the first match wins, so a query satisfying several
// predicates resolves to the earliest one. The order is part of the
// contract, not an accident.
type queryRule struct {
	name  string
	match func(q queryText) bool
	run   func(snap *store.Snapshot, q queryText) ruleOutcome
}

type ruleOutcome struct {
	matched []entity.LoanRecord
	message string
	// sampleCap bounds the returned page below the caller's limit (summary
	// responses carry a fixed-size sample).
	sampleCap int
}

func buildQueryRules() []queryRule {
	return []queryRule{
		{
			name: consts.QueryTypeMismatchedLoans,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "mismatch") ||
					strings.Contains(q.norm, "discrepan") ||
					containsToken(q.norm, "reconcile") ||
					(strings.Contains(q.norm, "difference") && !hasComparator(q.norm))
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := snap.Mismatches
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans with mismatched amounts", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeDifferenceGreaterThan,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "difference") &&
					(strings.Contains(q.norm, ">") || strings.Contains(q.norm, "greater"))
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				threshold, _ := extractNumber(q.norm)
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.DifferenceAmount > threshold
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans with difference greater than %.2f", len(matched), threshold),
				}
			},
		},
		{
			name: consts.QueryTypeDifferenceLessThan,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "difference") &&
					(strings.Contains(q.norm, "<") || strings.Contains(q.norm, "less"))
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				threshold, _ := extractNumber(q.norm)
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.DifferenceAmount < threshold
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans with difference less than %.2f", len(matched), threshold),
				}
			},
		},
		{
			name: consts.QueryTypeReconciledLoans,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "reconciled") &&
					!strings.Contains(q.norm, "unreconciled") &&
					!containsToken(q.norm, "not")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return strings.EqualFold(r.ReconciliationStatus, consts.StatusReconciled)
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d reconciled loans", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeUnreconciledLoans,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "unreconciled") ||
					strings.Contains(q.norm, "not reconciled") ||
					strings.Contains(q.norm, "pending")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return !strings.EqualFold(r.ReconciliationStatus, consts.StatusReconciled)
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d unreconciled loans", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeLoanByID,
			match: func(q queryText) bool {
				if strings.Contains(q.norm, "loan") &&
					(containsToken(q.norm, "id") || strings.Contains(q.norm, "number")) {
					return true
				}
				return extractLoanIDToken(q.raw) != ""
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				token := extractLoanIDToken(q.raw)
				if token == "" {
					return ruleOutcome{
						matched: nil,
						message: `Could not find a loan ID in the query. Try "Find loan LN-001234".`,
					}
				}
				rec, ok := snap.GetByKey(token)
				if !ok {
					// IDs are usually typed lowercase while keys are upper.
					rec, ok = snap.GetByKey(strings.ToUpper(token))
				}
				if !ok {
					return ruleOutcome{
						matched: nil,
						message: fmt.Sprintf("No loan found with ID %s", token),
					}
				}
				return ruleOutcome{
					matched: []entity.LoanRecord{rec},
					message: fmt.Sprintf("Found loan %s", rec.LoanID),
				}
			},
		},
		{
			name: consts.QueryTypeBorrowerSearch,
			match: func(q queryText) bool {
				return containsAny(q.norm, "borrower", "customer", "name")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				fragment := extractBorrowerFragment(q.norm)
				if fragment == "" {
					return ruleOutcome{
						matched: nil,
						message: `Could not isolate a borrower name from the query. Try "Find loans for borrower John Smith".`,
					}
				}
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return strings.Contains(strings.ToLower(r.BorrowerName), fragment)
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans for borrower name containing %q", len(matched), fragment),
				}
			},
		},
		{
			name: consts.QueryTypeTopDifferences,
			match: func(q queryText) bool {
				return containsAny(q.norm, "top", "highest", "largest")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				n := extractTopN(q.norm)
				matched := takeRecords(sortedByAbsDifference(snap.Records, true), n)
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Top %d loans by absolute difference", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeBottomDifferences,
			match: func(q queryText) bool {
				return containsAny(q.norm, "bottom", "lowest", "smallest")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				n := extractTopN(q.norm)
				matched := takeRecords(sortedByAbsDifference(snap.Mismatches, false), n)
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Bottom %d loans by absolute difference", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypePositiveDifferences,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "positive") && strings.Contains(q.norm, "difference")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.DifferenceAmount > 0
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans with positive difference", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeNegativeDifferences,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "negative") && strings.Contains(q.norm, "difference")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.DifferenceAmount < 0
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans with negative difference", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeServicerExcess,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "servicer") &&
					(strings.Contains(q.norm, "greater") || strings.Contains(q.norm, "more"))
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.ServicerAmount > r.InvestorAmount
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans where the servicer amount exceeds the investor amount", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeInvestorExcess,
			match: func(q queryText) bool {
				return strings.Contains(q.norm, "investor") &&
					(strings.Contains(q.norm, "greater") || strings.Contains(q.norm, "more"))
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				matched := filterRecords(snap.Records, func(r entity.LoanRecord) bool {
					return r.InvestorAmount > r.ServicerAmount
				})
				return ruleOutcome{
					matched: matched,
					message: fmt.Sprintf("Found %d loans where the investor amount exceeds the servicer amount", len(matched)),
				}
			},
		},
		{
			name: consts.QueryTypeLoanCount,
			match: func(q queryText) bool {
				return containsAny(q.norm, "count", "how many", "total")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				return ruleOutcome{
					matched: snap.Records,
					message: fmt.Sprintf("Dataset contains %d loan records", snap.Count()),
				}
			},
		},
		{
			name: consts.QueryTypeAllLoans,
			match: func(q queryText) bool {
				return containsAny(q.norm, "all", "list", "show", "everything")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				return ruleOutcome{
					matched: snap.Records,
					message: fmt.Sprintf("Returning all %d loan records", snap.Count()),
				}
			},
		},
		{
			name: consts.QueryTypeSummary,
			match: func(q queryText) bool {
				return containsAny(q.norm, "summary", "overview", "report")
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				total := snap.Count()
				mismatched := len(snap.Mismatches)
				reconciled := 0
				for _, r := range snap.Records {
					if strings.EqualFold(r.ReconciliationStatus, consts.StatusReconciled) {
						reconciled++
					}
				}
				pct := 0.0
				if total > 0 {
					pct = float64(mismatched) / float64(total) * 100
				}
				return ruleOutcome{
					matched:   snap.Records,
					sampleCap: consts.SummarySampleSize,
					message: fmt.Sprintf("Dataset summary: %d loans total, %d mismatched (%.1f%%), %d reconciled",
						total, mismatched, pct, reconciled),
				}
			},
		},
		{
			name: consts.QueryTypeUnknown,
			match: func(q queryText) bool {
				return true
			},
			run: func(snap *store.Snapshot, q queryText) ruleOutcome {
				return ruleOutcome{
					matched: nil,
					message: `Query not recognized. Try: "Show all mismatched loans", "Find loan LN-001234", ` +
						`"Show loans with difference > 5000", "Find loans for borrower John Smith", ` +
						`"Top 10 largest differences", or "Give me a summary report".`,
				}
			},
		},
	}
}
