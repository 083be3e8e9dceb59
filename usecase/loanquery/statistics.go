package loanquery

import (
	"math"
	"sort"

	"github.com/radhian/loan-reconciliation-mcp/entity"
)

// computeStatistics aggregates over the full match set, before pagination.
// An empty match set yields an empty map rather than zeroed entries, so
// averages never divide by zero.
func computeStatistics(matched []entity.LoanRecord) map[string]float64 {
	stats := make(map[string]float64)
	if len(matched) == 0 {
		return stats
	}

	var totalServicer, totalInvestor, totalDiff float64
	maxDiff := matched[0].DifferenceAmount
	minDiff := matched[0].DifferenceAmount
	mismatches := 0

	for _, rec := range matched {
		totalServicer += rec.ServicerAmount
		totalInvestor += rec.InvestorAmount
		totalDiff += rec.DifferenceAmount
		if rec.DifferenceAmount > maxDiff {
			maxDiff = rec.DifferenceAmount
		}
		if rec.DifferenceAmount < minDiff {
			minDiff = rec.DifferenceAmount
		}
		if rec.HasMismatch {
			mismatches++
		}
	}

	stats["totalServicerAmount"] = totalServicer
	stats["totalInvestorAmount"] = totalInvestor
	stats["totalDifference"] = totalDiff
	stats["averageDifference"] = totalDiff / float64(len(matched))
	stats["maxDifference"] = maxDiff
	stats["minDifference"] = minDiff
	stats["mismatchCount"] = float64(mismatches)
	return stats
}

func filterRecords(records []entity.LoanRecord, keep func(entity.LoanRecord) bool) []entity.LoanRecord {
	matched := make([]entity.LoanRecord, 0)
	for _, rec := range records {
		if keep(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// sortedByAbsDifference copies before sorting so snapshot slices are never
// reordered under a concurrent reader.
func sortedByAbsDifference(records []entity.LoanRecord, desc bool) []entity.LoanRecord {
	out := make([]entity.LoanRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return math.Abs(out[i].DifferenceAmount) > math.Abs(out[j].DifferenceAmount)
		}
		return math.Abs(out[i].DifferenceAmount) < math.Abs(out[j].DifferenceAmount)
	})
	return out
}

func takeRecords(records []entity.LoanRecord, n int) []entity.LoanRecord {
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}
