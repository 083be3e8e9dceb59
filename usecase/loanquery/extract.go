package loanquery

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/radhian/loan-reconciliation-mcp/consts"
)

// queryText carries the query in both forms: norm (lowercased, trimmed) for
// keyword matching, raw for case-preserving extraction such as loan IDs.
type queryText struct {
	raw  string
	norm string
}

func newQueryText(raw string) queryText {
	return queryText{raw: raw, norm: strings.ToLower(strings.TrimSpace(raw))}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// containsToken matches a whole word, so "reconcile" does not fire on
// "reconciled".
func containsToken(s, want string) bool {
	for _, tok := range splitTokens(s) {
		if tok == want {
			return true
		}
	}
	return false
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasComparator reports whether the text carries a comparator or selector
// token. The bare-"difference" arm of the mismatch rule defers to later
// rules exactly when one of these is present, keeping threshold, sign and
// top/bottom rules reachable.
func hasComparator(s string) bool {
	return containsAny(s, ">", "<", "greater", "less", "positive", "negative",
		"top", "highest", "largest", "bottom", "lowest", "smallest")
}

// extractNumber returns the first contiguous digit run, with an optional
// decimal point, found anywhere in the text.
func extractNumber(s string) (float64, bool) {
	start, end := -1, -1
	seenDot := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if start == -1 {
				start = i
			}
			end = i + 1
			continue
		}
		if start == -1 {
			continue
		}
		if c == '.' && !seenDot && i == end && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			seenDot = true
			continue
		}
		break
	}

	if start == -1 {
		return 0, false
	}
	value, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// extractTopN returns the first integer in the text, falling back to the
// default sample size when none is present.
func extractTopN(s string) int {
	start, end := -1, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if start == -1 {
				start = i
			}
			end = i + 1
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return consts.DefaultTopN
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil || n <= 0 {
		return consts.DefaultTopN
	}
	return n
}

// extractLoanIDToken returns the first whitespace-delimited token shaped
// like a loan identifier: letters and digits mixed, or digits joined by a
// hyphen. Pure digit runs are left for the numeric extractors.
func extractLoanIDToken(raw string) string {
	for _, field := range strings.Fields(raw) {
		tok := strings.Trim(field, ".,!?;:\"'()")
		if looksLikeLoanID(tok) {
			return tok
		}
	}
	return ""
}

func looksLikeLoanID(tok string) bool {
	hasLetter, hasDigit, hasHyphen := false, false, false
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '-' || r == '_':
			hasHyphen = true
		default:
			return false
		}
	}
	return hasDigit && (hasLetter || hasHyphen)
}

var borrowerStopwords = map[string]bool{
	"find": true, "show": true, "me": true, "get": true, "give": true,
	"list": true, "all": true, "any": true, "loans": true, "loan": true,
	"for": true, "the": true, "a": true, "an": true, "of": true,
	"with": true, "and": true, "by": true, "borrower": true, "borrowers": true,
	"customer": true, "customers": true, "name": true, "named": true,
	"whose": true, "is": true, "are": true, "search": true, "lookup": true,
	"look": true, "up": true, "please": true, "records": true, "record": true,
	"containing": true, "contains": true, "called": true, "who": true,
	"what": true, "where": true,
}

// extractBorrowerFragment strips query scaffolding and keeps what is left as
// the name fragment. An empty result means no name could be isolated.
func extractBorrowerFragment(s string) string {
	var kept []string
	for _, field := range strings.Fields(s) {
		tok := strings.Trim(field, ".,!?;:\"'()")
		if tok == "" || borrowerStopwords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
