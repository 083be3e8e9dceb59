package loanquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumber(t *testing.T) {
	cases := []struct {
		text  string
		value float64
		found bool
	}{
		{"difference > 5000", 5000, true},
		{"over 1234.56 dollars", 1234.56, true},
		{"version 1.2.3", 1.2, true},
		{"ends with 5000.", 5000, true},
		{"skip 10 then 20", 10, true},
		{"no digits here", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			value, found := extractNumber(tc.text)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.InDelta(t, tc.value, value, 1e-9)
			}
		})
	}
}

func TestExtractTopN(t *testing.T) {
	cases := []struct {
		text string
		n    int
	}{
		{"top 5 differences", 5},
		{"top differences", 10},
		{"bottom 3 smallest", 3},
		{"top 0 loans", 10},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.n, extractTopN(tc.text))
		})
	}
}

func TestExtractLoanIDToken(t *testing.T) {
	cases := []struct {
		text  string
		token string
	}{
		{"Find loan LN-001234", "LN-001234"},
		{"loan number 'LN-001237'", "LN-001237"},
		{"lookup id ABC123?", "ABC123"},
		{"ref 123-456", "123-456"},
		{"loan 12345", ""},
		{"nothing shaped like an id", ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.token, extractLoanIDToken(tc.text))
		})
	}
}

func TestContainsToken(t *testing.T) {
	assert.True(t, containsToken("did not reconcile", "reconcile"))
	assert.True(t, containsToken("re-reconcile now", "reconcile"))
	assert.False(t, containsToken("reconciled loans", "reconcile"))
	assert.False(t, containsToken("unreconciled", "reconcile"))
}

func TestHasComparator(t *testing.T) {
	assert.True(t, hasComparator("difference > 5000"))
	assert.True(t, hasComparator("smallest difference"))
	assert.True(t, hasComparator("negative difference"))
	assert.False(t, hasComparator("total difference"))
	assert.False(t, hasComparator("show mismatched"))
}

func TestExtractBorrowerFragment(t *testing.T) {
	cases := []struct {
		text     string
		fragment string
	}{
		{"find loans for borrower john smith", "john smith"},
		{"loans whose name is garcia lopez", "garcia lopez"},
		{"customer carol", "carol"},
		{"show borrower", ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.fragment, extractBorrowerFragment(tc.text))
		})
	}
}
