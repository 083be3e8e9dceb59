package loader

import (
	"errors"

	"github.com/radhian/loan-reconciliation-mcp/entity"
)

// ErrNoUsableRecords marks a definite load failure: the source was read but
// produced nothing to serve. Distinct from partial success, where bad rows
// are skipped and the rest is kept.
var ErrNoUsableRecords = errors.New("no usable loan records")

type Source interface {
	Load() ([]entity.LoanRecord, error)
	Describe() string
}
