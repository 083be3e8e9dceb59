package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/metrics"
)

// Snapshot holds one immutable view of the dataset: the ordered records,
// the key lookup index, and the precomputed mismatch subset. All three are
// built from the same batch and published together.
type Snapshot struct {
	Records    []entity.LoanRecord
	Mismatches []entity.LoanRecord
	BuildTime  time.Time
	Version    string

	byID map[string]int
}

func (sn *Snapshot) GetByKey(key string) (entity.LoanRecord, bool) {
	pos, ok := sn.byID[key]
	if !ok {
		return entity.LoanRecord{}, false
	}
	return sn.Records[pos], true
}

func (sn *Snapshot) Count() int {
	return len(sn.Records)
}

// Store publishes the active Snapshot. Readers grab the current pointer
// under a read lock; Build swaps it under a write lock held only for the
// assignment, never for index construction.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func New() *Store {
	return &Store{}
}

func (s *Store) Build(records []entity.LoanRecord) *Snapshot {
	snap := buildSnapshot(records)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.StoreRecords.Set(float64(len(snap.Records)))
	metrics.StoreRebuildsTotal.Inc()
	log.Infof("[Store] Published snapshot %s: %d records, %d mismatches",
		snap.Version, len(snap.Records), len(snap.Mismatches))
	return snap
}

// buildSnapshot dedupes on loan ID with last-write-wins: the later row
// replaces the earlier one in place, so the record sequence, the key map
// and the mismatch subset stay consistent with each other.
func buildSnapshot(records []entity.LoanRecord) *Snapshot {
	deduped := make([]entity.LoanRecord, 0, len(records))
	byID := make(map[string]int, len(records))

	for _, rec := range records {
		if pos, ok := byID[rec.LoanID]; ok {
			log.Warnf("[Store] Duplicate loan ID %s, keeping the later row", rec.LoanID)
			deduped[pos] = rec
			continue
		}
		byID[rec.LoanID] = len(deduped)
		deduped = append(deduped, rec)
	}

	mismatches := make([]entity.LoanRecord, 0)
	for _, rec := range deduped {
		if rec.HasMismatch {
			mismatches = append(mismatches, rec)
		}
	}

	return &Snapshot{
		Records:    deduped,
		Mismatches: mismatches,
		BuildTime:  time.Now().UTC(),
		Version:    uuid.NewString(),
		byID:       byID,
	}
}

// Snapshot returns the currently published view, nil before the first Build.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) GetByKey(key string) (entity.LoanRecord, bool) {
	snap := s.Snapshot()
	if snap == nil {
		return entity.LoanRecord{}, false
	}
	return snap.GetByKey(key)
}

func (s *Store) MismatchSet() []entity.LoanRecord {
	snap := s.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.Mismatches
}

func (s *Store) Count() int {
	snap := s.Snapshot()
	if snap == nil {
		return 0
	}
	return snap.Count()
}

func (s *Store) LastBuildTime() time.Time {
	snap := s.Snapshot()
	if snap == nil {
		return time.Time{}
	}
	return snap.BuildTime
}

func (s *Store) Version() string {
	snap := s.Snapshot()
	if snap == nil {
		return ""
	}
	return snap.Version
}
