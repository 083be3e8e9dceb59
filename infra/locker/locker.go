// locker/locker.go
package locker

import "sync"

type Locker struct {
	mu           sync.Mutex
	inProcessMap map[string]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[string]bool),
	}
}

// TryAcquire marks a source as rebuilding. Returns false when a rebuild of
// the same source is already in flight.
func (l *Locker) TryAcquire(source string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcessMap[source] {
		return false
	}
	l.inProcessMap[source] = true
	return true
}

// IsProcessing checks if a source is currently being rebuilt.
func (l *Locker) IsProcessing(source string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inProcessMap[source]
}

func (l *Locker) Release(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, source)
}
