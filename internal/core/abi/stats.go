package abi

import "sync"

// OperationStats is a call/error counter keyed by operation name (load,
// encode, decode), grounded on the donor's per-primitive usage counters.
// It is safe for concurrent use; a Manager updates it on every call.
type OperationStats struct {
	mu          sync.RWMutex
	callCounts  map[string]uint64
	errorCounts map[string]uint64
}

// NewOperationStats returns an empty counter set.
func NewOperationStats() *OperationStats {
	return &OperationStats{
		callCounts:  make(map[string]uint64),
		errorCounts: make(map[string]uint64),
	}
}

func (s *OperationStats) recordCall(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCounts[op]++
}

func (s *OperationStats) recordError(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorCounts[op]++
}

// Snapshot returns a point-in-time copy of the call/error counters.
func (s *OperationStats) Snapshot() map[string]map[string]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	calls := make(map[string]uint64, len(s.callCounts))
	errs := make(map[string]uint64, len(s.errorCounts))
	for k, v := range s.callCounts {
		calls[k] = v
	}
	for k, v := range s.errorCounts {
		errs[k] = v
	}
	return map[string]map[string]uint64{"calls": calls, "errors": errs}
}
