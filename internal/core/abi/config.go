package abi

// ManagerConfig holds the Manager's tunable limits. The codec-level
// constants (maxSchemaDepth, maxDispatchDepth) stay package-level since
// they're invariants of the wire format, not deployment knobs; what the
// Manager exposes here is purely about how many resolved contracts it is
// willing to hold onto at once.
type ManagerConfig struct {
	// MaxCachedContracts bounds the contract registry; once exceeded, the
	// least recently used contract is evicted to make room for a new one.
	MaxCachedContracts int
}

// DefaultManagerConfig returns the configuration a Manager uses when none
// is supplied.
func DefaultManagerConfig() *ManagerConfig {
	return &ManagerConfig{
		MaxCachedContracts: 256,
	}
}
