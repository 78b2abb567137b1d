package abi

import "sync"

// Manager is the orchestration facade over the C3–C6 engine: it owns a
// registry of resolved contracts keyed by caller-chosen name, so a host
// application can load an ABI once and drive many encode/decode calls
// against it without re-resolving the schema each time. Grounded on the
// donor's context.Manager (logger + config + mutex-guarded registry).
type Manager struct {
	mu        sync.RWMutex
	config    *ManagerConfig
	logger    Logger
	stats     *OperationStats
	contracts map[string]*Contract
	lru       []string // oldest first; touched entries move to the back
}

// NewManager builds a Manager. A nil config or logger falls back to
// defaults (DefaultManagerConfig, NoopLogger).
func NewManager(config *ManagerConfig, logger Logger) *Manager {
	if config == nil {
		config = DefaultManagerConfig()
	}
	if logger == nil {
		logger = NoopLogger()
	}
	return &Manager{
		config:    config,
		logger:    logger,
		stats:     NewOperationStats(),
		contracts: make(map[string]*Contract),
	}
}

// Stats returns a snapshot of per-operation call/error counters.
func (m *Manager) Stats() map[string]map[string]uint64 {
	return m.stats.Snapshot()
}

func (m *Manager) touch(name string) {
	for i, n := range m.lru {
		if n == name {
			m.lru = append(m.lru[:i], m.lru[i+1:]...)
			break
		}
	}
	m.lru = append(m.lru, name)
}

func (m *Manager) evictLocked() {
	if m.config.MaxCachedContracts <= 0 || len(m.contracts) < m.config.MaxCachedContracts {
		return
	}
	for len(m.contracts) >= m.config.MaxCachedContracts && len(m.lru) > 0 {
		oldest := m.lru[0]
		m.lru = m.lru[1:]
		delete(m.contracts, oldest)
		m.logger.Debugf("evicted contract %q from cache", oldest)
	}
}

// LoadContract parses and resolves jsonText (C3/C4) and registers the
// result under name, evicting the least recently touched contract first
// if the cache is full.
func (m *Manager) LoadContract(name string, jsonText []byte) (*Contract, error) {
	m.stats.recordCall("load")

	contract, err := LoadABI(jsonText)
	if err != nil {
		m.stats.recordError("load")
		m.logger.Errorf("load_abi %q: %v", name, err)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.contracts[name]; !exists {
		m.evictLocked()
	}
	m.contracts[name] = contract
	m.touch(name)
	m.logger.Infof("loaded contract %q (%d types, %d actions)", name, len(contract.types), len(contract.actions))
	return contract, nil
}

// Contract returns the previously loaded contract registered under name.
func (m *Manager) Contract(name string) (*Contract, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[name]
	if ok {
		m.touch(name)
	}
	return c, ok
}

// Forget drops a contract from the registry.
func (m *Manager) Forget(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.contracts, name)
	for i, n := range m.lru {
		if n == name {
			m.lru = append(m.lru[:i], m.lru[i+1:]...)
			break
		}
	}
}

// EncodeJSON looks up contractName and encodes json under typeName (C5).
func (m *Manager) EncodeJSON(contractName, typeName string, json []byte) ([]byte, error) {
	m.stats.recordCall("encode")
	contract, ok := m.Contract(contractName)
	if !ok {
		m.stats.recordError("encode")
		return nil, newErr(KindUnknownType, "no contract registered as %q", contractName)
	}
	bin, err := JSONToBin(contract, typeName, json)
	if err != nil {
		m.stats.recordError("encode")
		m.logger.Errorf("encode %s/%s: %v", contractName, typeName, err)
	}
	return bin, err
}

// DecodeBinary looks up contractName and decodes bin under typeName (C6).
func (m *Manager) DecodeBinary(contractName, typeName string, bin []byte) (string, error) {
	m.stats.recordCall("decode")
	contract, ok := m.Contract(contractName)
	if !ok {
		m.stats.recordError("decode")
		return "", newErr(KindUnknownType, "no contract registered as %q", contractName)
	}
	text, err := BinToJSON(contract, typeName, bin)
	if err != nil {
		m.stats.recordError("decode")
		m.logger.Errorf("decode %s/%s: %v", contractName, typeName, err)
	}
	return text, err
}
