// Package abi is the public façade over the internal ABI codec engine: a
// small, stable surface for loading an ABI document and converting values
// between its JSON and binary representations.
package abi

import (
	internal "github.com/ledgerabi/abicodec/internal/core/abi"
	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

// Contract is a resolved ABI schema, ready to drive JSONToBin/BinToJSON.
type Contract = internal.Contract

// Logger is the ambient logging seam a Manager reports through.
type Logger = internal.Logger

// ManagerConfig tunes a Manager's contract cache.
type ManagerConfig = internal.ManagerConfig

// Manager is a cache of loaded contracts keyed by caller-chosen name, with
// call/error statistics and structured logging.
type Manager = internal.Manager

// NoopLogger returns a Logger that discards everything.
func NoopLogger() Logger { return internal.NoopLogger() }

// DefaultManagerConfig returns the configuration a Manager uses when none
// is supplied to NewManager.
func DefaultManagerConfig() *ManagerConfig { return internal.DefaultManagerConfig() }

// NewManager builds a Manager; config and logger may be nil to take their
// defaults.
func NewManager(config *ManagerConfig, logger Logger) *Manager {
	return internal.NewManager(config, logger)
}

// Load parses and resolves an ABI JSON document into a Contract.
func Load(jsonText []byte) (*Contract, error) {
	return internal.LoadABI(jsonText)
}

// Dump renders contract back to its native ABI JSON form.
func Dump(contract *Contract) string {
	return internal.DumpABI(contract)
}

// JSONToBin encodes json under typeName using contract's resolved schema.
func JSONToBin(contract *Contract, typeName string, json []byte) ([]byte, error) {
	return internal.JSONToBin(contract, typeName, json)
}

// BinToJSON decodes bin under typeName using contract's resolved schema.
func BinToJSON(contract *Contract, typeName string, bin []byte) (string, error) {
	return internal.BinToJSON(contract, typeName, bin)
}

// ActionType returns the struct type name declared for action, and
// whether it was found.
func ActionType(contract *Contract, action string) (string, bool) {
	return contract.ActionType(action)
}

// StringToName converts a name-typed string (e.g. "eosio.token") to its
// packed uint64 wire value.
func StringToName(s string) (uint64, error) {
	return internal.StringToName(s)
}

// NameToString is the inverse of StringToName.
func NameToString(value uint64) string {
	return internal.NameToString(value)
}

// ValidationIssue is one finding from Validate.
type ValidationIssue = internal.ValidationIssue

// Severity classifies a ValidationIssue.
type Severity = internal.Severity

// SeverityError and SeverityWarning are the two Severity levels Validate
// reports.
const (
	SeverityError   = internal.SeverityError
	SeverityWarning = internal.SeverityWarning
)

// Validate checks a raw ABI document for structural problems (duplicate
// names, dangling references, malformed records) beyond what Load's
// resolver already enforces by failing outright. It does not require a
// resolved Contract, so it can run on a document before or after loading.
func Validate(raw *RawAbi) []ValidationIssue {
	return internal.Validate(raw)
}

// LoadRaw parses an ABI JSON document into its literal record form without
// resolving type references, so Validate can inspect it even when it has
// problems Load would reject outright.
func LoadRaw(jsonText []byte) (*RawAbi, error) {
	return internal.LoadRawAbi(jsonText)
}

// RawAbi re-exports the literal ABI record type for callers that want to
// inspect a loaded document (tables, ricardian clauses, error messages)
// beyond what the codec engine itself touches.
type RawAbi = abitypes.RawAbi
