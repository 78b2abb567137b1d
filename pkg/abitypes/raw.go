// Package abitypes holds the literal, cross-reference-free records that make
// up an ABI document. The domain scalar codecs (name, symbol, asset, time
// types) live in internal/core/abi, not here.
package abitypes

// RawAbi is the literal schema document as parsed from JSON: a flat list of
// records with no resolved cross-references between them. It is the input
// to the type resolver (internal/core/abi.NewContract) and is itself loaded
// from JSON by the native object codec, not by the generic schema-driven
// engine (there is no Contract yet to drive that engine with).
type RawAbi struct {
	Version          string          `json:"version"`
	Types            []TypeDef       `json:"types"`
	Structs          []StructDef     `json:"structs"`
	Actions          []ActionDef     `json:"actions"`
	Tables           []TableDef      `json:"tables"`
	RicardianClauses []ClausePair    `json:"ricardian_clauses"`
	ErrorMessages    []ErrorMessage  `json:"error_messages"`
	ABIExtensions    []ExtensionPair `json:"abi_extensions"`
}

// DefaultVersion is used when a document omits the version field.
const DefaultVersion = "eosio::abi/1.0"

// TypeDef declares a type alias: NewTypeName becomes another name for Type.
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// Field is a single named, typed struct member, in declaration order.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StructDef declares a struct, optionally inheriting another struct's
// fields via Base (empty string means no base).
type StructDef struct {
	Name   string  `json:"name"`
	Base   string  `json:"base"`
	Fields []Field `json:"fields"`
}

// ActionDef maps an action name to the struct type that encodes its data.
type ActionDef struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract"`
}

// TableDef describes an on-chain table's row type and key layout. It never
// participates in binary codec logic; it is carried as a literal record.
type TableDef struct {
	Name      string   `json:"name"`
	IndexType string   `json:"index_type"`
	KeyNames  []string `json:"key_names"`
	KeyTypes  []string `json:"key_types"`
	Type      string   `json:"type"`
}

// ClausePair is a named Ricardian contract clause body.
type ClausePair struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// ErrorMessage maps a numeric error code to a human-readable message.
type ErrorMessage struct {
	ErrorCode uint64 `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// ExtensionPair is one (tag, payload) entry of abi_extensions. Data is
// carried as a hex string in JSON and raw bytes once loaded.
type ExtensionPair struct {
	Type uint16 `json:"-"`
	Data []byte `json:"-"`
}
