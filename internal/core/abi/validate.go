package abi

import (
	"fmt"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

// Severity classifies a ValidationIssue. Only Error severities mean a
// contract is unusable; Warning severities flag something odd but
// load-able.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationIssue is one finding from Validate. Location is a short
// human-readable pointer into the raw ABI document, not a C8 codec path.
type ValidationIssue struct {
	Rule     string
	Severity Severity
	Location string
	Message  string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", i.Severity, i.Rule, i.Location, i.Message)
}

// Validate checks a raw ABI document for structural problems beyond what
// NewContract's resolver already enforces (duplicate names, undeclared
// base structs and action/table types, empty required names). It does
// not require the document to have been resolved into a Contract, so it
// can be run on a RawAbi a caller is about to load, or on one already
// loaded via contract.Raw.
//
// Unlike the resolver, Validate collects every issue it finds rather than
// failing fast on the first one, so a caller can report them all at once.
func Validate(raw *abitypes.RawAbi) []ValidationIssue {
	var issues []ValidationIssue

	if raw.Version == "" {
		issues = append(issues, ValidationIssue{
			Rule: "version_required", Severity: SeverityWarning,
			Location: "version", Message: "ABI document has no version field",
		})
	}

	structNames := map[string]bool{}
	for i, s := range raw.Structs {
		loc := fmt.Sprintf("structs[%d]", i)
		if s.Name == "" {
			issues = append(issues, ValidationIssue{
				Rule: "struct_name_required", Severity: SeverityError,
				Location: loc, Message: "struct has no name",
			})
			continue
		}
		if structNames[s.Name] {
			issues = append(issues, ValidationIssue{
				Rule: "duplicate_struct_name", Severity: SeverityError,
				Location: loc, Message: "duplicate struct name " + s.Name,
			})
		}
		structNames[s.Name] = true

		fieldNames := map[string]bool{}
		for j, f := range s.Fields {
			floc := fmt.Sprintf("%s.fields[%d]", loc, j)
			if f.Name == "" {
				issues = append(issues, ValidationIssue{
					Rule: "field_name_required", Severity: SeverityError,
					Location: floc, Message: "field has no name",
				})
				continue
			}
			if fieldNames[f.Name] {
				issues = append(issues, ValidationIssue{
					Rule: "duplicate_field_name", Severity: SeverityError,
					Location: floc, Message: "duplicate field name " + f.Name,
				})
			}
			fieldNames[f.Name] = true
			if f.Type == "" {
				issues = append(issues, ValidationIssue{
					Rule: "field_type_required", Severity: SeverityError,
					Location: floc, Message: "field " + f.Name + " has no type",
				})
			}
		}
	}

	for i, s := range raw.Structs {
		if s.Base == "" {
			continue
		}
		if !structNames[s.Base] {
			issues = append(issues, ValidationIssue{
				Rule: "unknown_base", Severity: SeverityError,
				Location: fmt.Sprintf("structs[%d]", i),
				Message:  "struct " + s.Name + " has unknown base " + s.Base,
			})
		}
		if s.Base == s.Name {
			issues = append(issues, ValidationIssue{
				Rule: "self_base", Severity: SeverityError,
				Location: fmt.Sprintf("structs[%d]", i),
				Message:  "struct " + s.Name + " uses itself as base",
			})
		}
	}

	typeNames := map[string]bool{}
	for i, t := range raw.Types {
		loc := fmt.Sprintf("types[%d]", i)
		if t.NewTypeName == "" {
			issues = append(issues, ValidationIssue{
				Rule: "alias_name_required", Severity: SeverityError,
				Location: loc, Message: "type alias has no new_type_name",
			})
			continue
		}
		if typeNames[t.NewTypeName] || structNames[t.NewTypeName] {
			issues = append(issues, ValidationIssue{
				Rule: "duplicate_type_name", Severity: SeverityError,
				Location: loc, Message: "duplicate type name " + t.NewTypeName,
			})
		}
		typeNames[t.NewTypeName] = true
		if t.Type == "" {
			issues = append(issues, ValidationIssue{
				Rule: "alias_target_required", Severity: SeverityError,
				Location: loc, Message: "type alias " + t.NewTypeName + " has no target type",
			})
		}
		if t.NewTypeName == t.Type {
			issues = append(issues, ValidationIssue{
				Rule: "self_alias", Severity: SeverityError,
				Location: loc, Message: "type alias " + t.NewTypeName + " aliases itself",
			})
		}
	}

	knownTypeName := func(name string) bool { return structNames[name] || typeNames[name] || isPrimitiveName(name) }

	actionNames := map[string]bool{}
	for i, a := range raw.Actions {
		loc := fmt.Sprintf("actions[%d]", i)
		if a.Name == "" {
			issues = append(issues, ValidationIssue{
				Rule: "action_name_required", Severity: SeverityError,
				Location: loc, Message: "action has no name",
			})
			continue
		}
		if actionNames[a.Name] {
			issues = append(issues, ValidationIssue{
				Rule: "duplicate_action_name", Severity: SeverityError,
				Location: loc, Message: "duplicate action name " + a.Name,
			})
		}
		actionNames[a.Name] = true
		if a.Type != "" && !knownTypeName(a.Type) {
			issues = append(issues, ValidationIssue{
				Rule: "unknown_action_type", Severity: SeverityWarning,
				Location: loc, Message: "action " + a.Name + " references undeclared type " + a.Type,
			})
		}
	}

	tableNames := map[string]bool{}
	for i, t := range raw.Tables {
		loc := fmt.Sprintf("tables[%d]", i)
		if t.Name == "" {
			issues = append(issues, ValidationIssue{
				Rule: "table_name_required", Severity: SeverityError,
				Location: loc, Message: "table has no name",
			})
			continue
		}
		if tableNames[t.Name] {
			issues = append(issues, ValidationIssue{
				Rule: "duplicate_table_name", Severity: SeverityError,
				Location: loc, Message: "duplicate table name " + t.Name,
			})
		}
		tableNames[t.Name] = true
		if t.Type != "" && !knownTypeName(t.Type) {
			issues = append(issues, ValidationIssue{
				Rule: "unknown_table_type", Severity: SeverityWarning,
				Location: loc, Message: "table " + t.Name + " references undeclared type " + t.Type,
			})
		}
		if len(t.KeyNames) != len(t.KeyTypes) {
			issues = append(issues, ValidationIssue{
				Rule: "key_length_mismatch", Severity: SeverityError,
				Location: loc, Message: "table " + t.Name + " has mismatched key_names/key_types lengths",
			})
		}
	}

	errorCodes := map[uint64]bool{}
	for i, e := range raw.ErrorMessages {
		if errorCodes[e.ErrorCode] {
			issues = append(issues, ValidationIssue{
				Rule: "duplicate_error_code", Severity: SeverityWarning,
				Location: fmt.Sprintf("error_messages[%d]", i),
				Message:  fmt.Sprintf("duplicate error_code %d", e.ErrorCode),
			})
		}
		errorCodes[e.ErrorCode] = true
	}

	return issues
}

// isPrimitiveName reports whether name is one of C1's built-in primitive
// type names, without requiring a Contract to check against.
func isPrimitiveName(name string) bool {
	_, ok := primitives[name]
	return ok
}
