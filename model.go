package filterdsl

import (
	"fmt"
	"sort"
)

// FieldType is the declared datatype of a model field.
type FieldType string

const (
	// FieldTypeText is the default type for fields without a declared one.
	FieldTypeText FieldType = "text"
	// FieldTypeKeyword marks a non-analyzed string field.
	FieldTypeKeyword FieldType = "keyword"
	// FieldTypeDate marks a date field.
	FieldTypeDate FieldType = "date"
	// FieldTypeInteger marks an integer field.
	FieldTypeInteger FieldType = "integer"
	// FieldTypeBoolean marks a boolean field.
	FieldTypeBoolean FieldType = "boolean"
)

// Exact-match sub-field suffixes. Fields declared in a model are indexed with
// a dedicated "raw" sub-field at provisioning time; undeclared fields fall
// back to the engine's implicit "keyword" sub-field.
const (
	SuffixRaw     = "raw"
	SuffixKeyword = "keyword"
)

// Model describes the filterable/sortable fields of an indexed document type.
// It is an immutable, read-only descriptor: construct it once and share it
// freely across concurrent translate calls. The zero value is an empty
// descriptor with no declared fields.
type Model struct {
	fields map[string]FieldType
}

// NewModel creates a model from a field→type mapping. The map is copied; an
// empty type stands for the default text type.
func NewModel(fields map[string]FieldType) Model {
	if len(fields) == 0 {
		return Model{}
	}
	m := make(map[string]FieldType, len(fields))
	for name, ft := range fields {
		m[name] = ft
	}
	return Model{fields: m}
}

// ParseModel builds a model from the external descriptor shape: a mapping
// from field name to either true (declared, default type) or an object with
// an optional "type" string. A false value drops the field; any other value
// shape fails with ErrInvalidModel.
func ParseModel(raw map[string]any) (Model, error) {
	fields := make(map[string]FieldType, len(raw))
	for name, spec := range raw {
		switch v := spec.(type) {
		case bool:
			if v {
				fields[name] = ""
			}
		case map[string]any:
			ft, err := fieldTypeFromSpec(name, v)
			if err != nil {
				return Model{}, err
			}
			fields[name] = ft
		default:
			return Model{}, fmt.Errorf("%w: field %q must be true or an object, got %T",
				ErrInvalidModel, name, spec)
		}
	}
	return NewModel(fields), nil
}

func fieldTypeFromSpec(name string, spec map[string]any) (FieldType, error) {
	raw, ok := spec["type"]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q type must be a string, got %T",
			ErrInvalidModel, name, raw)
	}
	return FieldType(s), nil
}

// Has reports whether the field is declared in the model's filterable set.
func (m Model) Has(field string) bool {
	_, ok := m.fields[field]
	return ok
}

// Suffix returns the exact-match sub-field suffix for the field: "raw" when
// the field is declared in the model (regardless of its declared type),
// "keyword" otherwise.
func (m Model) Suffix(field string) string {
	if m.Has(field) {
		return SuffixRaw
	}
	return SuffixKeyword
}

// Type returns the field's declared datatype, defaulting to text when the
// field is undeclared or carries no explicit type.
func (m Model) Type(field string) FieldType {
	if ft, ok := m.fields[field]; ok && ft != "" {
		return ft
	}
	return FieldTypeText
}

// Fields returns the declared field names in lexicographic order.
func (m Model) Fields() []string {
	if len(m.fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of declared fields.
func (m Model) Len() int { return len(m.fields) }

// exactField returns the comparison target for term-level operations: the
// exact-match sub-field for text fields, the bare field otherwise. Undeclared
// fields default to text and therefore get a sub-field.
func (m Model) exactField(field string) string {
	if m.Type(field) == FieldTypeText {
		return field + "." + m.Suffix(field)
	}
	return field
}
