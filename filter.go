package filterdsl

import (
	"fmt"
	"sort"
)

// filterMap is the normalized form of a raw filter expression: operator →
// field → value. Operator tokens are stored as supplied; validity is checked
// at dispatch so unknown operators fail in exactly one place.
type filterMap map[Operator]map[string]any

// normalize flattens a raw filter expression. Bare keys are rewritten to the
// equality operator with the key as field name; marker keys contribute their
// payload to the named operator. Entries sharing an operator merge into one
// field→value map with later entries overwriting earlier ones per field; raw
// keys are processed in lexicographic order so the overwrite winner does not
// depend on map iteration.
func normalize(raw map[string]any) (filterMap, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fm := make(filterMap)
	for _, key := range keys {
		op, field, isOp := splitKey(key)
		if !isOp {
			fm.set(OpEq, field, raw[key])
			continue
		}
		payload, ok := raw[key].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: operator %s%s requires an object value, got %T",
				ErrInvalidFilters, Marker, op, raw[key])
		}
		for f, v := range payload {
			fm.set(op, f, v)
		}
	}
	return fm, nil
}

func (fm filterMap) set(op Operator, field string, value any) {
	fields := fm[op]
	if fields == nil {
		fields = make(map[string]any)
		fm[op] = fields
	}
	fields[field] = value
}

// unknownOperator returns the lexicographically first stored operator token
// outside the recognized set, if any.
func (fm filterMap) unknownOperator() (Operator, bool) {
	var unknown []Operator
	for op := range fm {
		if !op.IsValid() {
			unknown = append(unknown, op)
		}
	}
	if len(unknown) == 0 {
		return "", false
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return unknown[0], true
}

// sortedFields returns the operator's field names in lexicographic order for
// deterministic clause emission.
func (fm filterMap) sortedFields(op Operator) []string {
	fields := fm[op]
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
