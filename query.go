package filterdsl

import (
	"fmt"
	"reflect"
	"strings"
)

// Bool clause sections of the query document.
const (
	sectionMust    = "must"
	sectionMustNot = "must_not"
)

// queryBuilder accumulates clauses for a single Translate call. It owns its
// document exclusively until finalize hands the finished tree to the caller;
// nothing is shared across calls.
type queryBuilder struct {
	model Model
	doc   map[string]any
}

// clauseFunc appends one operator's clause for a field/value pair.
type clauseFunc func(b *queryBuilder, field string, value any) error

// clauseBuilders dispatches by operator. Unknown tokens are rejected before
// dispatch, so lookups here never miss.
var clauseBuilders = map[Operator]clauseFunc{
	OpEq:  func(b *queryBuilder, f string, v any) error { return b.term(sectionMust, f, v) },
	OpNe:  func(b *queryBuilder, f string, v any) error { return b.term(sectionMustNot, f, v) },
	OpIn:  func(b *queryBuilder, f string, v any) error { return b.terms(sectionMust, OpIn, f, v) },
	OpNin: func(b *queryBuilder, f string, v any) error { return b.terms(sectionMustNot, OpNin, f, v) },
	OpGt:  rangeClause(OpGt),
	OpGte: rangeClause(OpGte),
	OpLt:  rangeClause(OpLt),
	OpLte: rangeClause(OpLte),
}

// Translate converts a Mongo-style filter expression into a query document
// shaped {"query": {...}}, ready to embed verbatim into a search request
// body. The expression must be a decoded JSON object (map[string]any); nil,
// primitive, and array inputs fail with ErrInvalidFilters. The call either
// fully succeeds or returns nil with the error, and equal inputs always
// produce the same document.
func Translate(model Model, filters any) (map[string]any, error) {
	raw, err := filterObject(filters)
	if err != nil {
		return nil, err
	}
	fm, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	if tok, found := fm.unknownOperator(); found {
		return nil, NewUnknownOperator(string(tok))
	}

	b := &queryBuilder{model: model, doc: make(map[string]any)}
	for _, op := range operatorOrder {
		build := clauseBuilders[op]
		for _, field := range fm.sortedFields(op) {
			if err := build(b, field, fm[op][field]); err != nil {
				return nil, err
			}
		}
	}
	return b.finalize(), nil
}

// filterObject validates the raw expression shape.
func filterObject(filters any) (map[string]any, error) {
	if filters == nil {
		return nil, fmt.Errorf("%w: expression is missing", ErrInvalidFilters)
	}
	raw, ok := filters.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expression must be an object, got %T", ErrInvalidFilters, filters)
	}
	return raw, nil
}

// term appends {term: {"<field>.<suffix>": value}} to the given bool section.
// Declared fields target their raw sub-field, undeclared ones the implicit
// keyword sub-field; the value passes through verbatim.
func (b *queryBuilder) term(section, field string, value any) error {
	target := field + "." + b.model.Suffix(field)
	b.push(section, map[string]any{"term": map[string]any{target: value}})
	return nil
}

// terms appends {terms: {"<field>": [...]}} to the given bool section. Terms
// queries target the field itself, never a sub-field.
func (b *queryBuilder) terms(section string, op Operator, field string, value any) error {
	elems, ok := sequenceOf(value)
	if !ok {
		return fmt.Errorf("%w: %s%s on field %q requires an array value, got %T",
			ErrInvalidFilters, Marker, op, field, value)
	}
	b.push(section, map[string]any{"terms": map[string]any{field: elems}})
	return nil
}

// rangeClause merges the operator bound into the per-field range object.
// Repeated range operators on one field accumulate; the range node and the
// per-field maps are created lazily.
func rangeClause(op Operator) clauseFunc {
	return func(b *queryBuilder, field string, value any) error {
		ranges, _ := b.doc["range"].(map[string]any)
		if ranges == nil {
			ranges = make(map[string]any)
			b.doc["range"] = ranges
		}
		bounds, _ := ranges[field].(map[string]any)
		if bounds == nil {
			bounds = make(map[string]any)
			ranges[field] = bounds
		}
		bounds[string(op)] = value
		return nil
	}
}

// push appends a clause to bool.<section>, creating the bool node and the
// section array on first use.
func (b *queryBuilder) push(section string, clause map[string]any) {
	boolNode, _ := b.doc["bool"].(map[string]any)
	if boolNode == nil {
		boolNode = make(map[string]any)
		b.doc["bool"] = boolNode
	}
	clauses, _ := boolNode[section].([]any)
	boolNode[section] = append(clauses, clause)
}

// finalize resolves the bool/range sibling conflict and wraps the document.
// The target query language rejects bool and range as sibling roots, so when
// both were produced the range folds into bool.must as one nested clause.
func (b *queryBuilder) finalize() map[string]any {
	ranges, hasRange := b.doc["range"].(map[string]any)
	_, hasBool := b.doc["bool"]
	if hasRange && hasBool {
		b.push(sectionMust, map[string]any{"range": ranges})
		delete(b.doc, "range")
	}
	return map[string]any{"query": b.doc}
}

// sequenceOf converts any slice or array value into []any, lower-casing
// string elements. Terms tokens are matched case-insensitively by the target
// engine, so string elements normalize to lower case; non-string elements
// pass through untouched.
func sequenceOf(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if s, ok := el.(string); ok {
			el = strings.ToLower(s)
		}
		out[i] = el
	}
	return out, true
}
