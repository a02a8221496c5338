// Package filterdsl translates compact, Mongo-style filter expressions into
// search-engine Query DSL documents (bool/term/terms/range clauses).
//
// A filter expression is a plain JSON object. Bare keys are equality
// shorthand; keys prefixed with $ name one of the eight operators
// (eq, ne, in, nin, gt, gte, lt, lte):
//
//	model := filterdsl.NewModel(map[string]filterdsl.FieldType{
//	    "status":  "",
//	    "created": filterdsl.FieldTypeDate,
//	})
//
//	doc, _ := filterdsl.Translate(model, map[string]any{
//	    "status": "active",
//	    "$in":    map[string]any{"country": []any{"DE", "FR"}},
//	    "$gte":   map[string]any{"created": "2026-01-01"},
//	})
//	// {"query": {"bool": {"must": [
//	//   {"term": {"status.raw": "active"}},
//	//   {"terms": {"country": ["de", "fr"]}},
//	//   {"range": {"created": {"gte": "2026-01-01"}}}]}}}
//
// Equality comparisons target a per-field exact-match sub-field: fields
// declared in the model use the raw sub-field created at provisioning time,
// undeclared fields fall back to the engine's implicit keyword sub-field.
//
// BuildSearchBody composes the query with sort and terms-aggregation clauses
// into a complete request body:
//
//	body, _ := filterdsl.BuildSearchBody(model, filterdsl.SearchRequest{
//	    Filters: map[string]any{"status": "active"},
//	    Sort:    []filterdsl.SortField{{Field: "created", Order: filterdsl.SortDesc}},
//	})
//
// Translation is pure: no I/O, no logging, no shared state. The same model
// and expression always marshal to byte-identical JSON.
package filterdsl
