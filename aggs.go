package filterdsl

import "fmt"

// Aggregation describes a terms aggregation over one field.
type Aggregation struct {
	Name  string
	Field string
	Size  int // bucket count; engine default applies when <= 0
}

// TranslateAggs converts aggregations into the engine's aggs map, keyed by
// aggregation name. Text-typed fields aggregate on their exact-match
// sub-field (analyzed text cannot back a terms aggregation); other declared
// types aggregate on the bare field. Missing names or fields and duplicate
// names fail with ErrInvalidAgg.
func TranslateAggs(model Model, aggs []Aggregation) (map[string]any, error) {
	if len(aggs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(aggs))
	for _, agg := range aggs {
		if agg.Name == "" || agg.Field == "" {
			return nil, fmt.Errorf("%w: name and field are required", ErrInvalidAgg)
		}
		if _, dup := out[agg.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidAgg, agg.Name)
		}
		terms := map[string]any{"field": model.exactField(agg.Field)}
		if agg.Size > 0 {
			terms["size"] = agg.Size
		}
		out[agg.Name] = map[string]any{"terms": terms}
	}
	return out, nil
}
