package filterdsl

// SearchRequest gathers the translatable parts of one search call.
type SearchRequest struct {
	// Filters is the raw Mongo-style filter expression. Nil skips the query
	// clause entirely; any other non-object value fails with ErrInvalidFilters.
	Filters any
	// Sort lists result ordering fields, applied in order.
	Sort []SortField
	// Aggregations lists terms aggregations to attach to the body.
	Aggregations []Aggregation
}

// BuildSearchBody assembles a search request body from the request's filters,
// sort, and aggregations against one model. Absent parts are omitted from the
// body. Pagination parameters, transport, and authentication stay with the
// caller; the returned document embeds verbatim into a search, count, or
// *-by-query request.
func BuildSearchBody(model Model, req SearchRequest) (map[string]any, error) {
	body := make(map[string]any)

	if req.Filters != nil {
		q, err := Translate(model, req.Filters)
		if err != nil {
			return nil, err
		}
		body["query"] = q["query"]
	}

	sorts, err := TranslateSort(model, req.Sort)
	if err != nil {
		return nil, err
	}
	if len(sorts) > 0 {
		body["sort"] = sorts
	}

	aggs, err := TranslateAggs(model, req.Aggregations)
	if err != nil {
		return nil, err
	}
	if len(aggs) > 0 {
		body["aggs"] = aggs
	}

	return body, nil
}
