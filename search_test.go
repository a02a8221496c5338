package filterdsl

import (
	"errors"
	"testing"
)

func TestBuildSearchBody(t *testing.T) {
	model := NewModel(map[string]FieldType{
		"status":  "",
		"created": FieldTypeDate,
	})

	body, err := BuildSearchBody(model, SearchRequest{
		Filters: map[string]any{
			"status": "active",
			"$gte":   map[string]any{"created": "2026-01-01"},
		},
		Sort:         []SortField{{Field: "created", Order: SortDesc}},
		Aggregations: []Aggregation{{Name: "statuses", Field: "status", Size: 10}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"aggs":{"statuses":{"terms":{"field":"status.raw","size":10}}},` +
		`"query":{"bool":{"must":[{"term":{"status.raw":"active"}},` +
		`{"range":{"created":{"gte":"2026-01-01"}}}]}},` +
		`"sort":[{"created":{"order":"desc"}}]}`
	if got := mustJSON(t, body); got != want {
		t.Errorf("body mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestBuildSearchBody_NoFilters(t *testing.T) {
	body, err := BuildSearchBody(NewModel(nil), SearchRequest{
		Sort: []SortField{{Field: "name"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := body["query"]; ok {
		t.Error("nil filters must not produce a query clause")
	}
	if _, ok := body["sort"]; !ok {
		t.Error("expected sort clause")
	}
}

func TestBuildSearchBody_Empty(t *testing.T) {
	body, err := BuildSearchBody(NewModel(nil), SearchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("expected empty body, got %v", body)
	}
}

func TestBuildSearchBody_ErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want error
	}{
		{"bad filters", SearchRequest{Filters: "nope"}, ErrInvalidFilters},
		{"bad operator", SearchRequest{Filters: map[string]any{"$like": map[string]any{"a": "b"}}}, ErrInvalidFilterOperator},
		{"bad sort", SearchRequest{Sort: []SortField{{Field: "id", Order: "up"}}}, ErrInvalidSort},
		{"bad agg", SearchRequest{Aggregations: []Aggregation{{Name: "x"}}}, ErrInvalidAgg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSearchBody(NewModel(nil), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
