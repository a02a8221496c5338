package filterdsl

import "fmt"

// SortOrder is the direction of one sort field.
type SortOrder string

const (
	// SortAsc orders results ascending.
	SortAsc SortOrder = "asc"
	// SortDesc orders results descending.
	SortDesc SortOrder = "desc"
)

// IsValid reports whether o is a recognized sort order.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// SortField names a field and direction for result ordering.
type SortField struct {
	Field string
	Order SortOrder // defaults to SortAsc when empty
}

// TranslateSort converts sort fields into the engine's sort clause list,
// preserving caller order. Text-typed fields (declared text or undeclared)
// sort on their exact-match sub-field with the same raw/keyword suffix rule
// as equality clauses; other declared types sort on the bare field. An empty
// field name or an unrecognized order fails with ErrInvalidSort.
func TranslateSort(model Model, fields []SortField) ([]map[string]any, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]map[string]any, 0, len(fields))
	for _, sf := range fields {
		if sf.Field == "" {
			return nil, fmt.Errorf("%w: field name is required", ErrInvalidSort)
		}
		order := sf.Order
		if order == "" {
			order = SortAsc
		}
		if !order.IsValid() {
			return nil, fmt.Errorf("%w: order %q for field %q", ErrInvalidSort, sf.Order, sf.Field)
		}
		out = append(out, map[string]any{
			model.exactField(sf.Field): map[string]any{"order": string(order)},
		})
	}
	return out, nil
}
