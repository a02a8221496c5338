package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/searchbeam/filterdsl"
)

// QueryService translates search requests against one model.
type QueryService struct {
	model string
	svc   translateUseCase
	obs   *observer
}

// Build translates a full search request (filters, sort, aggregations) into
// the engine query body.
func (s *QueryService) Build(
	ctx context.Context, req filterdsl.SearchRequest,
) (_ map[string]any, err error) {
	start := time.Now()
	defer func() { s.obs.observe("query.build", start, err) }()

	body, err := s.svc.Translate(ctx, s.model, req)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return body, nil
}

// Filters is shorthand for Build with only a filter expression.
func (s *QueryService) Filters(ctx context.Context, filters any) (map[string]any, error) {
	return s.Build(ctx, filterdsl.SearchRequest{Filters: filters})
}
