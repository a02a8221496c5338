package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
	"github.com/searchbeam/filterdsl/internal/metrics"
)

// Service translates filter expressions into search engine query bodies.
type Service struct {
	models ModelSource
}

// New creates a translate service.
func New(models ModelSource) *Service {
	return &Service{models: models}
}

// Translate resolves the named model and builds the search body for req.
func (s *Service) Translate(ctx context.Context, modelName string, req filterdsl.SearchRequest) (map[string]any, error) {
	start := time.Now()
	defer func() {
		metrics.TranslationDuration.WithLabelValues(modelName).Observe(time.Since(start).Seconds())
	}()

	m, err := s.models.Get(ctx, modelName)
	if err != nil {
		status := "error"
		if errors.Is(err, domain.ErrModelNotFound) {
			status = "not_found"
		}
		metrics.TranslationsTotal.WithLabelValues(modelName, status).Inc()
		return nil, fmt.Errorf("get model: %w", err)
	}

	body, err := filterdsl.BuildSearchBody(m, req)
	if err != nil {
		metrics.TranslationsTotal.WithLabelValues(modelName, "invalid").Inc()
		return nil, fmt.Errorf("build search body: %w", err)
	}

	metrics.TranslationsTotal.WithLabelValues(modelName, "ok").Inc()
	return body, nil
}
