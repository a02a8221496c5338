package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/searchbeam/filterdsl"
)

// ModelInfo pairs a registry name with its field descriptor.
type ModelInfo struct {
	Name  string
	Model filterdsl.Model
}

// ModelService manages model descriptors in the registry.
type ModelService struct {
	svc registryUseCase
	obs *observer
}

// Put validates and stores a model descriptor. An existing descriptor with
// the same name is replaced.
func (s *ModelService) Put(
	ctx context.Context, name string, m filterdsl.Model,
) (_ filterdsl.Model, err error) {
	start := time.Now()
	defer func() { s.obs.observe("model.put", start, err) }()

	stored, err := s.svc.Put(ctx, name, modelFields(m))
	if err != nil {
		return filterdsl.Model{}, fmt.Errorf("put model: %w", err)
	}
	return stored, nil
}

// Get retrieves a model descriptor by name.
func (s *ModelService) Get(
	ctx context.Context, name string,
) (_ filterdsl.Model, err error) {
	start := time.Now()
	defer func() { s.obs.observe("model.get", start, err) }()

	m, err := s.svc.Get(ctx, name)
	if err != nil {
		return filterdsl.Model{}, fmt.Errorf("get model: %w", err)
	}
	return m, nil
}

// List returns all registered models sorted by name.
func (s *ModelService) List(ctx context.Context) (_ []ModelInfo, err error) {
	start := time.Now()
	defer func() { s.obs.observe("model.list", start, err) }()

	models, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	out := make([]ModelInfo, len(models))
	for i, m := range models {
		out[i] = ModelInfo{Name: m.Name, Model: m.Model}
	}
	return out, nil
}

// Delete removes a model descriptor.
func (s *ModelService) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("model.delete", start, err) }()

	if err = s.svc.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// modelFields converts a descriptor to the wire form the registry accepts.
func modelFields(m filterdsl.Model) map[string]any {
	out := make(map[string]any, m.Len())
	for _, f := range m.Fields() {
		out[f] = map[string]any{"type": string(m.Type(f))}
	}
	return out
}
