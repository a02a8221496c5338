package model

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
)

// staticFile is the on-disk shape of a models file.
type staticFile struct {
	Models map[string]map[string]any `yaml:"models"`
}

// Static is a read-only model registry loaded from a YAML file.
type Static struct {
	models map[string]filterdsl.Model
}

// LoadStatic reads and validates a models file.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read models file: %w", err)
	}

	var f staticFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse models file: %w", err)
	}

	models := make(map[string]filterdsl.Model, len(f.Models))
	for name, raw := range f.Models {
		if err := domain.ValidateModelName(name); err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		m, err := filterdsl.ParseModel(raw)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		models[name] = m
	}

	return &Static{models: models}, nil
}

// Get retrieves a model descriptor by name.
func (s *Static) Get(_ context.Context, name string) (filterdsl.Model, error) {
	m, ok := s.models[name]
	if !ok {
		return filterdsl.Model{}, domain.ErrModelNotFound
	}
	return m, nil
}

// List returns all model descriptors sorted by name.
func (s *Static) List(_ context.Context) ([]domain.NamedModel, error) {
	models := make([]domain.NamedModel, 0, len(s.models))
	for name, m := range s.models {
		models = append(models, domain.NamedModel{Name: name, Model: m})
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models, nil
}

// Put always fails: the static registry is read-only.
func (s *Static) Put(context.Context, string, filterdsl.Model) error {
	return domain.ErrRegistryReadOnly
}

// Delete always fails: the static registry is read-only.
func (s *Static) Delete(context.Context, string) error {
	return domain.ErrRegistryReadOnly
}
