package model

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/db"
	"github.com/searchbeam/filterdsl/internal/domain"
)

// DefaultKeyPrefix namespaces registry keys when no prefix is configured.
const DefaultKeyPrefix = "filterdsl:"

// store is the consumer interface for model descriptors (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/registry.Repository on a key-value store.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a model repository. Descriptors live under {keyPrefix}model:{name}.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// Get retrieves a model descriptor by name.
func (r *Repo) Get(ctx context.Context, name string) (filterdsl.Model, error) {
	data, err := r.store.Get(ctx, r.key(name))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return filterdsl.Model{}, domain.ErrModelNotFound
		}
		return filterdsl.Model{}, fmt.Errorf("get model %s: %w", name, err)
	}
	return modelFromJSON(data)
}

// List returns all model descriptors sorted by name.
func (r *Repo) List(ctx context.Context) ([]domain.NamedModel, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan models: %w", err)
	}
	if len(keys) == 0 {
		return []domain.NamedModel{}, nil
	}

	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget models: %w", err)
	}

	models := make([]domain.NamedModel, 0, len(values))
	for i, data := range values {
		if data == nil {
			continue // key expired between SCAN and MGET
		}
		m, err := modelFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse model %s: %w", keys[i], err)
		}
		models = append(models, domain.NamedModel{Name: r.name(keys[i]), Model: m})
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})

	return models, nil
}

// Put stores a model descriptor, replacing any existing one.
func (r *Repo) Put(ctx context.Context, name string, m filterdsl.Model) error {
	data, err := modelToJSON(m)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key(name), data); err != nil {
		return fmt.Errorf("set model %s: %w", name, err)
	}
	return nil
}

// Delete removes a model descriptor by name.
func (r *Repo) Delete(ctx context.Context, name string) error {
	if _, err := r.store.Get(ctx, r.key(name)); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrModelNotFound
		}
		return fmt.Errorf("get model %s: %w", name, err)
	}
	if err := r.store.Del(ctx, r.key(name)); err != nil {
		return fmt.Errorf("del model %s: %w", name, err)
	}
	return nil
}

// Redis key pattern: {prefix}model:{name}

func (r *Repo) key(name string) string {
	return fmt.Sprintf("%smodel:%s", r.keyPrefix, name)
}

func (r *Repo) name(key string) string {
	return strings.TrimPrefix(key, r.key(""))
}
