package registry

import (
	"context"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
)

// Repository defines the storage contract for model descriptors.
type Repository interface {
	Get(ctx context.Context, name string) (filterdsl.Model, error)
	List(ctx context.Context) ([]domain.NamedModel, error)
	Put(ctx context.Context, name string, m filterdsl.Model) error
	Delete(ctx context.Context, name string) error
}
