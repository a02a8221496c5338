package translate

import (
	"context"

	"github.com/searchbeam/filterdsl"
)

// ModelSource resolves model descriptors for translation.
type ModelSource interface {
	Get(ctx context.Context, name string) (filterdsl.Model, error)
}
