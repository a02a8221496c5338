package sdk

import (
	"context"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
)

// --- registryUseCase mock ---

type mockRegistryUC struct {
	getFn    func(ctx context.Context, name string) (filterdsl.Model, error)
	listFn   func(ctx context.Context) ([]domain.NamedModel, error)
	putFn    func(ctx context.Context, name string, fields map[string]any) (filterdsl.Model, error)
	deleteFn func(ctx context.Context, name string) error
}

func (m *mockRegistryUC) Get(ctx context.Context, name string) (filterdsl.Model, error) {
	return m.getFn(ctx, name)
}

func (m *mockRegistryUC) List(ctx context.Context) ([]domain.NamedModel, error) {
	return m.listFn(ctx)
}

func (m *mockRegistryUC) Put(
	ctx context.Context, name string, fields map[string]any,
) (filterdsl.Model, error) {
	return m.putFn(ctx, name, fields)
}

func (m *mockRegistryUC) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

// --- translateUseCase mock ---

type mockTranslateUC struct {
	translateFn func(ctx context.Context, model string, req filterdsl.SearchRequest) (map[string]any, error)
}

func (m *mockTranslateUC) Translate(
	ctx context.Context, model string, req filterdsl.SearchRequest,
) (map[string]any, error) {
	return m.translateFn(ctx, model, req)
}
