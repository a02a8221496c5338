package sdk

import "github.com/searchbeam/filterdsl/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check. Translation errors (invalid filters, unknown
// operators) are exported by the filterdsl package itself.
var (
	ErrModelNotFound    = domain.ErrModelNotFound
	ErrInvalidModelName = domain.ErrInvalidModelName
	ErrRegistryReadOnly = domain.ErrRegistryReadOnly
)
