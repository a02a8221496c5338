package domain

import "errors"

var (
	// ErrModelNotFound signals a missing model descriptor.
	ErrModelNotFound = errors.New("model not found")
	// ErrInvalidModelName signals a model name outside the allowed shape.
	ErrInvalidModelName = errors.New("invalid model name")
	// ErrRegistryReadOnly signals a write against a read-only model registry.
	ErrRegistryReadOnly = errors.New("model registry is read-only")
)
