package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateModelName_Valid(t *testing.T) {
	names := []string{"customers", "order_items", "logs-2026", "v2.products", "a"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if err := ValidateModelName(name); err != nil {
				t.Errorf("unexpected error for %q: %v", name, err)
			}
		})
	}
}

func TestValidateModelName_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"upper case", "Customers"},
		{"leading digit", "2fast"},
		{"leading separator", "_private"},
		{"spaces", "order items"},
		{"slash", "a/b"},
		{"too long", strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelName(tt.input)
			if !errors.Is(err, ErrInvalidModelName) {
				t.Fatalf("expected ErrInvalidModelName, got %v", err)
			}
		})
	}
}
