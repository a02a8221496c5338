package domain

import (
	"fmt"
	"regexp"

	"github.com/searchbeam/filterdsl"
)

// NamedModel pairs a registry name with its field descriptor.
type NamedModel struct {
	Name  string
	Model filterdsl.Model
}

var modelNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// ValidateModelName checks a registry model name: lower-case alphanumeric
// with underscore, dot, and hyphen separators, starting with a letter,
// at most 64 characters.
func ValidateModelName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidModelName)
	}
	if len(name) > 64 {
		return fmt.Errorf("%w: name too long (max 64)", ErrInvalidModelName)
	}
	if !modelNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q must be lower-case alphanumeric with ._- separators", ErrInvalidModelName, name)
	}
	return nil
}
