package researcher

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every error about a config key or helper
// that a language does not provide.
var ErrUnsupported = errors.New("unsupported for this language")

// ErrUnknownLanguage is returned when no researcher exists for a tag.
var ErrUnknownLanguage = errors.New("unknown language")

// UnsupportedError names the missing capability.
type UnsupportedError struct {
	Language string
	Kind     string // "config" or "helper"
	Name     string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s %q is not supported for language %q", e.Kind, e.Name, e.Language)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ConstructionError reports a researcher that could not be built, usually
// because its language table is missing or corrupt.
type ConstructionError struct {
	Language string
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct researcher %q: %v", e.Language, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
