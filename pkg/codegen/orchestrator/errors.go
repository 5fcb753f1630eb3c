package orchestrator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDependencyKind is returned for a dependency kind with no synthesis rule
	ErrUnknownDependencyKind = errors.New("unknown dependency kind")

	// ErrGenerationFailed is returned when a generator fails for a declaration
	ErrGenerationFailed = errors.New("plugin generation failed")

	// ErrUndeclaredFile is returned when a generator creates a path missing
	// from its GetConfigFiles
	ErrUndeclaredFile = errors.New("undeclared generated file")
)

// NewGenerationFailedError wraps a generator failure with the generator and declaration
func NewGenerationFailedError(generator, declaration string, cause error) error {
	return fmt.Errorf("%w: %s for %s: %w", ErrGenerationFailed, generator, declaration, cause)
}
