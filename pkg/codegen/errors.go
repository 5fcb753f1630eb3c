package codegen

import (
	"errors"
	"fmt"
)

var (
	// ErrOutputWriteFailed is returned when a generated file cannot be written.
	// It is fatal for the compilation unit.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrFileAlreadyCreated is returned when the same output path is created twice in one unit
	ErrFileAlreadyCreated = errors.New("file already created")

	// ErrInvalidDescriptor is returned when a declaration cannot be turned into a plugin
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// IsOutputWriteFailedError checks if the error is or wraps ErrOutputWriteFailed
func IsOutputWriteFailedError(err error) bool {
	return errors.Is(err, ErrOutputWriteFailed)
}

// IsFileAlreadyCreatedError checks if the error is or wraps ErrFileAlreadyCreated
func IsFileAlreadyCreatedError(err error) bool {
	return errors.Is(err, ErrFileAlreadyCreated)
}

// IsInvalidDescriptorError checks if the error is or wraps ErrInvalidDescriptor
func IsInvalidDescriptorError(err error) bool {
	return errors.Is(err, ErrInvalidDescriptor)
}

// NewOutputWriteFailedError wraps an I/O failure for the given output path
func NewOutputWriteFailedError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, cause)
}

// NewFileAlreadyCreatedError creates a new file already created error for the given path
func NewFileAlreadyCreatedError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileAlreadyCreated, path)
}

// NewInvalidDescriptorError creates a new invalid descriptor error with a reason
func NewInvalidDescriptorError(name, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidDescriptor, name, reason)
}
