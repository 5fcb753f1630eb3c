package discovery

import (
	"errors"
	"fmt"
)

var (
	// ErrDiscoveryFailed is returned when a source tree or declarations file cannot be read
	ErrDiscoveryFailed = errors.New("declaration discovery failed")

	// ErrInvalidDeclaration is returned for a declaration that cannot be used
	ErrInvalidDeclaration = errors.New("invalid declaration")

	// ErrSyntax is returned for a Java source the parser could not read cleanly
	ErrSyntax = errors.New("java syntax error")
)

// IsDiscoveryFailedError checks if an error is a discovery failure
func IsDiscoveryFailedError(err error) bool {
	return errors.Is(err, ErrDiscoveryFailed)
}

// IsSyntaxError checks if an error is a Java syntax error
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrSyntax)
}

// NewSyntaxError reports a syntax error in the given source file
func NewSyntaxError(path string) error {
	return fmt.Errorf("%w: %s", ErrSyntax, path)
}

// NewDiscoveryFailedError wraps a read failure with the input it came from
func NewDiscoveryFailedError(input string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrDiscoveryFailed, input, cause)
}

// NewInvalidDeclarationError describes a rejected declarations file entry
func NewInvalidDeclarationError(index int, reason string) error {
	return fmt.Errorf("%w: entry %d: %s", ErrInvalidDeclaration, index, reason)
}
