package packages

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTemplate is returned when a template does not parse
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrTemplateExecutionFailed is returned when template execution fails
	ErrTemplateExecutionFailed = errors.New("template execution failed")

	// ErrMissingRequiredField is returned when a render request lacks a field
	ErrMissingRequiredField = errors.New("missing required field")
)

// IsInvalidTemplateError checks if the error is or wraps ErrInvalidTemplate
func IsInvalidTemplateError(err error) bool {
	return errors.Is(err, ErrInvalidTemplate)
}

// IsTemplateExecutionFailedError checks if the error is or wraps ErrTemplateExecutionFailed
func IsTemplateExecutionFailedError(err error) bool {
	return errors.Is(err, ErrTemplateExecutionFailed)
}

// IsMissingRequiredFieldError checks if the error is or wraps ErrMissingRequiredField
func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// NewInvalidTemplateError wraps a template parse failure
func NewInvalidTemplateError(templateName string, cause error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidTemplate, templateName, cause)
}

// NewTemplateExecutionFailedError creates a new template execution failed error with context
func NewTemplateExecutionFailedError(templateName string, cause error) error {
	return fmt.Errorf("%w for template %s: %w", ErrTemplateExecutionFailed, templateName, cause)
}

// NewMissingRequiredFieldError creates a new missing required field error with field name
func NewMissingRequiredFieldError(fieldName string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, fieldName)
}

// ValidateRequest checks the fields every generator relies on
func ValidateRequest(req *GenerateRequest) error {
	if req == nil {
		return NewMissingRequiredFieldError("request")
	}
	if req.Descriptor == nil {
		return NewMissingRequiredFieldError("descriptor")
	}
	if req.Descriptor.SimpleName == "" {
		return NewMissingRequiredFieldError("descriptor.simple_name")
	}
	if req.Metadata == nil {
		return NewMissingRequiredFieldError("metadata")
	}
	return nil
}
