package model

import "errors"

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports bad input or a business-rule violation.
// The message is safe to surface to the client.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError reports an unavailable or misconfigured collaborator,
// such as a mailer without SMTP settings.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a ConfigurationError with the given message.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
