package lounge

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupported indicates a value the clone engine cannot represent.
	// Only returned when Options.Strict is set.
	ErrUnsupported = errors.New("unsupported value")

	// ErrKeyNotFound is the canonical "key not found" error. Store adapters
	// may return or wrap it; IsKeyNotFound always recognises it.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// UnsupportedError reports the value the clone engine could not represent.
type UnsupportedError struct {
	Path string // Dotted path from the clone root, empty for the root itself
	Type string // Go type of the offending value
}

func (e *UnsupportedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (at %s)", ErrUnsupported.Error(), e.Type, e.Path)
	}
	return fmt.Sprintf("%s: %s", ErrUnsupported.Error(), e.Type)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// ConfigError represents a configuration error.
// It wraps ErrInvalidConfig with the failing field and rule.
type ConfigError struct {
	Field string // Field name that failed validation
	Rule  string // Validation rule that failed
	Cause error  // Original error, if any
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Rule != "":
		return fmt.Sprintf("%s: field %s failed %q", ErrInvalidConfig.Error(), e.Field, e.Rule)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", ErrInvalidConfig.Error(), e.Cause)
	default:
		return ErrInvalidConfig.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newUnsupportedError creates an UnsupportedError for the value at path.
func newUnsupportedError(path, typ string) error {
	return &UnsupportedError{
		Path: path,
		Type: typ,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
