package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrSerialization is returned when a config can't be encoded for saving
	ErrSerialization = errors.New("unexpected serialization error")

	// ErrInvalidFunctionID is returned when a view function id is malformed
	ErrInvalidFunctionID = errors.New("invalid function id")
)

// ConfigNotFoundError is returned when neither config.yaml nor config.yml exist
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config not found: %s", e.Path)
}

func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ProfileNotFoundError is returned when a named profile is missing from the config
type ProfileNotFoundError struct {
	Name      string
	Available []string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("Profile %s not found", e.Name)
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EncodingError is returned when a file's bytes are not valid UTF-8
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8", e.Path)
}

// ParseError is returned when a file doesn't parse as the expected format
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
