/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNoResult is returned when a query requires at least one result but found none
	ErrNoResult = errors.New("no result")

	// ErrNonUniqueResult is returned when a query requires at most one result but found more
	ErrNonUniqueResult = errors.New("non-unique result")

	// ErrInvalidInput is returned when a precondition on an argument fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrIdentifierAccessorNotFound is returned when an entity exposes no identifier accessor
	ErrIdentifierAccessorNotFound = errors.New("identifier accessor not found")

	// ErrIdentifierAssignment is returned when an identifier cannot be written back to an entity
	ErrIdentifierAssignment = errors.New("identifier assignment failed")

	// ErrPropertyNotFound is returned when an entity has no property with the requested name
	ErrPropertyNotFound = errors.New("property not found")

	// ErrConfiguration is returned for structural setup failures
	ErrConfiguration = errors.New("configuration error")
)

// NoResultError represents a lookup that required an entity which does not exist
type NoResultError struct {
	Type string
	Key  string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf("no %s with id [%s] exists", e.Type, e.Key)
}

func (e *NoResultError) Is(target error) bool {
	return target == ErrNoResult
}

// NonUniqueResultError represents a uniqueness query that matched more than one entity
type NonUniqueResultError struct {
	Property string
	Type     string
	Matches  int
}

func (e *NonUniqueResultError) Error() string {
	return fmt.Sprintf("property [%s] is not a unique field in entity [%s] (%d matches)", e.Property, e.Type, e.Matches)
}

func (e *NonUniqueResultError) Is(target error) bool {
	return target == ErrNonUniqueResult
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IdentifierAccessorNotFoundError is returned when no level of an entity's type
// hierarchy declares an identifier accessor.
type IdentifierAccessorNotFoundError struct {
	Type string
}

func (e *IdentifierAccessorNotFoundError) Error() string {
	return fmt.Sprintf("entity [%s] has neither an identifier method nor a field tagged `memrepo:\"id\"`", e.Type)
}

func (e *IdentifierAccessorNotFoundError) Is(target error) bool {
	return target == ErrIdentifierAccessorNotFound
}

// IdentifierAssignmentError is returned when a generated identifier cannot be
// written back into an entity.
type IdentifierAssignmentError struct {
	Type   string
	Reason string
	Err    error
}

func (e *IdentifierAssignmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("couldn't set id in entity [%s]: %s: %v", e.Type, e.Reason, e.Err)
	}
	return fmt.Sprintf("couldn't set id in entity [%s]: %s", e.Type, e.Reason)
}

func (e *IdentifierAssignmentError) Is(target error) bool {
	return target == ErrIdentifierAssignment
}

func (e *IdentifierAssignmentError) Unwrap() error {
	return e.Err
}

// PropertyNotFoundError is returned when an entity type declares no property with the given name
type PropertyNotFoundError struct {
	Type     string
	Property string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("entity [%s] has no property [%s]", e.Type, e.Property)
}

func (e *PropertyNotFoundError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

// PropertyLookupError wraps a failed property read during a property-equality query
type PropertyLookupError struct {
	Property string
	Type     string
	Err      error
}

func (e *PropertyLookupError) Error() string {
	return fmt.Sprintf("couldn't get property [%s] from [%s]: %v", e.Property, e.Type, e.Err)
}

func (e *PropertyLookupError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents a structural setup failure such as a missing
// identifier factory or a generator registered with the wrong identifier type.
type ConfigurationError struct {
	Subject string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error for %s: %s", e.Subject, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNoResultError creates a new NoResultError
func NewNoResultError(entityType string, key any) error {
	return &NoResultError{Type: entityType, Key: fmt.Sprint(key)}
}

// NewNonUniqueResultError creates a new NonUniqueResultError
func NewNonUniqueResultError(property, entityType string, matches int) error {
	return &NonUniqueResultError{Property: property, Type: entityType, Matches: matches}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIdentifierAccessorNotFoundError creates a new IdentifierAccessorNotFoundError
func NewIdentifierAccessorNotFoundError(entityType string) error {
	return &IdentifierAccessorNotFoundError{Type: entityType}
}

// NewIdentifierAssignmentError creates a new IdentifierAssignmentError
func NewIdentifierAssignmentError(entityType, reason string, cause error) error {
	return &IdentifierAssignmentError{Type: entityType, Reason: reason, Err: cause}
}

// NewPropertyNotFoundError creates a new PropertyNotFoundError
func NewPropertyNotFoundError(entityType, property string) error {
	return &PropertyNotFoundError{Type: entityType, Property: property}
}

// NewPropertyLookupError creates a new PropertyLookupError
func NewPropertyLookupError(property, entityType string, cause error) error {
	return &PropertyLookupError{Property: property, Type: entityType, Err: cause}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(subject, message string, cause error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: cause}
}

// IsNoResult checks if an error is a no result error
func IsNoResult(err error) bool {
	return errors.Is(err, ErrNoResult)
}

// IsNonUniqueResult checks if an error is a non-unique result error
func IsNonUniqueResult(err error) bool {
	return errors.Is(err, ErrNonUniqueResult)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIdentifierAccessorNotFound checks if an error reports a missing identifier accessor
func IsIdentifierAccessorNotFound(err error) bool {
	return errors.Is(err, ErrIdentifierAccessorNotFound)
}

// IsIdentifierAssignment checks if an error reports a failed identifier write
func IsIdentifierAssignment(err error) bool {
	return errors.Is(err, ErrIdentifierAssignment)
}

// IsPropertyNotFound checks if an error reports a missing property
func IsPropertyNotFound(err error) bool {
	return errors.Is(err, ErrPropertyNotFound)
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
