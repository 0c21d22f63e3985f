/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/suparena/memrepo/errors"
)

// PropertyQuery defines a property-equality query.
type PropertyQuery struct {
	// Property is the Go field name or json name of the compared property.
	Property string
	// Value is compared against each entity's property value. It may be nil.
	Value any
}

// Validate checks the query parameters.
func (q PropertyQuery) Validate() error {
	if q.Property == "" {
		return errors.NewValidationError("property", "property name must not be empty")
	}
	return nil
}

// Predicate is a typed query over entities of type T.
type Predicate[T any] func(T) bool

// Validate checks the predicate is usable.
func (p Predicate[T]) Validate() error {
	if p == nil {
		return errors.NewValidationError("predicate", "must not be nil")
	}
	return nil
}
