/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"github.com/suparena/memrepo/errors"
	"go.uber.org/zap"
)

// Option configures a Store.
type Option[T any] func(*options[T]) error

type options[T any] struct {
	logger     *zap.Logger
	properties map[string]func(T) any
}

func defaultOptions[T any]() *options[T] {
	return &options[T]{
		logger:     zap.NewNop(),
		properties: make(map[string]func(T) any),
	}
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
		return nil
	}
}

// WithProperty registers a typed accessor for the property called name.
// FindAllBy and FindUniqueBy use it instead of looking the property up on
// each entity, so names that are not struct fields become queryable too.
func WithProperty[T any](name string, accessor func(T) any) Option[T] {
	return func(o *options[T]) error {
		if name == "" {
			return errors.NewConfigurationError("property", "name must not be empty", nil)
		}
		if accessor == nil {
			return errors.NewConfigurationError(name, "property accessor must not be nil", nil)
		}
		if _, exists := o.properties[name]; exists {
			return errors.NewConfigurationError(name, "property registered twice", nil)
		}
		o.properties[name] = accessor
		return nil
	}
}
