/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"

	"github.com/suparena/memrepo/registry"
)

// Configurer contributes identifier registrations during start-up.
type Configurer interface {
	AddIdentifiers(r *registry.IdentifierRegistry) error
}

// ConfigurerFunc adapts a function to Configurer.
type ConfigurerFunc func(r *registry.IdentifierRegistry) error

// AddIdentifiers calls f(r).
func (f ConfigurerFunc) AddIdentifiers(r *registry.IdentifierRegistry) error {
	return f(r)
}

// CompositeConfigurer runs configurers in order. Later registrations for the
// same entity type replace earlier ones.
type CompositeConfigurer []Configurer

// AddIdentifiers runs every configurer and stops at the first error.
func (c CompositeConfigurer) AddIdentifiers(r *registry.IdentifierRegistry) error {
	for i, configurer := range c {
		if configurer == nil {
			continue
		}
		if err := configurer.AddIdentifiers(r); err != nil {
			return fmt.Errorf("configurer %d: %w", i, err)
		}
	}
	return nil
}

// BuildMapping runs configurers against a fresh registry and returns its
// immutable snapshot.
func BuildMapping(configurers ...Configurer) (*registry.IdentifierMapping, error) {
	r := registry.NewIdentifierRegistry()
	if err := CompositeConfigurer(configurers).AddIdentifiers(r); err != nil {
		return nil, err
	}
	return r.Mapping(), nil
}
