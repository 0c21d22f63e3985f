/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/suparena/memrepo/errors"
)

// Strategy names accepted by ByName and by configuration files.
const (
	StrategyDefault  = "default"
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
	StrategyULID     = "ulid"
)

var strategies = []string{StrategyDefault, StrategySequence, StrategyUUID, StrategyULID}

// Strategies lists the known strategy names.
func Strategies() []string {
	return slices.Clone(strategies)
}

// IsStrategy reports whether name is a known strategy.
func IsStrategy(name string) bool {
	return slices.Contains(strategies, name)
}

// ByName returns the generator called strategy for identifiers of type ID.
// Unknown names and strategies that cannot produce ID fail with a
// configuration error.
func ByName[ID comparable](strategy string) (PrimaryKeyGenerator[ID], error) {
	idType := reflect.TypeFor[ID]()

	switch strategy {
	case StrategyDefault:
		if err := CheckDefault[ID](); err != nil {
			return nil, err
		}
		return Default[ID](), nil

	case StrategySequence:
		if !isIntegerKind(idType.Kind()) {
			return nil, incompatible(strategy, idType)
		}
		return integerSequence[ID]{}, nil

	case StrategyUUID:
		var zero ID
		switch any(zero).(type) {
		case uuid.UUID:
			return any(NewUUID()).(PrimaryKeyGenerator[ID]), nil
		case strfmt.UUID:
			return any(NewStrfmtUUID()).(PrimaryKeyGenerator[ID]), nil
		}
		if idType.Kind() == reflect.String {
			return stringGenerator[ID](func() (string, error) { return uuid.NewString(), nil }), nil
		}
		return nil, incompatible(strategy, idType)

	case StrategyULID:
		var zero ID
		if _, ok := any(zero).(strfmt.ULID); ok {
			return any(NewULID()).(PrimaryKeyGenerator[ID]), nil
		}
		if idType.Kind() == reflect.String {
			return stringGenerator[ID](func() (string, error) {
				id, err := strfmt.NewULID()
				if err != nil {
					return "", err
				}
				return id.String(), nil
			}), nil
		}
		return nil, incompatible(strategy, idType)
	}

	return nil, errors.NewConfigurationError(idType.String(),
		fmt.Sprintf("unknown identifier strategy %q (known: %v)", strategy, strategies), nil)
}

func incompatible(strategy string, idType reflect.Type) error {
	return errors.NewConfigurationError(idType.String(),
		fmt.Sprintf("strategy %q cannot produce identifiers of this type", strategy), nil)
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// integerSequence is Sequence for identifier types only known to be
// integer-kinded at runtime, such as named integer types picked from a
// configuration file.
type integerSequence[ID comparable] struct{}

func (integerSequence[ID]) Next(previous *ID) (ID, error) {
	var next ID
	v := reflect.ValueOf(&next).Elem()

	switch {
	case v.CanInt():
		n := int64(0)
		if previous != nil {
			n = reflect.ValueOf(*previous).Int()
		}
		v.SetInt(n + 1)
	case v.CanUint():
		n := uint64(0)
		if previous != nil {
			n = reflect.ValueOf(*previous).Uint()
		}
		v.SetUint(n + 1)
	}
	return next, nil
}

// stringGenerator converts freshly created strings into a string-kinded ID.
func stringGenerator[ID comparable](create func() (string, error)) PrimaryKeyGenerator[ID] {
	return NewIdentifierGenerator(func() (ID, error) {
		var id ID
		s, err := create()
		if err != nil {
			return id, errors.NewConfigurationError(reflect.TypeFor[ID]().String(), "identifier source failed", err)
		}
		if s == "" {
			return id, errors.NewConfigurationError(reflect.TypeFor[ID]().String(), "identifier source returned an empty value", nil)
		}
		reflect.ValueOf(&id).Elem().SetString(s)
		return id, nil
	})
}
