/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package identity

import (
	"fmt"
	"reflect"

	"github.com/suparena/memrepo/errors"
)

// ResolveIdentifier returns the current identifier of entity. The zero value
// means the entity has no identifier yet.
//
// A GetID method takes precedence. Otherwise the embedding hierarchy is walked
// for a field tagged `memrepo:"id"`, and a nil embedded struct on the way reads
// as an unset identifier.
func ResolveIdentifier[ID comparable](entity any) (ID, error) {
	var zero ID
	if IsNil(entity) {
		return zero, errors.NewValidationError("entity", "must not be nil")
	}

	if getter, ok := entity.(IdentifierGetter[ID]); ok {
		return getter.GetID(), nil
	}

	acc, err := identifierField[ID](entity)
	if err != nil {
		return zero, err
	}

	v, ok := acc.read(reflect.ValueOf(entity))
	if !ok {
		return zero, nil
	}
	if !v.CanInterface() {
		return zero, errors.NewConfigurationError(TypeName(entity),
			fmt.Sprintf("identifier field %s is not readable", acc.field.Name), nil)
	}

	var id ID
	reflect.ValueOf(&id).Elem().Set(v)
	return id, nil
}

// AssignIdentifier writes id into entity, either through SetID or through the
// tagged identifier field. entity must be a non-nil pointer for the field path.
func AssignIdentifier[ID comparable](entity any, id ID) error {
	if IsNil(entity) {
		return errors.NewValidationError("entity", "must not be nil")
	}
	typeName := TypeName(entity)

	if setter, ok := entity.(Identifiable[ID]); ok {
		setter.SetID(id)
		return nil
	}
	if _, ok := entity.(IdentifierGetter[ID]); ok {
		return errors.NewIdentifierAssignmentError(typeName, "GetID is declared without a matching SetID", nil)
	}

	acc, err := identifierField[ID](entity)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(entity)
	if v.Kind() != reflect.Pointer {
		return errors.NewIdentifierAssignmentError(typeName, "entity is not a pointer", nil)
	}

	target := v.Elem()
	for n, i := range acc.index {
		target = target.Field(i)
		if n == len(acc.index)-1 {
			break
		}
		if target.Kind() == reflect.Pointer {
			if target.IsNil() {
				return errors.NewIdentifierAssignmentError(typeName,
					fmt.Sprintf("embedded %s is nil", target.Type()), nil)
			}
			target = target.Elem()
		}
	}

	if !target.CanSet() {
		return errors.NewIdentifierAssignmentError(typeName,
			fmt.Sprintf("field %s is not settable", acc.field.Name), nil)
	}

	value := reflect.ValueOf(&id).Elem()
	if !value.Type().AssignableTo(target.Type()) {
		return errors.NewIdentifierAssignmentError(typeName,
			fmt.Sprintf("%s is not assignable to field %s of type %s", value.Type(), acc.field.Name, target.Type()), nil)
	}

	target.Set(value)
	return nil
}

// ResolveNamedProperty returns the value of the exported field called name,
// matched by Go field name or json tag name, walking the embedding hierarchy
// most-derived first. A nil embedded struct on the path yields nil.
func ResolveNamedProperty(entity any, name string) (any, error) {
	if IsNil(entity) {
		return nil, errors.NewValidationError("entity", "must not be nil")
	}

	acc, ok := findAccessorDeep(reflect.TypeOf(entity), isNamedProperty(name))
	if !ok {
		return nil, errors.NewPropertyNotFoundError(TypeName(entity), name)
	}

	v, ok := acc.read(reflect.ValueOf(entity))
	if !ok {
		return nil, nil
	}
	if !v.CanInterface() {
		return nil, errors.NewPropertyNotFoundError(TypeName(entity), name)
	}
	return v.Interface(), nil
}

// HasProperty reports whether values of type t expose a property called name.
func HasProperty(t reflect.Type, name string) bool {
	_, ok := findAccessorDeep(t, isNamedProperty(name))
	return ok
}

func identifierField[ID comparable](entity any) (accessor, error) {
	typeName := TypeName(entity)

	acc, ok := findAccessorDeep(reflect.TypeOf(entity), isIdentifierField)
	if !ok {
		return accessor{}, errors.NewIdentifierAccessorNotFoundError(typeName)
	}
	if !acc.field.IsExported() {
		return accessor{}, errors.NewConfigurationError(typeName,
			fmt.Sprintf("identifier field %s must be exported", acc.field.Name), nil)
	}

	idType := reflect.TypeFor[ID]()
	if !acc.field.Type.AssignableTo(idType) {
		return accessor{}, errors.NewConfigurationError(typeName,
			fmt.Sprintf("identifier field %s has type %s, want %s", acc.field.Name, acc.field.Type, idType), nil)
	}
	return acc, nil
}
