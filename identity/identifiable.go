/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package identity

import "reflect"

// TagName is the struct tag key used to mark identifier fields: `memrepo:"id"`.
const TagName = "memrepo"

const idTagValue = "id"

// IdentifierGetter is implemented by entities that expose their identifier through a method.
type IdentifierGetter[ID comparable] interface {
	GetID() ID
}

// Identifiable is implemented by entities that expose both halves of their
// identifier accessor. Method promotion through embedded structs means an
// outer type's own GetID/SetID shadows the ones it embeds.
type Identifiable[ID comparable] interface {
	IdentifierGetter[ID]
	SetID(ID)
}

// IsZero reports whether id is the zero value of its type, which is how an
// unset identifier is represented.
func IsZero[ID comparable](id ID) bool {
	var zero ID
	return id == zero
}

// IsNew reports whether entity has not been assigned an identifier yet.
func IsNew[ID comparable](entity any) (bool, error) {
	id, err := ResolveIdentifier[ID](entity)
	if err != nil {
		return false, err
	}
	return IsZero(id), nil
}

// IsNil reports whether v is nil or a typed nil of a nil-able kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// TypeName returns the printable runtime type of v.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
