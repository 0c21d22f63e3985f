/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package identity

import (
	"reflect"
	"strings"
)

// accessor is a field located somewhere in an entity's embedding hierarchy.
type accessor struct {
	field reflect.StructField
	// index is the path from the outermost struct to the field, one entry per level.
	index []int
}

type level struct {
	typ   reflect.Type
	index []int
}

func structType(t reflect.Type) (reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}

// findAccessorDeep walks the embedding hierarchy of t, most-derived level
// first, and returns the first field accepted by match. All fields declared at
// one depth are inspected before any embedded struct one level further down.
func findAccessorDeep(t reflect.Type, match func(reflect.StructField) bool) (accessor, bool) {
	st, ok := structType(t)
	if !ok {
		return accessor{}, false
	}

	visited := map[reflect.Type]bool{st: true}
	current := []level{{typ: st}}

	for len(current) > 0 {
		for _, lvl := range current {
			for i := 0; i < lvl.typ.NumField(); i++ {
				f := lvl.typ.Field(i)
				if match(f) {
					return accessor{field: f, index: appendIndex(lvl.index, i)}, true
				}
			}
		}

		var next []level
		for _, lvl := range current {
			for i := 0; i < lvl.typ.NumField(); i++ {
				f := lvl.typ.Field(i)
				if !f.Anonymous {
					continue
				}
				embedded, ok := structType(f.Type)
				if !ok || visited[embedded] {
					continue
				}
				visited[embedded] = true
				next = append(next, level{typ: embedded, index: appendIndex(lvl.index, i)})
			}
		}
		current = next
	}

	return accessor{}, false
}

func appendIndex(index []int, i int) []int {
	out := make([]int, len(index), len(index)+1)
	copy(out, index)
	return append(out, i)
}

// read follows the accessor path from v. It reports false when a nil embedded
// pointer interrupts the path.
func (a accessor) read(v reflect.Value) (reflect.Value, bool) {
	v = indirect(v)
	for n, i := range a.index {
		if !v.IsValid() {
			return reflect.Value{}, false
		}
		v = v.Field(i)
		if n < len(a.index)-1 {
			v = indirect(v)
		}
	}
	return v, v.IsValid()
}

// indirect dereferences pointers until a non-pointer is reached. A nil
// pointer yields the invalid Value.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isIdentifierField(f reflect.StructField) bool {
	tag, ok := f.Tag.Lookup(TagName)
	if !ok {
		return false
	}
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == idTagValue {
			return true
		}
	}
	return false
}

func isNamedProperty(name string) func(reflect.StructField) bool {
	return func(f reflect.StructField) bool {
		if !f.IsExported() {
			return false
		}
		if f.Name == name {
			return true
		}
		return jsonName(f) == name
	}
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
