/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"iter"
	"slices"
)

// Streamable is a lazy, restartable, finite sequence of entities. Every range
// over it re-evaluates its source, so a Streamable returned by a store is a
// live view rather than a snapshot. A non-nil error ends the sequence.
type Streamable[T any] iter.Seq2[T, error]

// Of wraps an error-free sequence.
func Of[T any](seq iter.Seq[T]) Streamable[T] {
	return func(yield func(T, error) bool) {
		for item := range seq {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Failed returns a sequence that yields err and nothing else.
func Failed[T any](err error) Streamable[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// Materialize evaluates s once and returns a sequence replaying the result,
// including a terminating error.
func Materialize[T any](s Streamable[T]) Streamable[T] {
	items, err := s.ToList()
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
		if err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// All returns s as a plain iterator.
func (s Streamable[T]) All() iter.Seq2[T, error] {
	return iter.Seq2[T, error](s)
}

// Filter returns the items of s accepted by keep. Errors pass through.
func (s Streamable[T]) Filter(keep func(T) bool) Streamable[T] {
	return func(yield func(T, error) bool) {
		for item, err := range s {
			if err != nil {
				yield(item, err)
				return
			}
			if keep(item) && !yield(item, nil) {
				return
			}
		}
	}
}

// ToList collects s. On error the items collected so far are returned with it.
func (s Streamable[T]) ToList() ([]T, error) {
	items := []T{}
	for item, err := range s {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// First returns the first item of s.
func (s Streamable[T]) First() (T, bool, error) {
	for item, err := range s {
		if err != nil {
			var zero T
			return zero, false, err
		}
		return item, true, nil
	}
	var zero T
	return zero, false, nil
}

// Count evaluates s and returns the number of items.
func (s Streamable[T]) Count() (int, error) {
	n := 0
	for _, err := range s {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// IsEmpty reports whether s yields no items.
func (s Streamable[T]) IsEmpty() (bool, error) {
	_, ok, err := s.First()
	return !ok, err
}

// Sorted collects s and sorts it with cmp.
func (s Streamable[T]) Sorted(cmp func(a, b T) int) ([]T, error) {
	items, err := s.ToList()
	if err != nil {
		return items, err
	}
	slices.SortFunc(items, cmp)
	return items, nil
}
