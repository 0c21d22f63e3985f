/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides test doubles for the identifier generation used by stores
package mock

import (
	"sync"

	"github.com/suparena/memrepo/keygen"
)

// Generator is a keygen.PrimaryKeyGenerator that records its calls and can be
// told to fail
type Generator[ID comparable] struct {
	mu        sync.Mutex
	next      func(previous *ID) (ID, error)
	calls     int
	previous  []*ID
	err       error
	failAfter int
}

var _ keygen.PrimaryKeyGenerator[int64] = (*Generator[int64])(nil)

// New creates a mock generator delegating to next
func New[ID comparable](next keygen.PrimaryKeyGenerator[ID]) *Generator[ID] {
	return &Generator[ID]{
		next:      next.Next,
		failAfter: -1,
	}
}

// NewFunc creates a mock generator delegating to f
func NewFunc[ID comparable](f func(previous *ID) (ID, error)) *Generator[ID] {
	return New[ID](keygen.GeneratorFunc[ID](f))
}

// WithError makes every call return err
func (g *Generator[ID]) WithError(err error) *Generator[ID] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
	return g
}

// FailAfter makes calls after the first n return err
func (g *Generator[ID]) FailAfter(n int, err error) *Generator[ID] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failAfter = n
	g.err = err
	return g
}

// Next records the call and delegates unless configured to fail
func (g *Generator[ID]) Next(previous *ID) (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	if previous != nil {
		p := *previous
		previous = &p
	}
	g.previous = append(g.previous, previous)

	if g.err != nil && (g.failAfter < 0 || g.calls > g.failAfter) {
		var zero ID
		return zero, g.err
	}
	return g.next(previous)
}

// Helper methods for testing

// Calls returns the number of Next calls
func (g *Generator[ID]) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// Previous returns copies of the previous values passed to each Next call
func (g *Generator[ID]) Previous() []*ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make([]*ID, len(g.previous))
	copy(result, g.previous)
	return result
}

// Reset clears the recorded calls
func (g *Generator[ID]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = 0
	g.previous = nil
}
