/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// PrimaryKeyGenerator produces the next identifier for an entity type.
// previous is the identifier last issued by the calling store, nil before the first one.
type PrimaryKeyGenerator[ID comparable] interface {
	Next(previous *ID) (ID, error)
}

// GeneratorFunc adapts a plain function to PrimaryKeyGenerator.
type GeneratorFunc[ID comparable] func(previous *ID) (ID, error)

// Next calls f(previous).
func (f GeneratorFunc[ID]) Next(previous *ID) (ID, error) {
	return f(previous)
}

// Sequence is a monotonic counter: Next(nil) = 1, Next(&n) = n+1.
type Sequence[ID constraints.Integer] struct{}

// NewSequence returns a monotonic counter generator.
func NewSequence[ID constraints.Integer]() Sequence[ID] {
	return Sequence[ID]{}
}

// Next returns the successor of previous.
func (Sequence[ID]) Next(previous *ID) (ID, error) {
	if previous == nil {
		return 1, nil
	}
	return *previous + 1, nil
}

// IdentifierGenerator ignores the previous value and creates a fresh,
// self-contained identifier on every call, e.g. a UUID.
type IdentifierGenerator[ID comparable] struct {
	create func() (ID, error)
}

// NewIdentifierGenerator wraps create as a previous-agnostic generator.
func NewIdentifierGenerator[ID comparable](create func() (ID, error)) *IdentifierGenerator[ID] {
	return &IdentifierGenerator[ID]{create: create}
}

// Next returns a new identifier; previous is not consulted.
func (g *IdentifierGenerator[ID]) Next(_ *ID) (ID, error) {
	return g.create()
}

// NewUUID generates random (version 4) google/uuid identifiers.
func NewUUID() *IdentifierGenerator[uuid.UUID] {
	return NewIdentifierGenerator(uuid.NewRandom)
}

// NewStrfmtUUID generates random strfmt.UUID identifiers.
func NewStrfmtUUID() *IdentifierGenerator[strfmt.UUID] {
	return NewIdentifierGenerator(func() (strfmt.UUID, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return strfmt.UUID(id.String()), nil
	})
}

// NewULID generates lexically sortable strfmt.ULID identifiers.
func NewULID() *IdentifierGenerator[strfmt.ULID] {
	return NewIdentifierGenerator(strfmt.NewULID)
}
