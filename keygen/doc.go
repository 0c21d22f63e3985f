/*
Package keygen provides primary key generation strategies for in-memory repositories.

A PrimaryKeyGenerator receives the identifier last issued by the calling store
(nil before the first one) and returns the next one:

	type PrimaryKeyGenerator[ID comparable] interface {
	    Next(previous *ID) (ID, error)
	}

Strategies:
  - Sequence: monotonic counter for integer identifiers (1, 2, 3, ...)
  - IdentifierGenerator: previous-agnostic, e.g. NewUUID, NewStrfmtUUID, NewULID
  - Default: zero-argument factory of the identifier type, used when no
    generator is registered for an entity type

Strategies can also be picked by name, which is how configuration files refer
to them:

	gen, err := keygen.ByName[int64]("sequence")
*/
package keygen
