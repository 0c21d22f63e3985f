/*
Package errors provides semantic error types for the memrepo library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNoResult                   = errors.New("no result")
	    ErrNonUniqueResult            = errors.New("non-unique result")
	    ErrInvalidInput               = errors.New("invalid input")
	    ErrIdentifierAccessorNotFound = errors.New("identifier accessor not found")
	    ErrIdentifierAssignment       = errors.New("identifier assignment failed")
	    ErrPropertyNotFound           = errors.New("property not found")
	    ErrConfiguration              = errors.New("configuration error")
	)

Usage:

	// Check error type
	err := store.DeleteByID(42)
	if err != nil {
	    if errors.IsNoResult(err) {
	        // Handle missing entity
	        return fmt.Errorf("product %d does not exist", 42)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNoResultError("Product", 42)
	err := errors.NewNonUniqueResultError("Name", "Product", 2)
	err := errors.NewConfigurationError("Product", "no generator", nil)

No error in this package is transient. A store is purely in-memory, so callers
should never retry on any of them.
*/
package errors
