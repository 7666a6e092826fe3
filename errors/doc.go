/*
Package errors provides semantic error types for the connector.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound            = errors.New("entity not found")
	    ErrInvalidIdentifier   = errors.New("invalid identifier")
	    ErrUnsupportedOperator = errors.New("unsupported filter operator")
	    ErrInvalidFilter       = errors.New("invalid filter")
	)

Usage:

	// Check error type
	rec, err := client.Get(ctx, key)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("record %d does not exist", key.ID)
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Customer", 123)
	err := errors.NewUnsupportedOperatorError("age", "regexp")
	err := errors.NewInvalidIdentifierError("abc")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
