package repository

import "errors"

// ErrDuplicate signals a unique-constraint violation from the underlying
// store. Services map it to the specific duplicate error for their domain.
var ErrDuplicate = errors.New("duplicate key")
