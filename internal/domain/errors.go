package domain

import "errors"

var (
	// ErrItemNotFound reports a requested name that is not in the catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateItem reports a location selected (or cataloged) twice.
	ErrDuplicateItem = errors.New("item already added")

	// ErrTooFewItems reports a route request with fewer than two selections.
	ErrTooFewItems = errors.New("add at least two items before calculating route")
)
