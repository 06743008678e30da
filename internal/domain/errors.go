package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is matched by every UnknownUnitError
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrTooManyCombinations is matched by every TooManyCombinationsError
	ErrTooManyCombinations = errors.New("too many store combinations")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogFailure is returned when the offer catalog cannot be queried
	ErrCatalogFailure = errors.New("offer catalog request failed")

	// ErrCatalogNotConfigured is returned when offers must be fetched but no catalog is set up
	ErrCatalogNotConfigured = errors.New("offer catalog not configured")

	// ErrStoreNotFound is returned by the catalog for an unknown store
	ErrStoreNotFound = errors.New("store not found in catalog")
)

// UnknownUnitError reports a unit string missing from every conversion table.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %q", e.Unit)
}

// Is makes errors.Is(err, ErrUnknownUnit) hold.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// TooManyCombinationsError reports that store enumeration crossed the configured ceiling.
type TooManyCombinationsError struct {
	Limit int
	Count int
}

func (e *TooManyCombinationsError) Error() string {
	return fmt.Sprintf("too many store combinations: %d generated, limit is %d", e.Count, e.Limit)
}

// Is makes errors.Is(err, ErrTooManyCombinations) hold.
func (e *TooManyCombinationsError) Is(target error) bool {
	return target == ErrTooManyCombinations
}
