package rules

import "errors"

// Sentinel errors for catalog loading and validation.
// Callers should use errors.Is() to check for these.
var (
	// ErrInvalidCatalog indicates a catalog that failed validation,
	// such as a rule whose severity is not in the level list.
	ErrInvalidCatalog = errors.New("rules: invalid catalog")
)
