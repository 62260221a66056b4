package errors

import "errors"

// Domain errors
var (
	// Generator errors
	ErrNoCharacterClasses = errors.New("invalid configuration: at least one character class must be enabled")

	// Scan errors
	ErrScanUnsupported = errors.New("wifi scanning is not supported on this platform")
	ErrNoScanOutput    = errors.New("scan command produced no output")

	// Results errors
	ErrNoResults          = errors.New("no results found")
	ErrInvalidResultsFile = errors.New("results file is malformed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
