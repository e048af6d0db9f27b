package engine

import "errors"

var (
	// ErrInvalidExponent is returned when the exponent is outside [3, 11].
	ErrInvalidExponent = errors.New("exponent must be between 3 and 11 inclusive")

	// ErrInvalidLimit is returned when the upper bound is below MinBase.
	//
	// The interactive layer demands a strictly larger bound (k > 10); the
	// engine accepts k == MinBase so a single-candidate search is
	// expressible as a library call.
	ErrInvalidLimit = errors.New("limit must be at least 10")

	// ErrAlreadyRun is returned when a Driver is streamed a second time.
	// A Driver runs exactly once; build a fresh one per search.
	ErrAlreadyRun = errors.New("driver has already run")
)
