package nearmiss

import (
	"github.com/fermatlab/nearmiss/engine"
)

// Engine sentinels re-exported as the public error contract.
var (
	// ErrInvalidExponent is returned when the exponent is outside [3, 11].
	ErrInvalidExponent = engine.ErrInvalidExponent

	// ErrInvalidLimit is returned when the upper bound is below MinBase.
	ErrInvalidLimit = engine.ErrInvalidLimit

	// ErrAlreadyRun is returned when a low-level engine.Driver is streamed
	// twice. Finder is immune: it builds a fresh driver per search.
	ErrAlreadyRun = engine.ErrAlreadyRun
)
