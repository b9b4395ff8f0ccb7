package coi

import "errors"

// Errors returned by validation. Returned errors wrap one of these with the
// offending sample, group or query, so use errors.Is to test for them.
var (
	ErrInvalidCentromere = errors.New("centromere not strictly inside the SC")
	ErrInvalidPosition   = errors.New("crossover position outside the SC")
	ErrEmptyGroup        = errors.New("group has no samples")
	ErrInvalidWindow     = errors.New("window must be in (0, 1]")
	ErrOutOfRangeQuery   = errors.New("query position outside [0, 1]")
	ErrInvalidGroupCount = errors.New("number of groups must be >= 1")
	ErrNotImplemented    = errors.New("not implemented")
	ErrNilSampleSet      = errors.New("nil SampleSet")
)
