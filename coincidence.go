package coi

// EstimateCoincidence is meant to estimate the coincidence of crossovers as a
// function of their distance in microns, smoothed with the given window and
// evaluated at positions.
//
// The statistic has not been defined yet, so this always returns
// ErrNotImplemented and no values.
func EstimateCoincidence(set *SampleSet, window float64, positions []float64) ([]float64, error) {
	return nil, ErrNotImplemented
}
