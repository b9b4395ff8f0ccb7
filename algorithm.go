package coi

import "fmt"

// autoScanMaxQueries is the largest query grid for which AlgorithmAuto
// prefers the direct scan: sorting a group's crossovers only pays off once
// it is reused across several queries.
const autoScanMaxQueries = 2

// selectAlgorithm resolves AlgorithmAuto into a concrete strategy based on
// the size of the query grid. Forced choices are returned unchanged.
func selectAlgorithm(algo Algorithm, nQueries int) Algorithm {
	if algo != AlgorithmAuto {
		return algo
	}
	if nQueries <= autoScanMaxQueries {
		return AlgorithmScan
	}
	return AlgorithmSorted
}

// validAlgorithm reports whether algo names a known strategy.
func validAlgorithm(algo Algorithm) error {
	switch algo {
	case AlgorithmAuto, AlgorithmScan, AlgorithmSorted:
		return nil
	default:
		return fmt.Errorf("coi: invalid Algorithm %q", algo)
	}
}
