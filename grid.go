package coi

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultGridSize is the number of query positions used by the CLI when no
// grid is given: a step of 0.025 over [0, 1].
const DefaultGridSize = 41

// UniformGrid returns n evenly spaced query positions covering [0, 1], both
// ends included. n must be >= 2.
func UniformGrid(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("coi: grid needs at least 2 positions, got %d", n)
	}
	grid := floats.Span(make([]float64, n), 0, 1)
	// Span can land a ulp short of the upper bound.
	grid[n-1] = 1
	return grid, nil
}
