// Package coi estimates the crossover intensity function along chromosomes
// from observed crossover (XO) locations measured in microns.
//
// Each crossover is first mapped onto a centromere-relative coordinate in
// [0, 1]: the short arm occupies [0, 0.5], the long arm (0.5, 1], and the
// centromere sits at exactly 0.5. The intensity at a query position is then
// the mean number of crossovers per cell falling in a closed window around
// that position, divided by the width of the window that actually lies
// inside [0, 1]. Queries near the chromosome ends therefore see a truncated
// window instead of an underestimate.
//
// Basic usage:
//
//	set := coi.NewSampleSet(samples)
//	cfg := coi.DefaultConfig()
//	cfg.IntensityWindow = 0.1
//	grid, _ := coi.UniformGrid(41)
//	res, err := coi.EstimateIntensity(set, 2, grid, cfg)
//	// res.Group(1)[i] is the intensity for group 1 at grid[i]
//
// Samples laid out the way a host environment passes them (one flat buffer
// of positions plus per-cell counts) can be wrapped without copying:
//
//	set, err := coi.NewSampleSetFlat(xoloc, nXO, sclength, centromeres, group)
//
// # Algorithm selection
//
// By default (Algorithm: "auto"), the estimator pre-normalizes and sorts each
// group's crossovers and answers every query with two binary searches. Set
// Config.Algorithm to force a strategy:
//
//	cfg.Algorithm = coi.AlgorithmScan   // direct scan of every crossover per query
//	cfg.Algorithm = coi.AlgorithmSorted // sorted positions + binary search
//
// Both strategies produce bitwise identical results.
//
// Coincidence as a function of distance is declared by [EstimateCoincidence]
// but not yet defined; it always returns [ErrNotImplemented].
package coi
