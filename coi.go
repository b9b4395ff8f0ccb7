package coi

import (
	"fmt"
	"runtime"
)

// Algorithm selects how window counts are computed.
type Algorithm string

const (
	AlgorithmAuto   Algorithm = "auto"
	AlgorithmScan   Algorithm = "scan"
	AlgorithmSorted Algorithm = "sorted"
)

// Config controls intensity estimation.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// IntensityWindow is the full width of the smoothing window, in
	// normalized position units. The window extends IntensityWindow/2 on
	// each side of a query. Must be in (0, 1]. Default: 0.05.
	IntensityWindow float64

	// Algorithm selects the counting strategy.
	// "scan" checks every crossover for every query.
	// "sorted" sorts each group's normalized positions once and binary
	// searches per query. "auto" picks based on the grid size.
	// All strategies return identical values. Default: "auto".
	Algorithm Algorithm

	// Workers controls the number of goroutines groups are spread across.
	// 0 means use runtime.NumCPU(); 1 runs the groups sequentially.
	// Default: 0 (auto).
	Workers int
}

// IntensityResult holds the estimated intensity functions for every group.
type IntensityResult struct {
	// Queries are the positions the intensities were evaluated at.
	Queries []float64

	// Window is the smoothing window that was used.
	Window float64

	// Groups[g-1] is the intensity for group g, one value per query.
	Groups [][]float64

	// GroupSizes[g-1] is the number of samples in group g.
	GroupSizes []int
}

// Group returns the intensity vector for group label g, or nil if g is out
// of range.
func (r *IntensityResult) Group(g int) []float64 {
	if g < 1 || g > len(r.Groups) {
		return nil
	}
	return r.Groups[g-1]
}

// Flat returns the intensities as one group-major slice of length
// len(Groups)*len(Queries): element (g-1)*len(Queries)+i is group g at
// query i.
func (r *IntensityResult) Flat() []float64 {
	flat := make([]float64, 0, len(r.Groups)*len(r.Queries))
	for _, row := range r.Groups {
		flat = append(flat, row...)
	}
	return flat
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		IntensityWindow: 0.05,
		Algorithm:       AlgorithmAuto,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if err := validateWindow(cfg.IntensityWindow); err != nil {
		return err
	}
	if err := validAlgorithm(cfg.Algorithm); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("coi: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// EstimateIntensity estimates the crossover intensity function for groups
// 1..nGroup at each query position. Samples whose label is outside that
// range are ignored.
//
// Everything is validated before any estimate is computed: the config, the
// samples, the query positions and that every group has at least one
// sample. Returned errors wrap the matching Err* value.
func EstimateIntensity(set *SampleSet, nGroup int, queries []float64, cfg Config) (*IntensityResult, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if nGroup < 1 {
		return nil, fmt.Errorf("coi: nGroup %d: %w", nGroup, ErrInvalidGroupCount)
	}
	if err := validateQueries(queries); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	sizes := make([]int, nGroup)
	for j := 0; j < set.Len(); j++ {
		if g := set.groups[j]; g >= 1 && g <= nGroup {
			sizes[g-1]++
		}
	}
	for g, m := range sizes {
		if m == 0 {
			return nil, fmt.Errorf("coi: group %d: %w", g+1, ErrEmptyGroup)
		}
	}

	out := make([][]float64, nGroup)
	for g := range out {
		out[g] = make([]float64, len(queries))
	}

	est := estimatorFor(selectAlgorithm(cfg.Algorithm, len(queries)))
	estimateGroupsParallel(set, sizes, queries, cfg.IntensityWindow, est, out, cfg.Workers)

	return &IntensityResult{
		Queries:    queries,
		Window:     cfg.IntensityWindow,
		Groups:     out,
		GroupSizes: sizes,
	}, nil
}

// EstimateIntensityFlat is EstimateIntensity writing into a caller-supplied
// group-major buffer of length nGroup*len(queries), laid out as
// [IntensityResult.Flat]. out is only written if estimation succeeds.
func EstimateIntensityFlat(set *SampleSet, nGroup int, queries []float64, cfg Config, out []float64) error {
	if nGroup >= 1 && len(out) != nGroup*len(queries) {
		return fmt.Errorf("coi: output length %d does not match nGroup*len(queries) = %d", len(out), nGroup*len(queries))
	}
	res, err := EstimateIntensity(set, nGroup, queries, cfg)
	if err != nil {
		return err
	}
	for g, row := range res.Groups {
		copy(out[g*len(queries):], row)
	}
	return nil
}
