package coi

import (
	"fmt"
	"math"
)

// Sample is one measured cell: the crossover locations along a single SC,
// all in microns, and the group the cell belongs to.
type Sample struct {
	Crossovers []float64
	SCLength   float64
	Centromere float64
	// Group is a label in {1, ..., nGroup}. Labels outside that range are
	// never selected by the estimator.
	Group int
}

// SampleSet holds n samples with their crossover positions packed into one
// flat buffer. offsets[i]:offsets[i+1] is the range of sample i.
//
// A SampleSet is read-only once built and safe for concurrent use.
type SampleSet struct {
	positions   []float64
	offsets     []int
	scLength    []float64
	centromeres []float64
	groups      []int
}

// NewSampleSet copies samples into a packed SampleSet.
func NewSampleSet(samples []Sample) *SampleSet {
	total := 0
	for _, s := range samples {
		total += len(s.Crossovers)
	}

	n := len(samples)
	set := &SampleSet{
		positions:   make([]float64, 0, total),
		offsets:     make([]int, n+1),
		scLength:    make([]float64, n),
		centromeres: make([]float64, n),
		groups:      make([]int, n),
	}
	for i, s := range samples {
		set.positions = append(set.positions, s.Crossovers...)
		set.offsets[i+1] = len(set.positions)
		set.scLength[i] = s.SCLength
		set.centromeres[i] = s.Centromere
		set.groups[i] = s.Group
	}
	return set
}

// NewSampleSetFlat wraps the flat layout used by host environments: xoLoc
// holds the crossovers of every cell back to back and nXO[i] is the number
// belonging to cell i. The slices are referenced, not copied, and must not be
// modified while the SampleSet is in use.
func NewSampleSetFlat(xoLoc []float64, nXO []int, scLength, centromeres []float64, groups []int) (*SampleSet, error) {
	n := len(nXO)
	if len(scLength) != n || len(centromeres) != n || len(groups) != n {
		return nil, fmt.Errorf("coi: per-sample lengths differ: nXO=%d, scLength=%d, centromeres=%d, groups=%d",
			n, len(scLength), len(centromeres), len(groups))
	}

	offsets := make([]int, n+1)
	for i, k := range nXO {
		if k < 0 {
			return nil, fmt.Errorf("coi: sample %d: negative crossover count %d", i, k)
		}
		offsets[i+1] = offsets[i] + k
	}
	if offsets[n] != len(xoLoc) {
		return nil, fmt.Errorf("coi: crossover counts sum to %d but xoLoc has length %d", offsets[n], len(xoLoc))
	}

	return &SampleSet{
		positions:   xoLoc,
		offsets:     offsets,
		scLength:    scLength,
		centromeres: centromeres,
		groups:      groups,
	}, nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.groups)
}

// NumCrossovers returns the total number of crossovers across all samples.
func (s *SampleSet) NumCrossovers() int {
	return len(s.positions)
}

// Crossovers returns the crossover positions of sample i. The returned slice
// shares storage with the set and is capped so appends cannot clobber the
// next sample.
func (s *SampleSet) Crossovers(i int) []float64 {
	return s.positions[s.offsets[i]:s.offsets[i+1]:s.offsets[i+1]]
}

// Sample returns sample i. Crossovers shares storage with the set.
func (s *SampleSet) Sample(i int) Sample {
	return Sample{
		Crossovers: s.Crossovers(i),
		SCLength:   s.scLength[i],
		Centromere: s.centromeres[i],
		Group:      s.groups[i],
	}
}

// GroupSize returns the number of samples labelled group, including samples
// with no crossovers.
func (s *SampleSet) GroupSize(group int) int {
	m := 0
	for _, g := range s.groups {
		if g == group {
			m++
		}
	}
	return m
}

// Validate checks that the set is non-nil, every SC length is finite, every
// centromere lies strictly inside its SC and every crossover lies within
// [0, SCLength].
func (s *SampleSet) Validate() error {
	if s == nil {
		return fmt.Errorf("coi: %w", ErrNilSampleSet)
	}
	for i := range s.groups {
		c, l := s.centromeres[i], s.scLength[i]
		// Written so that NaN fails the check.
		if !(c > 0 && c < l) || math.IsInf(l, 0) {
			return fmt.Errorf("coi: sample %d (group %d): centromere %g, SC length %g: %w",
				i, s.groups[i], c, l, ErrInvalidCentromere)
		}
		for k, p := range s.Crossovers(i) {
			if !(p >= 0 && p <= l) {
				return fmt.Errorf("coi: sample %d (group %d): crossover %d at %g, SC length %g: %w",
					i, s.groups[i], k, p, l, ErrInvalidPosition)
			}
		}
	}
	return nil
}

// normalized appends the normalized crossover positions of sample i to dst.
func (s *SampleSet) normalized(i int, dst []float64) []float64 {
	c, l := s.centromeres[i], s.scLength[i]
	for _, p := range s.Crossovers(i) {
		dst = append(dst, NormalizePosition(p, c, l))
	}
	return dst
}

// validateQueries checks that every query position is inside [0, 1].
func validateQueries(queries []float64) error {
	for i, q := range queries {
		if !(q >= 0 && q <= 1) {
			return fmt.Errorf("coi: query %d at %g: %w", i, q, ErrOutOfRangeQuery)
		}
	}
	return nil
}
