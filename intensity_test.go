package coi

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// generateSamples returns n random cells spread over nGroup groups. Every
// group gets at least one cell as long as n >= nGroup.
func generateSamples(rng *rand.Rand, n, nGroup, maxXO int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		l := 20 + rng.Float64()*80
		c := l * (0.1 + 0.8*rng.Float64())
		xo := make([]float64, rng.Intn(maxXO+1))
		for k := range xo {
			xo[k] = rng.Float64() * l
		}
		// Land some crossovers exactly on the centromere and the ends.
		if len(xo) > 0 && rng.Intn(4) == 0 {
			xo[0] = []float64{0, c, l}[rng.Intn(3)]
		}
		samples[i] = Sample{Crossovers: xo, SCLength: l, Centromere: c, Group: i%nGroup + 1}
	}
	return samples
}

func TestEstimateGroupIntensity_FullWindow(t *testing.T) {
	// Two cells, one crossover each, both on the centromere (0.5).
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{10}, SCLength: 20, Centromere: 10, Group: 1},
		{Crossovers: []float64{3}, SCLength: 9, Centromere: 3, Group: 1},
	})

	out := make([]float64, 1)
	if err := EstimateGroupIntensity(set, 1, []float64{0.5}, 0.2, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// raw density 2/2 = 1, full window 0.2
	if !almostEqual(out[0], 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", out[0])
	}
}

func TestEstimateGroupIntensity_TruncatedWindow(t *testing.T) {
	// One crossover at normalized 0.025, inside the window around 0 and
	// around 0.1.
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{0.5}, SCLength: 20, Centromere: 10, Group: 1},
	})

	out := make([]float64, 2)
	if err := EstimateGroupIntensity(set, 1, []float64{0, 0.1}, 0.2, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(out[0], 10.0, floatTol) {
		t.Errorf("q=0: expected 1/0.1 = 10, got %v", out[0])
	}
	if !almostEqual(out[1], 5.0, floatTol) {
		t.Errorf("q=0.1: expected 1/0.2 = 5, got %v", out[1])
	}
}

func TestEstimateGroupIntensity_ClosedWindow(t *testing.T) {
	// Normalized positions 0.25 and 0.75 sit exactly on the window bounds
	// of a query at 0.5 with window 0.5.
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{5, 15}, SCLength: 20, Centromere: 10, Group: 1},
	})

	for _, algo := range []Algorithm{AlgorithmScan, AlgorithmSorted} {
		out := make([]float64, 1)
		estimatorFor(algo)(set, 1, 1, []float64{0.5}, 0.5, out)
		if out[0] != 4 {
			t.Errorf("%s: expected both bounds counted (2/0.5 = 4), got %v", algo, out[0])
		}
	}
}

func TestEstimateGroupIntensity_OtherGroupsIgnored(t *testing.T) {
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{10}, SCLength: 20, Centromere: 10, Group: 1},
		{Crossovers: []float64{10, 10, 10}, SCLength: 20, Centromere: 10, Group: 2},
		{Crossovers: []float64{10}, SCLength: 20, Centromere: 10, Group: 7},
	})

	out := make([]float64, 1)
	if err := EstimateGroupIntensity(set, 1, []float64{0.5}, 0.5, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 2 {
		t.Errorf("expected 1/1/0.5 = 2, got %v", out[0])
	}
}

func TestEstimateGroupIntensity_EmptyGroup(t *testing.T) {
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{5}, SCLength: 20, Centromere: 10, Group: 1},
	})

	out := []float64{-1}
	err := EstimateGroupIntensity(set, 2, []float64{0.5}, 0.2, out)
	if !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}
	if out[0] != -1 {
		t.Errorf("output written on error: %v", out[0])
	}
}

func TestEstimateGroupIntensity_Errors(t *testing.T) {
	valid := NewSampleSet([]Sample{
		{Crossovers: []float64{5}, SCLength: 20, Centromere: 10, Group: 1},
	})
	badCentromere := NewSampleSet([]Sample{
		{Crossovers: []float64{5}, SCLength: 20, Centromere: 20, Group: 1},
	})

	tests := []struct {
		name    string
		set     *SampleSet
		queries []float64
		window  float64
		outLen  int
		want    error
	}{
		{"zero window", valid, []float64{0.5}, 0, 1, ErrInvalidWindow},
		{"negative window", valid, []float64{0.5}, -0.1, 1, ErrInvalidWindow},
		{"window above one", valid, []float64{0.5}, 1.01, 1, ErrInvalidWindow},
		{"NaN window", valid, []float64{0.5}, math.NaN(), 1, ErrInvalidWindow},
		{"query below zero", valid, []float64{-0.01}, 0.2, 1, ErrOutOfRangeQuery},
		{"query above one", valid, []float64{0.5, 1.5}, 0.2, 2, ErrOutOfRangeQuery},
		{"NaN query", valid, []float64{math.NaN()}, 0.2, 1, ErrOutOfRangeQuery},
		{"invalid centromere", badCentromere, []float64{0.5}, 0.2, 1, ErrInvalidCentromere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, tt.outLen)
			err := EstimateGroupIntensity(tt.set, 1, tt.queries, tt.window, out)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if err := EstimateGroupIntensity(valid, 1, []float64{0.5}, 0.2, make([]float64, 2)); err == nil {
		t.Error("expected error for mismatched output length")
	}
}

func TestGroupIntensity_ScanMatchesSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	set := NewSampleSet(generateSamples(rng, 60, 3, 6))

	queries := make([]float64, 101)
	for i := range queries {
		queries[i] = float64(i) / 100
	}
	// Unordered grid with repeats.
	queries = append(queries, 0.5, 0.013, 0.999, 0)

	for _, window := range []float64{0.01, 0.05, 0.2, 1} {
		for g := 1; g <= 3; g++ {
			m := set.GroupSize(g)
			scan := make([]float64, len(queries))
			sorted := make([]float64, len(queries))
			groupIntensityScan(set, g, m, queries, window, scan)
			groupIntensitySorted(set, g, m, queries, window, sorted)

			for i := range scan {
				if scan[i] != sorted[i] {
					t.Errorf("window=%v group=%d q=%v: scan %v != sorted %v (bitwise)",
						window, g, queries[i], scan[i], sorted[i])
				}
			}
		}
	}
}

func TestGroupIntensity_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	set := NewSampleSet(generateSamples(rng, 40, 2, 4))
	grid, err := UniformGrid(51)
	if err != nil {
		t.Fatal(err)
	}

	out := make([]float64, len(grid))
	for g := 1; g <= 2; g++ {
		if err := EstimateGroupIntensity(set, g, grid, 0.1, out); err != nil {
			t.Fatalf("group %d: unexpected error: %v", g, err)
		}
		for i, v := range out {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("group %d q=%v: intensity %v", g, grid[i], v)
			}
		}
	}
}

func TestGroupIntensity_MirroredData(t *testing.T) {
	// With the centromere at mid-SC the normalized position is p/L, so
	// reflecting every crossover about the centromere reflects the
	// intensity about 0.5.
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{2.5, 5, 7.5, 12.5}, SCLength: 20, Centromere: 10, Group: 1},
		{Crossovers: []float64{17.5, 15, 12.5, 7.5}, SCLength: 20, Centromere: 10, Group: 2},
	})
	queries := []float64{0, 0.125, 0.25, 0.5}
	mirrored := []float64{1, 0.875, 0.75, 0.5}

	left := make([]float64, len(queries))
	right := make([]float64, len(queries))
	for _, window := range []float64{0.125, 0.25, 0.5} {
		if err := EstimateGroupIntensity(set, 1, queries, window, left); err != nil {
			t.Fatal(err)
		}
		if err := EstimateGroupIntensity(set, 2, mirrored, window, right); err != nil {
			t.Fatal(err)
		}
		for i := range left {
			if !almostEqual(left[i], right[i], floatTol) {
				t.Errorf("window=%v: intensity at %v = %v, mirrored at %v = %v",
					window, queries[i], left[i], mirrored[i], right[i])
			}
		}
	}
}

func TestGroupPositions_Sorted(t *testing.T) {
	set := NewSampleSet([]Sample{
		{Crossovers: []float64{15, 5}, SCLength: 20, Centromere: 10, Group: 1},
		{Crossovers: []float64{1}, SCLength: 8, Centromere: 2, Group: 2},
		{Crossovers: []float64{10}, SCLength: 20, Centromere: 10, Group: 1},
	})

	got := groupPositions(set, 1)
	want := []float64{0.25, 0.5, 0.75}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !almostEqual(got[i], want[i], floatTol) {
			t.Errorf("pos[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := groupPositions(set, 3); len(got) != 0 {
		t.Errorf("expected no positions for unused group, got %v", got)
	}
}
