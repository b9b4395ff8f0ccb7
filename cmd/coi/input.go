package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TrevorS/coi"
	"github.com/carbocation/pfx"
)

// ReadSampleFile reads a sample table from path, or from stdin when path is
// "-". The file is closed before returning.
func ReadSampleFile(path string) ([]coi.Sample, error) {
	if path == "-" {
		return ReadSamples(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadSamples(f)
}

// ReadSamples parses a tab-separated sample table, one cell per line:
//
//	group	sclength	centromere	xolocs
//
// xolocs is a comma-separated list of crossover positions in microns and may
// be empty or missing. Lines starting with # are skipped, as is a header line
// whose first column is "group".
func ReadSamples(r io.Reader) ([]coi.Sample, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	var samples []coi.Sample
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "group") {
			continue
		}

		s, err := parseSample(rec)
		if err != nil {
			row, _ := cr.FieldPos(0)
			return nil, pfx.Err(fmt.Errorf("line %d: %w", row, err))
		}
		samples = append(samples, s)
	}

	return samples, nil
}

func parseSample(rec []string) (coi.Sample, error) {
	if len(rec) < 3 || len(rec) > 4 {
		return coi.Sample{}, fmt.Errorf("expected 3 or 4 columns, got %d", len(rec))
	}

	group, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return coi.Sample{}, fmt.Errorf("group: %w", err)
	}
	scLength, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return coi.Sample{}, fmt.Errorf("sclength: %w", err)
	}
	centromere, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return coi.Sample{}, fmt.Errorf("centromere: %w", err)
	}

	var xo []float64
	if len(rec) == 4 {
		xo, err = ParsePositions(rec[3])
		if err != nil {
			return coi.Sample{}, fmt.Errorf("xolocs: %w", err)
		}
	}

	return coi.Sample{
		Crossovers: xo,
		SCLength:   scLength,
		Centromere: centromere,
		Group:      group,
	}, nil
}

// ParsePositions parses a comma-separated list of numbers. An empty string
// yields no positions.
func ParsePositions(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MaxGroup returns the largest group label among samples, or 0 if there are
// none.
func MaxGroup(samples []coi.Sample) int {
	n := 0
	for _, s := range samples {
		n = max(n, s.Group)
	}
	return n
}

// WriteIntensity writes res as a tab-separated table with one row per query
// position and one column per group.
func WriteIntensity(w io.Writer, res *coi.IntensityResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "position")
	for g := range res.Groups {
		fmt.Fprintf(bw, "\tgroup%d", g+1)
	}
	fmt.Fprintln(bw)

	for i, q := range res.Queries {
		fmt.Fprintf(bw, "%g", q)
		for _, row := range res.Groups {
			fmt.Fprintf(bw, "\t%g", row[i])
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}
	return nil
}
