// Command coi estimates crossover intensity functions from a table of cells
// and prints one column per group.
package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/TrevorS/coi"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("in", "-", "Tab-separated sample table (group, sclength, centromere, xolocs); - for stdin")
	window := flag.Float64("window", coi.DefaultConfig().IntensityWindow, "Full width of the intensity smoothing window, in (0, 1]")
	gridSize := flag.Int("grid", coi.DefaultGridSize, "Number of evenly spaced query positions over [0, 1]")
	at := flag.String("at", "", "Comma-separated query positions in [0, 1]; overrides -grid")
	nGroup := flag.Int("groups", 0, "Number of groups; 0 uses the largest group label in the input")
	workers := flag.Int("workers", 0, "Goroutines to spread groups across; 0 uses all CPUs")
	algorithm := flag.String("algorithm", string(coi.AlgorithmAuto), "Counting strategy: auto, scan or sorted")
	flag.Parse()

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	samples, err := ReadSampleFile(*path)
	if err != nil {
		log.Fatalln(err)
	}
	if *nGroup == 0 {
		*nGroup = MaxGroup(samples)
	}
	log.Println("Read", len(samples), "samples in", *nGroup, "groups")

	var queries []float64
	if *at != "" {
		queries, err = ParsePositions(*at)
	} else {
		queries, err = coi.UniformGrid(*gridSize)
	}
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	cfg := coi.DefaultConfig()
	cfg.IntensityWindow = *window
	cfg.Workers = *workers
	cfg.Algorithm = coi.Algorithm(*algorithm)

	res, err := coi.EstimateIntensity(coi.NewSampleSet(samples), *nGroup, queries, cfg)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := WriteIntensity(os.Stdout, res); err != nil {
		log.Fatalln(err)
	}
}
