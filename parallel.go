package coi

import "sync"

// groupEstimator fills out with the intensity of one group.
type groupEstimator func(set *SampleSet, group, m int, queries []float64, window float64, out []float64)

// estimatorFor returns the per-group estimator implementing algo.
func estimatorFor(algo Algorithm) groupEstimator {
	if algo == AlgorithmScan {
		return groupIntensityScan
	}
	return groupIntensitySorted
}

// estimateGroups runs est for groups 1..len(out) sequentially. out[g-1]
// receives group g and sizes[g-1] is its sample count.
func estimateGroups(set *SampleSet, sizes []int, queries []float64, window float64, est groupEstimator, out [][]float64) {
	for g := range out {
		est(set, g+1, sizes[g], queries, window, out[g])
	}
}

// estimateGroupsParallel is estimateGroups with the groups split into
// contiguous ranges across numWorkers goroutines. Falls back to
// estimateGroups if numWorkers <= 1.
//
// Each group reads the shared set and queries and writes only its own
// output row, so the result is bitwise identical to the sequential run.
func estimateGroupsParallel(set *SampleSet, sizes []int, queries []float64, window float64, est groupEstimator, out [][]float64, numWorkers int) {
	nGroup := len(out)
	if numWorkers <= 1 || nGroup <= 1 {
		estimateGroups(set, sizes, queries, window, est, out)
		return
	}

	var wg sync.WaitGroup
	groupsPerWorker := (nGroup + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * groupsPerWorker
		end := start + groupsPerWorker
		if end > nGroup {
			end = nGroup
		}
		if start >= nGroup {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for g := start; g < end; g++ {
				est(set, g+1, sizes[g], queries, window, out[g])
			}
		}(start, end)
	}

	wg.Wait()
}
