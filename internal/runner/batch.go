package runner

import (
	"context"
	"sort"
	"sync"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

// Batch analyzes every orbit in configs on up to workers parallel workers
// and returns results ordered by key. Each orbit's analysis is
// self-contained, so workers share nothing; a validation failure or
// mid-run singularity marks only that orbit's result as faulted and never
// stops the batch.
func Batch(ctx context.Context, configs map[string]orbit.Config, workers int, opts Options) []Result {
	keys := make([]string, 0, len(configs))
	for key := range configs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	results := make([]Result, len(keys))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Integrator scratch buffers are per-worker.
			r := New(opts)

			for idx := range jobs {
				key := keys[idx]
				res, err := r.TestOrbit(ctx, key, configs[key])
				if err != nil {
					res.Fault = err.Error()
				}
				results[idx] = res
			}
		}()
	}

	for idx := range keys {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}
