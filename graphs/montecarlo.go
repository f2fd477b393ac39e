// File: graphs/montecarlo.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Parallel Monte-Carlo estimation of G(n, p) connectivity.

package graphs

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Experiment aggregates one Monte-Carlo run: the edge count of every
// sampled graph plus how many samples came out connected.
type Experiment struct {
	Params    Params
	Trials    int
	Connected int   // samples with a single component
	Edges     []int // edge count per sample; trial order is not preserved
}

// PConnected returns the empirical probability of connectedness.
func (e *Experiment) PConnected() float64 {
	if e.Trials == 0 {
		return 0
	}
	return float64(e.Connected) / float64(e.Trials)
}

// MonteCarlo samples trials graphs G(n, p) across workers goroutines.
// Worker w draws from its own stream seeded with seed+w and reuses a
// single graph for all of its trials, so a run is reproducible given
// the same seed and worker count.
func MonteCarlo(ctx context.Context, n int, pEdge float64, trials, workers int, seed int64) (*Experiment, error) {
	params, err := NewParams(n, pEdge)
	if err != nil {
		return nil, err
	}
	if trials < 1 {
		return nil, ErrInvalidTrials
	}
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	perWorker := trials / workers
	extra := trials % workers

	edges := make([][]int, workers)
	connected := make([]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		quota := perWorker
		if w < extra {
			quota++
		}
		g.Go(func() error {
			graph, err := NewGnp(n, pEdge)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed + int64(w)))
			local := make([]int, 0, quota)
			for t := 0; t < quota; t++ {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				graph.Build(rng)
				local = append(local, graph.Edges())
				if graph.IsConnected() {
					connected[w]++
				}
			}
			edges[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exp := &Experiment{Params: params, Trials: trials}
	for w := 0; w < workers; w++ {
		exp.Connected += connected[w]
		exp.Edges = append(exp.Edges, edges[w]...)
	}
	return exp, nil
}
