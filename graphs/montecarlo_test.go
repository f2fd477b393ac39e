// File: graphs/montecarlo_test.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package graphs_test

import (
	"context"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/andrewha/mds2022/graphs"
)

func TestMonteCarloValidation(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	_, err := graphs.MonteCarlo(ctx, 0, 0.5, 10, 1, 42)
	c.Assert(err, qt.Equals, graphs.ErrInvalidOrder)

	_, err = graphs.MonteCarlo(ctx, 5, 1.5, 10, 1, 42)
	c.Assert(err, qt.Equals, graphs.ErrInvalidProbability)

	_, err = graphs.MonteCarlo(ctx, 5, 0.5, 0, 1, 42)
	c.Assert(err, qt.Equals, graphs.ErrInvalidTrials)
}

func TestMonteCarloCompleteGraphs(t *testing.T) {
	c := qt.New(t)

	exp, err := graphs.MonteCarlo(context.Background(), 6, 1, 100, 4, 42)
	c.Assert(err, qt.IsNil)

	c.Assert(exp.Trials, qt.Equals, 100)
	c.Assert(exp.Connected, qt.Equals, 100)
	c.Assert(exp.PConnected(), qt.Equals, 1.0)
	c.Assert(exp.Edges, qt.HasLen, 100)
	for _, edges := range exp.Edges {
		c.Assert(edges, qt.Equals, exp.Params.MaxEdges)
	}
}

func TestMonteCarloEmptyGraphs(t *testing.T) {
	c := qt.New(t)

	exp, err := graphs.MonteCarlo(context.Background(), 5, 0, 50, 2, 42)
	c.Assert(err, qt.IsNil)

	c.Assert(exp.Connected, qt.Equals, 0)
	for _, edges := range exp.Edges {
		c.Assert(edges, qt.Equals, 0)
	}
}

func TestMonteCarloSingleVertex(t *testing.T) {
	c := qt.New(t)

	// The one-vertex graph is connected no matter the edge probability.
	exp, err := graphs.MonteCarlo(context.Background(), 1, 0, 10, 2, 42)
	c.Assert(err, qt.IsNil)
	c.Assert(exp.Connected, qt.Equals, 10)
}

func TestMonteCarloSplitsTrialsAcrossWorkers(t *testing.T) {
	c := qt.New(t)

	exp, err := graphs.MonteCarlo(context.Background(), 4, 0.5, 10, 3, 42)
	c.Assert(err, qt.IsNil)
	c.Assert(exp.Trials, qt.Equals, 10)
	c.Assert(exp.Edges, qt.HasLen, 10)

	// More workers than trials is clamped, not an error.
	exp, err = graphs.MonteCarlo(context.Background(), 4, 0.5, 2, 16, 42)
	c.Assert(err, qt.IsNil)
	c.Assert(exp.Edges, qt.HasLen, 2)
}

func TestMonteCarloMatchesExactProbability(t *testing.T) {
	if testing.Short() {
		t.Skip("sampling test")
	}
	c := qt.New(t)

	const n, p = 6, 0.5
	exp, err := graphs.MonteCarlo(context.Background(), n, p, 20000, 4, 42)
	c.Assert(err, qt.IsNil)

	exact := graphs.ProbConnected(n, p)
	c.Assert(math.Abs(exp.PConnected()-exact) < 0.02, qt.IsTrue,
		qt.Commentf("empirical %v, exact %v", exp.PConnected(), exact))
}

func TestMonteCarloHonorsCancellation(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := graphs.MonteCarlo(ctx, 8, 0.5, 1000, 2, 42)
	c.Assert(err, qt.IsNotNil)
}

func TestExperimentPConnectedZeroValue(t *testing.T) {
	c := qt.New(t)

	var exp graphs.Experiment
	c.Assert(exp.PConnected(), qt.Equals, 0.0)
}
