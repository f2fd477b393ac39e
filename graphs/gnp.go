// File: graphs/gnp.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Gilbert-model random graph G(n, p): every one of the C(n, 2) possible
// edges occurs independently with probability p.

package graphs

import (
	"math/rand"

	"github.com/eapache/queue"

	"github.com/andrewha/mds2022/stats"
)

// Params carries the derived quantities of a G(n, p) experiment.
type Params struct {
	N     int     // number of labeled vertices
	PEdge float64 // edge probability

	MinEdges  int // n-1, the fewest edges of any connected graph (a tree)
	MaxEdges  int // C(n, 2), edges of the complete graph
	CritEdges int // C(n-1, 2), connectedness threshold

	TotalGraphs uint64 // 2^MaxEdges labeled graphs; exact through n = 11
	TotalTrees  uint64 // n^(n-2) labeled trees (Cayley); exact through n = 11
}

// NewParams validates n and p and populates the derived quantities.
func NewParams(n int, pEdge float64) (Params, error) {
	if n < 1 {
		return Params{}, ErrInvalidOrder
	}
	if pEdge < 0 || pEdge > 1 {
		return Params{}, ErrInvalidProbability
	}
	p := Params{
		N:           n,
		PEdge:       pEdge,
		MinEdges:    n - 1,
		MaxEdges:    int(stats.Binom(n, 2)),
		CritEdges:   int(stats.Binom(n-1, 2)),
		TotalGraphs: TotalLabeled(n),
		TotalTrees:  1,
	}
	for i := 0; i < n-2; i++ {
		p.TotalTrees *= uint64(n)
	}
	return p, nil
}

// Gnp is a random undirected graph on n labeled vertices. The vertex-pair
// list is fixed at construction; Build redraws the edge set in place.
type Gnp struct {
	params Params
	pairs  [][2]int // all C(n, 2) vertex pairs (u, v), u < v
	adj    [][]bool
	edges  int
}

// NewGnp allocates an empty graph for the given order and edge probability.
func NewGnp(n int, pEdge float64) (*Gnp, error) {
	params, err := NewParams(n, pEdge)
	if err != nil {
		return nil, err
	}
	g := &Gnp{
		params: params,
		pairs:  make([][2]int, 0, params.MaxEdges),
		adj:    make([][]bool, n),
	}
	for u := 0; u < n; u++ {
		g.adj[u] = make([]bool, n)
		for v := u + 1; v < n; v++ {
			g.pairs = append(g.pairs, [2]int{u, v})
		}
	}
	return g, nil
}

// Params returns the derived experiment parameters.
func (g *Gnp) Params() Params { return g.params }

// Build redraws the edge set: one Bernoulli(p) draw per vertex pair.
// Any previous edges are discarded first, so a trial loop can call Build
// repeatedly on the same graph.
func (g *Gnp) Build(rng *rand.Rand) {
	g.Reset()
	for _, pair := range g.pairs {
		if stats.Bernoulli(rng, g.params.PEdge) {
			g.AddEdge(pair[0], pair[1])
		}
	}
}

// Reset removes every edge, returning the graph to its freshly
// constructed state.
func (g *Gnp) Reset() {
	for u := range g.adj {
		for v := range g.adj[u] {
			g.adj[u][v] = false
		}
	}
	g.edges = 0
}

// AddEdge inserts the undirected edge {u, v}. Out-of-range endpoints,
// self-loops and duplicate edges are ignored.
func (g *Gnp) AddEdge(u, v int) {
	n := g.params.N
	if u < 0 || v < 0 || u >= n || v >= n || u == v || g.adj[u][v] {
		return
	}
	g.adj[u][v] = true
	g.adj[v][u] = true
	g.edges++
}

// HasEdge reports whether the undirected edge {u, v} is present.
func (g *Gnp) HasEdge(u, v int) bool {
	n := g.params.N
	if u < 0 || v < 0 || u >= n || v >= n {
		return false
	}
	return g.adj[u][v]
}

// Edges returns the number of edges in the current draw.
func (g *Gnp) Edges() int { return g.edges }

// Components counts connected components by depth-first search.
func (g *Gnp) Components() int {
	visited := make([]bool, g.params.N)
	count := 0
	for v := range visited {
		if !visited[v] {
			count++
			g.dfs(v, visited)
		}
	}
	return count
}

func (g *Gnp) dfs(v int, visited []bool) {
	visited[v] = true
	for u, adjacent := range g.adj[v] {
		if adjacent && !visited[u] {
			g.dfs(u, visited)
		}
	}
}

// ComponentsBFS counts connected components by breadth-first search over
// a FIFO frontier. It always agrees with Components; the traversals only
// differ in visit order.
func (g *Gnp) ComponentsBFS() int {
	visited := make([]bool, g.params.N)
	count := 0
	for v := range visited {
		if visited[v] {
			continue
		}
		count++
		visited[v] = true
		frontier := queue.New()
		frontier.Add(v)
		for frontier.Length() > 0 {
			w := frontier.Remove().(int)
			for u, adjacent := range g.adj[w] {
				if adjacent && !visited[u] {
					visited[u] = true
					frontier.Add(u)
				}
			}
		}
	}
	return count
}

// IsConnected reports whether the graph has exactly one connected component.
func (g *Gnp) IsConnected() bool { return g.Components() == 1 }
