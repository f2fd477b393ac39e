// Package graphs
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Random undirected labeled graphs under the Gilbert model G(n, p), plus
// exact enumeration of labeled graphs by connectedness (OEIS A006125,
// A001187, A054592) and Gilbert's recursive connectedness probability.
//
// A Gnp value owns its adjacency storage and is rebuilt in place between
// trials, so a Monte-Carlo experiment allocates one graph per worker and
// reuses it for every trial.
package graphs
