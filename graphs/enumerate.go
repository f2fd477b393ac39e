// File: graphs/enumerate.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Exact enumeration of labeled graphs on n vertices and Gilbert's
// connectedness probability. The integer counts overflow uint64 beyond
// n = 11; results are exact up to and including that order.

package graphs

import (
	"math"

	"github.com/andrewha/mds2022/stats"
)

// TotalLabeled returns the number of labeled graphs on n vertices,
// 2^C(n, 2) (OEIS A006125). The sequence starts 1, 1, 2, 8, 64, 1024.
func TotalLabeled(n int) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << stats.Binom(n, 2)
}

// ConnectedLabeled returns the number of connected labeled graphs on n
// vertices (OEIS A001187), by Harary's recurrence
//
//	C_n = 2^C(n,2) - (1/n) * sum_{k=1}^{n-1} k * C(n,k) * 2^C(n-k,2) * C_k
//
// evaluated bottom-up. The sequence starts 1, 1, 1, 4, 38, 728, 26704.
func ConnectedLabeled(n int) uint64 {
	if n <= 2 {
		return 1
	}
	conn := make([]uint64, n+1)
	conn[0], conn[1], conn[2] = 1, 1, 1
	for m := 3; m <= n; m++ {
		var disconn uint64
		for k := 1; k < m; k++ {
			disconn += uint64(k) * stats.Binom(m, k) *
				(1 << stats.Binom(m-k, 2)) * conn[k]
		}
		conn[m] = (1 << stats.Binom(m, 2)) - disconn/uint64(m)
	}
	return conn[n]
}

// DisconnectedLabeled returns the number of disconnected labeled graphs on
// n vertices (OEIS A054592), the difference between TotalLabeled and
// ConnectedLabeled. The sequence starts 0, 0, 1, 4, 26, 296, 6064.
func DisconnectedLabeled(n int) uint64 {
	if n <= 1 {
		return 0
	}
	return TotalLabeled(n) - ConnectedLabeled(n)
}

// ProbConnected returns the probability that a G(n, p) graph is connected,
// by Gilbert's recurrence
//
//	P_n = 1 - sum_{k=1}^{n-1} C(n-1, k-1) * (1-p)^(k(n-k)) * P_k
//
// evaluated bottom-up. P_1 = 1 by convention.
func ProbConnected(n int, p float64) float64 {
	if n <= 1 {
		return 1
	}
	prob := make([]float64, n+1)
	prob[1] = 1
	for m := 2; m <= n; m++ {
		disconn := 0.0
		for k := 1; k < m; k++ {
			disconn += float64(stats.Binom(m-1, k-1)) *
				math.Pow(1-p, float64(k*(m-k))) * prob[k]
		}
		prob[m] = 1 - disconn
	}
	return prob[n]
}
