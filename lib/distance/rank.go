package distance

import (
	"sort"
)

// WeightedRank replaces every value with its zero-based rank within the
// whole vector. A value with weight w behaves like w copies of itself:
// its rank is the total weight of all strictly smaller values plus half the
// excess weight of its ties, so equal values share the mean of the ranks
// they would occupy. With unit weights this is an ordinary tie-averaged
// ranking.
func WeightedRank(values []float64, weights []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	below := 0.0
	for lo := 0; lo < n; {
		hi := lo
		tieWeight := 0.0
		for hi < n && values[order[hi]] == values[order[lo]] {
			tieWeight += weights[order[hi]]
			hi++
		}
		r := below + (tieWeight-1.0)/2.0
		for k := lo; k < hi; k++ {
			ranks[order[k]] = r
		}
		below += tieWeight
		lo = hi
	}
	return ranks
}
