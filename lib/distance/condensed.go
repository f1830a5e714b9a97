// Package distance computes the fused contig dissimilarities that the
// clustering runs on.
package distance

import (
	"fmt"
)

// A Condensed holds the upper triangle of a symmetric, zero-diagonal
// dissimilarity matrix as a flat vector, pair (i, j) with i < j at
// PairIndex(i, j, n).
type Condensed struct {
	Points int
	Dists  []float64
}

func NewCondensed(points int) *Condensed {
	return &Condensed{
		Points: points,
		Dists:  make([]float64, points*(points-1)/2),
	}
}

// FromValues wraps an existing condensed vector, e.g. one read back from the
// distance cache.
func FromValues(points int, dists []float64) (*Condensed, error) {
	want := points * (points - 1) / 2
	if len(dists) != want {
		return nil, fmt.Errorf("condensed vector has %d values but %d points need %d", len(dists), points, want)
	}
	return &Condensed{Points: points, Dists: dists}, nil
}

// PairIndex returns the condensed index for the pair (i, j), i != j,
// in a matrix over n points.
func PairIndex(i int, j int, n int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// At returns the dissimilarity between points i and j. The diagonal is zero.
func (c *Condensed) At(i int, j int) float64 {
	if i == j {
		return 0.0
	}
	return c.Dists[PairIndex(i, j, c.Points)]
}

// Row copies the distances from point i to every point into out, which must
// have length c.Points. out[i] is zero.
func (c *Condensed) Row(i int, out []float64) {
	for j := 0; j < c.Points; j++ {
		out[j] = c.At(i, j)
	}
}
