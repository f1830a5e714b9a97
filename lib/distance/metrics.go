package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MaxCoverageDistance is the coverage distance assigned to any pair where at
// least one contig has no usable coverage signal (all-zero or constant
// across samples).
const MaxCoverageDistance = 1.0

// CoverageDistance is a correlation distance over per-sample read depths.
// Coverage vectors of contigs from the same organism are proportional across
// samples rather than equal, so the metric has to be scale-invariant:
// sqrt((1 - r) / 2) with r the Pearson correlation, which maps r=1 to 0 and
// r=-1 to 1.
func CoverageDistance(x []float64, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0.0, fmt.Errorf("coverage distance needs arguments of the same length")
	}
	if isConstant(x) || isConstant(y) {
		// No mapped reads, or no variation to correlate on.
		return MaxCoverageDistance, nil
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return MaxCoverageDistance, nil
	}
	if r > 1.0 {
		r = 1.0
	} else if r < -1.0 {
		r = -1.0
	}
	return math.Sqrt((1.0 - r) / 2.0), nil
}

// CompositionDistance is the Hellinger distance between two k-mer frequency
// signatures. Both arguments are frequency distributions.
func CompositionDistance(p []float64, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0.0, fmt.Errorf("composition distance needs arguments of the same length")
	}
	return stat.Hellinger(p, q), nil
}

func isConstant(x []float64) bool {
	if len(x) < 2 {
		return true
	}
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
