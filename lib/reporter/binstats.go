// Package reporter writes bin assignments and per-bin summaries.
package reporter

import (
	"math"
	"sort"

	"github.com/jhaldane/mgbin/lib/datatypes"
	"gonum.org/v1/gonum/stat"
)

// A BinStat summarises one bin.
type BinStat struct {
	Bid          int
	Size         int64 // total bp
	NumContigs   int
	LengthMedian float64
	LengthMin    int
	LengthMax    int
	GCMean       float64
	GCStdDev     float64 // NaN for single-contig bins
	CovMeans     []float64
}

// ComputeBinStats summarises every bin. bins is aligned with contigs;
// the unbinned label is skipped. Results are sorted by bin id.
func ComputeBinStats(contigs []datatypes.Contig, bins []int) []BinStat {
	members := make(map[int][]int)
	for i, bid := range bins {
		if bid == datatypes.UnbinnedId {
			continue
		}
		members[bid] = append(members[bid], i)
	}
	bids := make([]int, 0, len(members))
	for bid := range members {
		bids = append(bids, bid)
	}
	sort.Ints(bids)

	ret := make([]BinStat, 0, len(bids))
	for _, bid := range bids {
		indices := members[bid]
		lengths := make([]float64, len(indices))
		gcs := make([]float64, len(indices))
		s := BinStat{Bid: bid, NumContigs: len(indices), LengthMin: math.MaxInt, LengthMax: 0}
		var covSums []float64
		for x, i := range indices {
			c := contigs[i]
			lengths[x] = float64(c.Length)
			gcs[x] = c.GC
			s.Size += int64(c.Length)
			if c.Length < s.LengthMin {
				s.LengthMin = c.Length
			}
			if c.Length > s.LengthMax {
				s.LengthMax = c.Length
			}
			// Coverage vectors are usually uniform, but the reporter also
			// accepts contigs that never went through distance computation.
			if len(c.Coverage) > len(covSums) {
				grown := make([]float64, len(c.Coverage))
				copy(grown, covSums)
				covSums = grown
			}
			for k, v := range c.Coverage {
				covSums[k] += v
			}
		}
		sort.Float64s(lengths)
		s.LengthMedian = median(lengths)
		s.GCMean = stat.Mean(gcs, nil)
		if len(indices) > 1 {
			s.GCStdDev = stat.StdDev(gcs, nil)
		} else {
			s.GCStdDev = math.NaN()
		}
		s.CovMeans = covSums
		for k := range s.CovMeans {
			s.CovMeans[k] /= float64(len(indices))
		}
		ret = append(ret, s)
	}
	return ret
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}
