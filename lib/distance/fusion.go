package distance

import (
	"fmt"
	"log"
	"math"

	"github.com/jhaldane/mgbin/lib/datatypes"
	"golang.org/x/sync/errgroup"
)

// ComputeCondensed fuses coverage and composition dissimilarities for every
// contig pair into one condensed matrix.
//
// Both raw metrics are computed per pair, then each condensed vector is
// rank-transformed across the whole contig set, with ranks weighted by the
// product of the pair's contig lengths so that long contigs dominate the
// scale the way they dominate the assembly. The two rank coordinates are
// normalized to [0,1] by the total weight and fused as their Euclidean norm.
// The result is deterministic for a fixed contig order.
//
// The raw pairwise pass shards row blocks across workers; every row owns a
// contiguous region of the condensed vectors, so the workers never share a
// write target. Everything after the pass is single-threaded.
func ComputeCondensed(contigs []datatypes.Contig, workers int) (*Condensed, error) {
	n := len(contigs)
	if n < 2 {
		return NewCondensed(n), nil
	}
	if err := checkProfiles(contigs); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	pairs := n * (n - 1) / 2
	covDists := make([]float64, pairs)
	compDists := make([]float64, pairs)
	weights := make([]float64, pairs)

	log.Printf("computing %d raw distance pairs for %d contigs on %d workers\n", pairs, n, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		i := i
		g.Go(func() error {
			base := PairIndex(i, i+1, n)
			for j := i + 1; j < n; j++ {
				k := base + (j - i - 1)
				cov, err := CoverageDistance(contigs[i].Coverage, contigs[j].Coverage)
				if err != nil {
					return fmt.Errorf("contigs %s and %s: %v", contigs[i].Name, contigs[j].Name, err)
				}
				comp, err := CompositionDistance(contigs[i].KmerSig, contigs[j].KmerSig)
				if err != nil {
					return fmt.Errorf("contigs %s and %s: %v", contigs[i].Name, contigs[j].Name, err)
				}
				covDists[k] = cov
				compDists[k] = comp
				weights[k] = float64(contigs[i].Length) * float64(contigs[j].Length)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("rank-transforming distance vectors\n")
	covRanks := WeightedRank(covDists, weights)
	compRanks := WeightedRank(compDists, weights)

	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}

	fused := NewCondensed(n)
	for k := 0; k < pairs; k++ {
		fused.Dists[k] = math.Hypot(covRanks[k]/totalWeight, compRanks[k]/totalWeight)
	}
	log.Printf("done fusing distances\n")
	return fused, nil
}

func checkProfiles(contigs []datatypes.Contig) error {
	covDim := len(contigs[0].Coverage)
	sigDim := len(contigs[0].KmerSig)
	if covDim == 0 {
		return fmt.Errorf("contig %s has no coverage vector", contigs[0].Name)
	}
	if sigDim == 0 {
		return fmt.Errorf("contig %s has no kmer signature", contigs[0].Name)
	}
	for _, c := range contigs[1:] {
		if len(c.Coverage) != covDim {
			return fmt.Errorf("contig %s has %d coverage values, expected %d", c.Name, len(c.Coverage), covDim)
		}
		if len(c.KmerSig) != sigDim {
			return fmt.Errorf("contig %s has %d kmer frequencies, expected %d", c.Name, len(c.KmerSig), sigDim)
		}
	}
	// Rank weights are length products; a zero length would zero out every
	// pair it is part of, and an all-zero set makes the total weight zero.
	for _, c := range contigs {
		if c.Length <= 0 {
			return fmt.Errorf("contig %s has non-positive length %d", c.Name, c.Length)
		}
	}
	return nil
}
