// Package settings contains all the parameters for a core creation run.
package settings

import (
	"runtime"
)

const (
	// DefaultMinSize is the bin acceptance cutoff (in bp) applied when the
	// caller supplies neither a size nor a point-count criterion.
	DefaultMinSize = 1000000

	// DefaultCoreNeighbors is the neighbour count used for core distances
	// when no minPts was given; equivalent to minPts=2.
	DefaultCoreNeighbors = 1

	// DefaultValleySteepness says how much higher a valley's walls have to be
	// than its interior before the valley counts as a cluster candidate.
	DefaultValleySteepness = 2.0
)

type ClusterSettings struct {
	// Contigs shorter than MinLength bp are excluded from the run entirely.
	// Zero means no cutoff.
	MinLength int

	// MinSize is the minimum cumulative contig length (bp) for a bin.
	// Zero means the criterion is not active.
	MinSize int64

	// MinPts is the density parameter: the number of neighbours used for
	// core distances and the minimum contig count for a bin.
	// Zero means the criterion is not active.
	MinPts int

	// SavedDistsPrefix is the path prefix for the distance cache file.
	// Empty means distances are recomputed every run and never saved.
	SavedDistsPrefix string

	// KeepDists requests that freshly computed distances be written back
	// to the cache file.
	KeepDists bool

	// Force allows the run to overwrite an already-clustered profile and to
	// recompute over a stale distance cache.
	Force bool

	// ValleySteepness for cluster boundary detection on the reachability plot.
	ValleySteepness float64

	// CoreNeighbors is the number of other contigs used for core distances.
	// Derived from MinPts, which counts the contig itself, so a bin of
	// exactly MinPts contigs can still look dense.
	CoreNeighbors int

	// Workers for the pairwise distance computation. Defaults to GOMAXPROCS.
	Workers int
}

func (s ClusterSettings) ComputeSettingsFields() ClusterSettings {
	if s.MinSize == 0 && s.MinPts == 0 {
		s.MinSize = DefaultMinSize
	}
	s.CoreNeighbors = s.MinPts - 1
	if s.CoreNeighbors < 1 {
		s.CoreNeighbors = DefaultCoreNeighbors
	}
	if s.ValleySteepness == 0 {
		s.ValleySteepness = DefaultValleySteepness
	}
	if s.Workers == 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	return s
}
