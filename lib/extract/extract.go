// Package extract walks a reachability ordering and emits flat bins.
package extract

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/jhaldane/mgbin/lib/datatypes"
	"github.com/jhaldane/mgbin/lib/reachability"
)

type Params struct {
	// MinPts is the minimum contig count for a bin. Zero means not active.
	MinPts int

	// MinSize is the minimum cumulative contig length for a bin, in bp.
	// Zero means not active.
	MinSize int64

	// Steepness says how much higher a valley's bounding walls must be than
	// any reachability inside it before the valley counts as a candidate.
	Steepness float64
}

// Bins extracts flat clusters from the reachability ordering.
//
// The reachability plot is split recursively at its highest interior
// reachability (ties go to the earliest position) until segments are
// candidate valleys: every interior reachability is finite and at most
// wall/steepness, where the wall is the smaller of the reachability the
// segment was entered with and the one that climbs out of it. A deeper
// valley inside a shallower one wins: a segment only becomes a bin when none
// of its sub-valleys were accepted. Candidates that fail the size criteria
// fall through to the unbinned label, as does everything between valleys.
//
// The returned labels are aligned with the contig ordering the distance
// matrix was built over. Bin ids are assigned in scan order starting at 1;
// datatypes.UnbinnedId marks the remainder. Every contig gets a label.
func Bins(records []reachability.Record, lengths []int, p Params) ([]int, int) {
	n := len(records)
	labels := make([]int, n)
	if n == 0 {
		return labels, 0
	}
	if p.Steepness <= 0 {
		p.Steepness = 1.0
	}

	e := &extractor{records: records, lengths: lengths, params: p}
	accepted := e.segments(0, n, math.Inf(1), math.Inf(1))
	sort.Slice(accepted, func(a, b int) bool { return accepted[a].lo < accepted[b].lo })

	for bid, seg := range accepted {
		for i := seg.lo; i < seg.hi; i++ {
			idx := records[i].Index
			if labels[idx] != datatypes.UnbinnedId {
				panic(fmt.Sprintf("contig %d labelled twice during extraction", idx))
			}
			labels[idx] = bid + 1
		}
	}
	log.Printf("extracted %d bins from %d contigs\n", len(accepted), n)
	return labels, len(accepted)
}

type segment struct {
	lo, hi int
}

type extractor struct {
	records []reachability.Record
	lengths []int
	params  Params
}

// segments returns the accepted bins inside records[lo:hi). leftWall is the
// reachability that entered the segment, rightWall the one following it.
func (e *extractor) segments(lo int, hi int, leftWall float64, rightWall float64) []segment {
	if hi-lo < 2 {
		return nil
	}

	// The interior reachabilities are the distances between consecutive
	// members of the segment; records[lo].Reach belongs to the wall.
	split := lo + 1
	maxReach := e.records[split].Reach
	for i := lo + 2; i < hi; i++ {
		if e.records[i].Reach > maxReach {
			maxReach = e.records[i].Reach
			split = i
		}
	}

	children := e.segments(lo, split, leftWall, maxReach)
	children = append(children, e.segments(split, hi, maxReach, rightWall)...)
	if len(children) > 0 {
		return children
	}

	wall := math.Min(leftWall, rightWall)
	if math.IsInf(maxReach, 1) {
		return nil
	}
	if maxReach*e.params.Steepness > wall {
		return nil
	}
	if !e.accept(lo, hi) {
		return nil
	}
	return []segment{{lo: lo, hi: hi}}
}

// accept applies the bin quality criteria: enough cumulative bp or enough
// contigs, whichever criteria are active. With neither active every
// candidate valley passes.
func (e *extractor) accept(lo int, hi int) bool {
	if e.params.MinSize == 0 && e.params.MinPts == 0 {
		return true
	}
	if e.params.MinPts > 0 && hi-lo >= e.params.MinPts {
		return true
	}
	if e.params.MinSize > 0 {
		var size int64
		for i := lo; i < hi; i++ {
			size += int64(e.lengths[e.records[i].Index])
		}
		if size >= e.params.MinSize {
			return true
		}
	}
	return false
}
