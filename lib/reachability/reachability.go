// Package reachability turns the fused distance matrix into a density-based
// ordering of the contig set.
package reachability

import (
	"container/heap"
	"log"
	"math"

	"github.com/jhaldane/mgbin/lib/distance"
)

// A Record is one step of the reachability ordering.
type Record struct {
	// Index of the contig in the input ordering.
	Index int

	// Reach is the reachability distance the contig was reached with.
	// +Inf for expansion roots.
	Reach float64

	// Core is the contig's core distance: the distance to its k-th nearest
	// neighbour. +Inf when the set has fewer than k other contigs.
	Core float64
}

// CoreDistances returns, for every contig, the distance to its k-th nearest
// other contig under the fused metric.
func CoreDistances(d *distance.Condensed, k int) []float64 {
	n := d.Points
	cores := make([]float64, n)
	if k < 1 {
		k = 1
	}
	if n-1 < k {
		for i := range cores {
			cores[i] = math.Inf(1)
		}
		return cores
	}
	// Keep the k smallest distances per contig in a small insertion buffer.
	nearest := make([]float64, k)
	for i := 0; i < n; i++ {
		for x := range nearest {
			nearest[x] = math.Inf(1)
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			v := d.At(i, j)
			if v >= nearest[k-1] {
				continue
			}
			pos := k - 1
			for pos > 0 && nearest[pos-1] > v {
				nearest[pos] = nearest[pos-1]
				pos--
			}
			nearest[pos] = v
		}
		cores[i] = nearest[k-1]
	}
	return cores
}

type frontierEntry struct {
	index int
	reach float64
}

// The frontier orders unprocessed contigs by their best known candidate
// reachability distance, ties broken by contig index so the ordering is a
// total order.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(a, b int) bool {
	if f[a].reach != f[b].reach {
		return f[a].reach < f[b].reach
	}
	return f[a].index < f[b].index
}
func (f frontier) Swap(a, b int)      { f[a], f[b] = f[b], f[a] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// Order produces the reachability ordering by seed expansion: repeatedly pop
// the frontier minimum (or start a fresh expansion at the lowest-index
// unprocessed contig when the frontier is empty), emit it, and offer every
// unprocessed contig the reachability distance
// max(core distance of the emitted contig, fused distance to it).
// Every contig appears exactly once; identical inputs produce an identical
// sequence.
func Order(d *distance.Condensed, cores []float64) []Record {
	n := d.Points
	records := make([]Record, 0, n)
	if n == 0 {
		return records
	}

	processed := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}

	f := &frontier{}
	heap.Init(f)
	nextRoot := 0
	row := make([]float64, n)

	for len(records) < n {
		current := -1
		reach := math.Inf(1)
		for f.Len() > 0 {
			entry := heap.Pop(f).(frontierEntry)
			if processed[entry.index] || entry.reach != best[entry.index] {
				// Superseded by a closer candidate pushed later.
				continue
			}
			current = entry.index
			reach = entry.reach
			break
		}
		if current < 0 {
			for processed[nextRoot] {
				nextRoot++
			}
			current = nextRoot
			reach = math.Inf(1)
		}

		processed[current] = true
		records = append(records, Record{Index: current, Reach: reach, Core: cores[current]})

		d.Row(current, row)
		for j := 0; j < n; j++ {
			if processed[j] || j == current {
				continue
			}
			candidate := math.Max(cores[current], row[j])
			if candidate < best[j] {
				best[j] = candidate
				heap.Push(f, frontierEntry{index: j, reach: candidate})
			}
		}
	}
	log.Printf("reachability ordering covers %d contigs\n", len(records))
	return records
}
