// Package profile is the feature store the clustering engine reads contig
// features from and writes bin assignments back to.
package profile

import (
	"fmt"

	"github.com/jhaldane/mgbin/lib/datatypes"
)

// A Store supplies contig features and accepts bin assignments.
type Store interface {
	// Contigs returns the contigs with length >= minLength, in a stable
	// order. The returned slices must not be mutated by the caller.
	Contigs(minLength int) ([]datatypes.Contig, error)

	// SetBinAssignments records the bin label for every named contig.
	// Contigs not named keep their current label. The update is
	// all-or-nothing: either every label is written or none is.
	SetBinAssignments(bins map[string]int) error
}

// A MemoryStore keeps a profile in memory. Used by tests and by callers that
// load features themselves.
type MemoryStore struct {
	contigs []datatypes.Contig
	bins    map[string]int
}

func NewMemoryStore(contigs []datatypes.Contig) *MemoryStore {
	return &MemoryStore{contigs: contigs, bins: make(map[string]int)}
}

func (m *MemoryStore) Contigs(minLength int) ([]datatypes.Contig, error) {
	ret := make([]datatypes.Contig, 0, len(m.contigs))
	for _, c := range m.contigs {
		if c.Length >= minLength {
			ret = append(ret, c)
		}
	}
	return ret, nil
}

func (m *MemoryStore) SetBinAssignments(bins map[string]int) error {
	known := make(map[string]bool, len(m.contigs))
	for _, c := range m.contigs {
		known[c.Name] = true
	}
	for name := range bins {
		if !known[name] {
			return fmt.Errorf("bin assignment for unknown contig %s", name)
		}
	}
	for name, bid := range bins {
		m.bins[name] = bid
	}
	return nil
}

// BinAssignments returns the current labels, defaulting to unbinned.
func (m *MemoryStore) BinAssignments() map[string]int {
	ret := make(map[string]int, len(m.contigs))
	for _, c := range m.contigs {
		ret[c.Name] = m.bins[c.Name]
	}
	return ret
}
