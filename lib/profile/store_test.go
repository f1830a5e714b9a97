package profile

import (
	"testing"

	"github.com/jhaldane/mgbin/lib/datatypes"
)

func sampleContigs() []datatypes.Contig {
	return []datatypes.Contig{
		{Name: "a", Length: 2500, GC: 0.4, Coverage: []float64{10, 20}, KmerSig: []float64{0.5, 0.5}},
		{Name: "b", Length: 400, GC: 0.5, Coverage: []float64{1, 2}, KmerSig: []float64{0.3, 0.7}},
		{Name: "c", Length: 900, GC: 0.6, Coverage: []float64{5, 5}, KmerSig: []float64{0.6, 0.4}},
	}
}

func TestMemoryStoreLengthFilter(t *testing.T) {
	store := NewMemoryStore(sampleContigs())
	contigs, err := store.Contigs(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contigs) != 2 {
		t.Fatalf("expected 2 contigs above the cutoff but got %d", len(contigs))
	}
	if contigs[0].Name != "a" || contigs[1].Name != "c" {
		t.Errorf("filter changed the contig order: %s, %s", contigs[0].Name, contigs[1].Name)
	}

	contigs, err = store.Contigs(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contigs) != 3 {
		t.Errorf("expected no filtering with a zero cutoff but got %d contigs", len(contigs))
	}
}

func TestMemoryStoreSetBinAssignments(t *testing.T) {
	store := NewMemoryStore(sampleContigs())
	if err := store.SetBinAssignments(map[string]int{"a": 1, "c": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bins := store.BinAssignments()
	if bins["a"] != 1 || bins["c"] != 1 {
		t.Errorf("assignments not recorded: %v", bins)
	}
	if bins["b"] != datatypes.UnbinnedId {
		t.Errorf("contig b should still be unbinned but has bin %d", bins["b"])
	}
}

func TestMemoryStoreRejectsUnknownContig(t *testing.T) {
	store := NewMemoryStore(sampleContigs())
	err := store.SetBinAssignments(map[string]int{"a": 1, "ghost": 2})
	if err == nil {
		t.Fatalf("expected an error for an unknown contig name")
	}
	// The update is all-or-nothing: the valid part must not have been applied.
	if store.BinAssignments()["a"] != datatypes.UnbinnedId {
		t.Errorf("a partial assignment was applied before the error")
	}
}
