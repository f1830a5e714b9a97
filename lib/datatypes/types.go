package datatypes

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// UnbinnedId is the reserved bin label for contigs that did not end up in
// any bin.
const UnbinnedId = 0

// A Contig is the unit being clustered. The feature vectors are immutable
// once a contig has been loaded for a run.
type Contig struct {
	// Name is unique within a profile.
	Name string

	// Length of the assembled sequence in bp.
	Length int

	// GC fraction, only used for reporting.
	GC float64

	// Coverage has one mean read depth value per sample.
	Coverage []float64

	// KmerSig is the k-mer frequency signature, normalized to sum to 1.
	KmerSig []float64
}

// Fingerprint identifies a filtered contig set: the contig names and lengths
// in order, plus the length cutoff that produced the set. A distance cache
// built from a set with a different fingerprint must not be reused.
func Fingerprint(contigs []Contig, minLength int) uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(minLength))
	h.Write(buf[:])
	for _, c := range contigs {
		h.WriteString(c.Name)
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(c.Length))
		h.Write(buf[:])
	}
	return h.Sum64()
}
