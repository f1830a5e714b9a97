package datatypes

import (
	"testing"
)

func fingerprintContigs() []Contig {
	return []Contig{
		{Name: "a", Length: 2500},
		{Name: "b", Length: 900},
	}
}

func TestFingerprintIsStable(t *testing.T) {
	first := Fingerprint(fingerprintContigs(), 500)
	second := Fingerprint(fingerprintContigs(), 500)
	if first != second {
		t.Errorf("fingerprint differs between identical inputs: %016x vs %016x", first, second)
	}
}

func TestFingerprintChanges(t *testing.T) {
	base := Fingerprint(fingerprintContigs(), 500)

	renamed := fingerprintContigs()
	renamed[0].Name = "aa"
	if Fingerprint(renamed, 500) == base {
		t.Errorf("renaming a contig must change the fingerprint")
	}

	resized := fingerprintContigs()
	resized[1].Length = 901
	if Fingerprint(resized, 500) == base {
		t.Errorf("changing a contig length must change the fingerprint")
	}

	if Fingerprint(fingerprintContigs(), 600) == base {
		t.Errorf("changing the length cutoff must change the fingerprint")
	}

	if Fingerprint(fingerprintContigs()[:1], 500) == base {
		t.Errorf("dropping a contig must change the fingerprint")
	}
}

func TestFingerprintFeatureValuesDoNotMatter(t *testing.T) {
	// Distances are keyed by contig identity, not by the feature values a
	// cache was computed from; the features are part of the profile itself.
	with := fingerprintContigs()
	with[0].Coverage = []float64{1, 2, 3}
	with[0].GC = 0.5
	if Fingerprint(with, 500) != Fingerprint(fingerprintContigs(), 500) {
		t.Errorf("feature values must not enter the fingerprint")
	}
}
