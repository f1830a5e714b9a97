package distance

import (
	"testing"
)

func TestPairIndexCoversUpperTriangle(t *testing.T) {
	for _, n := range []int{2, 3, 7, 10} {
		want := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				got := PairIndex(i, j, n)
				if got != want {
					t.Errorf("n=%d: expected pair (%d,%d) at index %d but got %d", n, i, j, want, got)
				}
				want++
			}
		}
		if want != n*(n-1)/2 {
			t.Errorf("n=%d: covered %d indices, expected %d", n, want, n*(n-1)/2)
		}
	}
}

func TestPairIndexIsSymmetric(t *testing.T) {
	n := 9
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if PairIndex(i, j, n) != PairIndex(j, i, n) {
				t.Errorf("pair index differs for (%d,%d) and (%d,%d)", i, j, j, i)
			}
		}
	}
}

func TestCondensedAt(t *testing.T) {
	c := NewCondensed(4)
	for k := range c.Dists {
		c.Dists[k] = float64(k + 1)
	}
	if c.At(2, 2) != 0.0 {
		t.Errorf("expected zero diagonal but got %f", c.At(2, 2))
	}
	if c.At(1, 3) != c.At(3, 1) {
		t.Errorf("expected symmetric access, got %f and %f", c.At(1, 3), c.At(3, 1))
	}
	if c.At(0, 1) != 1.0 {
		t.Errorf("expected first pair value 1.0 but got %f", c.At(0, 1))
	}

	row := make([]float64, 4)
	c.Row(2, row)
	for j := range row {
		if row[j] != c.At(2, j) {
			t.Errorf("row copy differs from At for column %d: %f vs %f", j, row[j], c.At(2, j))
		}
	}
}

func TestFromValuesRejectsWrongLength(t *testing.T) {
	if _, err := FromValues(5, make([]float64, 9)); err == nil {
		t.Errorf("expected an error for a condensed vector of the wrong length")
	}
	if _, err := FromValues(5, make([]float64, 10)); err != nil {
		t.Errorf("unexpected error for a valid condensed vector: %v", err)
	}
}
