package settings

import (
	"testing"
)

func TestComputeSettingsFieldsDefaults(t *testing.T) {
	s := ClusterSettings{}.ComputeSettingsFields()
	if s.MinSize != DefaultMinSize {
		t.Errorf("with no criteria the size default must apply, got %d", s.MinSize)
	}
	if s.CoreNeighbors != DefaultCoreNeighbors {
		t.Errorf("expected the default neighbour count, got %d", s.CoreNeighbors)
	}
	if s.ValleySteepness != DefaultValleySteepness {
		t.Errorf("expected the default steepness, got %f", s.ValleySteepness)
	}
	if s.Workers < 1 {
		t.Errorf("expected a positive worker default, got %d", s.Workers)
	}
}

func TestComputeSettingsFieldsExplicitCriteria(t *testing.T) {
	s := ClusterSettings{MinPts: 4}.ComputeSettingsFields()
	if s.MinSize != 0 {
		t.Errorf("an explicit point criterion must not trigger the size default, got %d", s.MinSize)
	}
	if s.CoreNeighbors != 3 {
		t.Errorf("minPts counts the contig itself, so 4 points mean 3 neighbours, got %d", s.CoreNeighbors)
	}

	s = ClusterSettings{MinSize: 200000}.ComputeSettingsFields()
	if s.MinSize != 200000 {
		t.Errorf("an explicit size must be kept, got %d", s.MinSize)
	}
	if s.MinPts != 0 {
		t.Errorf("the point criterion must stay inactive, got %d", s.MinPts)
	}
}
