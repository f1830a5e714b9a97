package reporter

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestParquetReporterWriteAssignments(t *testing.T) {
	dir := t.TempDir()
	reporter := NewParquetReporter(dir, 0)
	if err := reporter.WriteAssignments(statContigs(), []int{1, 1, 2, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := parquet.ReadFile[BinRow](filepath.Join(dir, "bins.pq"))
	if err != nil {
		t.Fatalf("could not read assignments back: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows but got %d", len(rows))
	}
	if rows[0].Name != "a" || rows[0].Length != 4000 || rows[0].Bin != 1 {
		t.Errorf("first row wrong: %+v", rows[0])
	}
	if rows[3].Name != "d" || rows[3].Bin != 0 {
		t.Errorf("unbinned row wrong: %+v", rows[3])
	}
}

func TestParquetReporterWriteBinStats(t *testing.T) {
	dir := t.TempDir()
	reporter := NewParquetReporter(dir, 0)
	stats := ComputeBinStats(statContigs(), []int{1, 1, 2, 0})
	if err := reporter.WriteBinStats(stats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := parquet.ReadFile[BinStatRow](filepath.Join(dir, "bin_stats.pq"))
	if err != nil {
		t.Fatalf("could not read bin stats back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows but got %d", len(rows))
	}
	if rows[0].Bin != 1 || rows[0].SizeBp != 6000 || rows[0].NumContigs != 2 {
		t.Errorf("bin 1 row wrong: %+v", rows[0])
	}
	if len(rows[0].CovMeans) != 2 || rows[0].CovMeans[0] != 15 || rows[0].CovMeans[1] != 30 {
		t.Errorf("bin 1 coverage means wrong: %v", rows[0].CovMeans)
	}
}
