package profile

import (
	"fmt"
	"log"
	"os"

	"github.com/jhaldane/mgbin/lib/datatypes"
	"github.com/parquet-go/parquet-go"
)

// contigRow is the parquet schema of a profile file: one row per contig with
// its features and current bin label.
type contigRow struct {
	Name     string    `parquet:"name,zstd"`
	Length   int64     `parquet:"length"`
	GC       float64   `parquet:"gc"`
	Coverage []float64 `parquet:"coverage,list"`
	KmerSig  []float64 `parquet:"kmer_sig,list"`
	Bin      int64     `parquet:"bin"`
}

// A ParquetStore is a profile kept in a single parquet file. Row order is
// the contig order; it never changes after the profile is created, so runs
// over the same file see the same ordering.
type ParquetStore struct {
	path string
}

func NewParquetStore(path string) *ParquetStore {
	return &ParquetStore{path: path}
}

func (p *ParquetStore) readRows() ([]contigRow, error) {
	rows, err := parquet.ReadFile[contigRow](p.path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %v", p.path, err)
	}
	return rows, nil
}

func (p *ParquetStore) Contigs(minLength int) ([]datatypes.Contig, error) {
	rows, err := p.readRows()
	if err != nil {
		return nil, err
	}
	ret := make([]datatypes.Contig, 0, len(rows))
	for _, row := range rows {
		if int(row.Length) < minLength {
			continue
		}
		ret = append(ret, datatypes.Contig{
			Name:     row.Name,
			Length:   int(row.Length),
			GC:       row.GC,
			Coverage: row.Coverage,
			KmerSig:  row.KmerSig,
		})
	}
	return ret, nil
}

// IsClustered reports whether any contig already carries a bin label.
func (p *ParquetStore) IsClustered() (bool, error) {
	rows, err := p.readRows()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Bin != datatypes.UnbinnedId {
			return true, nil
		}
	}
	return false, nil
}

// SetBinAssignments rewrites the profile with the new labels. The rewrite
// goes to a temporary file and is renamed over the original, so a failure
// leaves the previous profile intact.
func (p *ParquetStore) SetBinAssignments(bins map[string]int) error {
	rows, err := p.readRows()
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(rows))
	for _, row := range rows {
		names[row.Name] = true
	}
	for name := range bins {
		if !names[name] {
			return fmt.Errorf("bin assignment for unknown contig %s", name)
		}
	}
	for i := range rows {
		if bid, ok := bins[rows[i].Name]; ok {
			rows[i].Bin = int64(bid)
		}
	}
	return writeRows(p.path, rows)
}

// WriteProfile creates a profile file from contigs, all unbinned.
func WriteProfile(path string, contigs []datatypes.Contig) error {
	rows := make([]contigRow, len(contigs))
	for i, c := range contigs {
		rows[i] = contigRow{
			Name:     c.Name,
			Length:   int64(c.Length),
			GC:       c.GC,
			Coverage: c.Coverage,
			KmerSig:  c.KmerSig,
			Bin:      datatypes.UnbinnedId,
		}
	}
	return writeRows(path, rows)
}

func writeRows(path string, rows []contigRow) error {
	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return err
	}
	writer := parquet.NewGenericWriter[contigRow](file)
	_, err = writer.Write(rows)
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	log.Printf("wrote %d contig rows to %s\n", len(rows), path)
	return nil
}
