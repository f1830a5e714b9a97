package reporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jhaldane/mgbin/lib/datatypes"
)

// A CsvReporter writes bin assignments and bin summaries as csv files under
// a results directory.
type CsvReporter struct {
	directory string
}

func NewCsvReporter(directory string) *CsvReporter {
	return &CsvReporter{directory: directory}
}

// WriteAssignments writes bins.csv: one row per contig with its bin label.
func (c *CsvReporter) WriteAssignments(contigs []datatypes.Contig, bins []int) error {
	path := filepath.Join(c.directory, "bins.csv")
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"name", "length", "bin"}); err != nil {
		return err
	}
	ctr := 0
	for i, contig := range contigs {
		record := []string{contig.Name, strconv.Itoa(contig.Length), strconv.Itoa(bins[i])}
		if err := writer.Write(record); err != nil {
			return err
		}
		ctr++
		if ctr%1000 == 0 {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteBinStats writes bin_stats.csv with one row per bin.
func (c *CsvReporter) WriteBinStats(stats []BinStat) error {
	path := filepath.Join(c.directory, "bin_stats.csv")
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"bin", "size_bp", "num_contigs", "length_median", "length_min", "length_max", "gc_mean", "gc_stddev", "cov_means"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, s := range stats {
		covs := ""
		for i, v := range s.CovMeans {
			if i > 0 {
				covs += "|"
			}
			covs += fmt.Sprintf("%.4f", v)
		}
		record := []string{
			strconv.Itoa(s.Bid),
			strconv.FormatInt(s.Size, 10),
			strconv.Itoa(s.NumContigs),
			fmt.Sprintf("%.1f", s.LengthMedian),
			strconv.Itoa(s.LengthMin),
			strconv.Itoa(s.LengthMax),
			fmt.Sprintf("%.4f", s.GCMean),
			fmt.Sprintf("%.4f", s.GCStdDev),
			covs,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
