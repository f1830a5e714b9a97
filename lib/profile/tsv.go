package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhaldane/mgbin/lib/datatypes"
)

// ImportTSV parses a tab-separated feature table into contigs. The header
// names the columns: "name", "length" and "gc" are fixed, every column
// starting with "cov_" joins the coverage vector and every column starting
// with "mer_" joins the kmer signature, in header order.
func ImportTSV(r io.Reader) ([]datatypes.Contig, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("empty profile table")
	}
	header := strings.Split(strings.TrimRight(scanner.Text(), "\n"), "\t")

	nameCol, lengthCol, gcCol := -1, -1, -1
	var covCols, merCols []int
	for i, h := range header {
		switch {
		case h == "name":
			nameCol = i
		case h == "length":
			lengthCol = i
		case h == "gc":
			gcCol = i
		case strings.HasPrefix(h, "cov_"):
			covCols = append(covCols, i)
		case strings.HasPrefix(h, "mer_"):
			merCols = append(merCols, i)
		}
	}
	if nameCol < 0 || lengthCol < 0 {
		return nil, fmt.Errorf("profile table header is missing name or length columns")
	}
	if len(covCols) == 0 || len(merCols) == 0 {
		return nil, fmt.Errorf("profile table header has no cov_ or no mer_ columns")
	}

	var contigs []datatypes.Contig
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("line %d has %d fields, header has %d", lineNo, len(fields), len(header))
		}
		length, err := strconv.Atoi(fields[lengthCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad length %q: %v", lineNo, fields[lengthCol], err)
		}
		if length <= 0 {
			return nil, fmt.Errorf("line %d: contig length must be positive, got %d", lineNo, length)
		}
		c := datatypes.Contig{
			Name:     fields[nameCol],
			Length:   length,
			Coverage: make([]float64, len(covCols)),
			KmerSig:  make([]float64, len(merCols)),
		}
		if gcCol >= 0 {
			if c.GC, err = strconv.ParseFloat(fields[gcCol], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad gc value %q: %v", lineNo, fields[gcCol], err)
			}
		}
		for x, col := range covCols {
			if c.Coverage[x], err = strconv.ParseFloat(fields[col], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad coverage value %q: %v", lineNo, fields[col], err)
			}
		}
		for x, col := range merCols {
			if c.KmerSig[x], err = strconv.ParseFloat(fields[col], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad kmer frequency %q: %v", lineNo, fields[col], err)
			}
		}
		contigs = append(contigs, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return contigs, nil
}
