package profile

import (
	"strings"
	"testing"
)

const goodTable = "name\tlength\tgc\tcov_s1\tcov_s2\tmer_aa\tmer_ac\n" +
	"contig_1\t2500\t0.41\t10.5\t20\t0.6\t0.4\n" +
	"contig_2\t900\t0.52\t1\t2\t0.3\t0.7\n"

func TestImportTSV(t *testing.T) {
	contigs, err := ImportTSV(strings.NewReader(goodTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contigs) != 2 {
		t.Fatalf("expected 2 contigs but got %d", len(contigs))
	}
	c := contigs[0]
	if c.Name != "contig_1" || c.Length != 2500 || c.GC != 0.41 {
		t.Errorf("first contig parsed wrong: %+v", c)
	}
	if len(c.Coverage) != 2 || c.Coverage[0] != 10.5 || c.Coverage[1] != 20 {
		t.Errorf("coverage parsed wrong: %v", c.Coverage)
	}
	if len(c.KmerSig) != 2 || c.KmerSig[0] != 0.6 || c.KmerSig[1] != 0.4 {
		t.Errorf("kmer signature parsed wrong: %v", c.KmerSig)
	}
}

func TestImportTSVSkipsBlankLines(t *testing.T) {
	contigs, err := ImportTSV(strings.NewReader(goodTable + "\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contigs) != 2 {
		t.Errorf("expected 2 contigs but got %d", len(contigs))
	}
}

func TestImportTSVErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing name column", "length\tcov_s1\tmer_aa\n"},
		{"no coverage columns", "name\tlength\tmer_aa\nc\t100\t0.5\n"},
		{"no kmer columns", "name\tlength\tcov_s1\nc\t100\t3\n"},
		{"field count mismatch", "name\tlength\tcov_s1\tmer_aa\nc\t100\t3\n"},
		{"bad length", "name\tlength\tcov_s1\tmer_aa\nc\tlong\t3\t0.5\n"},
		{"zero length", "name\tlength\tcov_s1\tmer_aa\nc\t0\t3\t0.5\n"},
		{"bad coverage", "name\tlength\tcov_s1\tmer_aa\nc\t100\tdeep\t0.5\n"},
		{"bad kmer frequency", "name\tlength\tcov_s1\tmer_aa\nc\t100\t3\tmuch\n"},
	}
	for _, c := range cases {
		if _, err := ImportTSV(strings.NewReader(c.input)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
