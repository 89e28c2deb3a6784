/*
	the seqio package contains types and methods for loading genome sequences prior to sketching
*/
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/compress/gzip"
)

// Genome holds the identifier and raw sequences for one input genome
type Genome struct {
	ID   string   // leaf label used in the matrix and tree (the input file name)
	Seqs [][]byte // one entry per FASTA record
}

// ReadGenomeList reads a genome list file (one FASTA path per line) and returns the paths
func ReadGenomeList(listFile string) ([]string, error) {
	fh, err := os.Open(listFile)
	if err != nil {
		return nil, fmt.Errorf("can't open genome list file: %v", err)
	}
	defer fh.Close()
	genomes := []string{}
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		genomes = append(genomes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading genome list file: %v", err)
	}
	if len(genomes) == 0 {
		return nil, fmt.Errorf("no genomes listed in file: %v", listFile)
	}
	return genomes, nil
}

// LoadGenome reads all FASTA records from a file (gzipped or not) into a Genome
func LoadGenome(fastaFile string) (*Genome, error) {
	fh, err := os.Open(fastaFile)
	if err != nil {
		return nil, fmt.Errorf("can't open genome file %v: %v", fastaFile, err)
	}
	defer fh.Close()

	// decompress the file if it is gzipped
	var reader io.Reader = fh
	if strings.HasSuffix(fastaFile, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("can't decompress genome file %v: %v", fastaFile, err)
		}
		defer gz.Close()
		reader = gz
	}

	genome := &Genome{ID: filepath.Base(fastaFile)}
	fastaReader := fasta.NewReader(reader, linear.NewSeq("", nil, alphabet.DNA))
	scanner := bioseqio.NewScanner(fastaReader)
	for scanner.Next() {
		record := scanner.Seq().(*linear.Seq)
		seq := []byte(record.Seq.String())
		baseCheck(seq)
		genome.Seqs = append(genome.Seqs, seq)
	}
	if err := scanner.Error(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error parsing genome file %v: %v", fastaFile, err)
	}
	if len(genome.Seqs) == 0 {
		return nil, fmt.Errorf("no FASTA records found in genome file: %v", fastaFile)
	}
	return genome, nil
}

// baseCheck converts bases to upper case in place; unexpected characters are left
// for the k-mer hasher to skip over
func baseCheck(seq []byte) {
	for i, base := range seq {
		if base >= 'a' && base <= 'z' {
			seq[i] = base - ('a' - 'A')
		}
	}
}
