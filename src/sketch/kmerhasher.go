// Package sketch contains the densified one-permutation MinHash sketching of genome sequences. The k-mer hashing uses the ntHash rolling hash function.
package sketch

import (
	"github.com/will-rowe/ntHash"
)

// canonical tells ntHash to return the canonical k-mer
const canonical bool = true

// seqNT4table maps nucleotides to their 2-bit encoding, with anything
// other than A/C/G/T mapping to 4
var seqNT4table = [256]uint8{
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 0, 4, 1, 4, 4, 4, 2, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 0, 4, 1, 4, 4, 4, 2, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
}

// KmerHasher streams canonical 64-bit k-mer hash values from nucleotide sequences
type KmerHasher struct {
	kmerSize uint
	seed     uint64
}

// NewKmerHasher is the constructor for a KmerHasher
func NewKmerHasher(kmerSize uint, seed uint64) *KmerHasher {
	return &KmerHasher{
		kmerSize: kmerSize,
		seed:     seed,
	}
}

// Hash returns a channel yielding one hash value per valid k-mer window of the
// sequence. Each k-mer is canonicalised against its reverse complement before
// hashing and the run seed is mixed into every value, so identical k-mers from
// different genomes hash identically. Windows containing a non-ACGT character
// yield no hash value.
func (kh *KmerHasher) Hash(sequence []byte) <-chan uint64 {
	hashChan := make(chan uint64)
	go func() {
		defer close(hashChan)
		for _, segment := range splitValidSegments(sequence, kh.kmerSize) {
			seg := segment
			hasher, err := ntHash.New(&seg, kh.kmerSize)
			if err != nil {
				// segments are guaranteed at least k long
				continue
			}
			for hv := range hasher.Hash(canonical) {
				hashChan <- splitmix64(hv ^ kh.seed)
			}
		}
	}()
	return hashChan
}

// splitValidSegments splits a sequence into maximal A/C/G/T-only runs that are
// long enough to contain at least one k-mer
func splitValidSegments(sequence []byte, kmerSize uint) [][]byte {
	segments := [][]byte{}
	start := 0
	for i := 0; i <= len(sequence); i++ {
		if i < len(sequence) && seqNT4table[sequence[i]] <= 3 {
			continue
		}
		if uint(i-start) >= kmerSize {
			segments = append(segments, sequence[start:i])
		}
		start = i + 1
	}
	return segments
}
