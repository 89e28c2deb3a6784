package sketch

import (
	"sort"
	"testing"

	"sketchtree/src/misc"
)

var (
	kmerSize   = uint(7)
	sketchSize = uint(32)
	hashSeed   = uint64(42)
	seqA       = []byte("ACTGCGTGCGTGAAACGTGCACGTGACGTG")
	seqB       = []byte("TTGACCGTAAACCGTGTGTGCCCTAGATAG")
)

// collectHashes is a helper function to drain a hash stream into a slice
func collectHashes(hashChan <-chan uint64) []uint64 {
	hashes := []uint64{}
	for hv := range hashChan {
		hashes = append(hashes, hv)
	}
	return hashes
}

// revComp is a helper function to reverse complement a sequence
func revComp(seq []byte) []byte {
	complement := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	rc := make([]byte, len(seq))
	for i, base := range seq {
		rc[len(seq)-1-i] = complement[base]
	}
	return rc
}

func TestKmerCount(t *testing.T) {
	hasher := NewKmerHasher(kmerSize, hashSeed)
	hashes := collectHashes(hasher.Hash(seqA))
	wanted := len(seqA) - int(kmerSize) + 1
	if len(hashes) != wanted {
		t.Fatalf("expected %d k-mer hashes, got %d", wanted, len(hashes))
	}

	// a sequence shorter than k yields nothing
	if got := collectHashes(hasher.Hash(seqA[:kmerSize-1])); len(got) != 0 {
		t.Fatalf("sequence shorter than k should yield no hashes, got %d", len(got))
	}

	// the boundary case: sequence length == k yields exactly one hash
	if got := collectHashes(hasher.Hash(seqA[:kmerSize])); len(got) != 1 {
		t.Fatalf("sequence of length k should yield one hash, got %d", len(got))
	}
}

func TestCanonicalHashing(t *testing.T) {
	hasher := NewKmerHasher(kmerSize, hashSeed)
	forward := collectHashes(hasher.Hash(seqA))
	reverse := collectHashes(hasher.Hash(revComp(seqA)))

	// strand orientation must not affect the hash values
	sort.Slice(forward, func(i, j int) bool { return forward[i] < forward[j] })
	sort.Slice(reverse, func(i, j int) bool { return reverse[i] < reverse[j] })
	if !misc.Uint64SliceEqual(forward, reverse) {
		t.Fatal("hashing a sequence and its reverse complement gave different hash sets")
	}
}

func TestInvalidBases(t *testing.T) {
	hasher := NewKmerHasher(kmerSize, hashSeed)

	// place an N in the middle of the sequence; every window covering it must be skipped
	withN := make([]byte, len(seqA))
	copy(withN, seqA)
	nPos := 15
	withN[nPos] = 'N'
	hashes := collectHashes(hasher.Hash(withN))
	wanted := (nPos - int(kmerSize) + 1) + (len(seqA) - nPos - 1 - int(kmerSize) + 1)
	if len(hashes) != wanted {
		t.Fatalf("expected %d k-mer hashes around the N, got %d", wanted, len(hashes))
	}

	// a sequence of only invalid characters yields nothing
	if got := collectHashes(hasher.Hash([]byte("NNNNNNNNNN"))); len(got) != 0 {
		t.Fatalf("all-N sequence should yield no hashes, got %d", len(got))
	}
}

func TestHasherDeterminism(t *testing.T) {
	first := collectHashes(NewKmerHasher(kmerSize, hashSeed).Hash(seqA))
	second := collectHashes(NewKmerHasher(kmerSize, hashSeed).Hash(seqA))
	if !misc.Uint64SliceEqual(first, second) {
		t.Fatal("two hashers with the same seed disagreed")
	}
	reseeded := collectHashes(NewKmerHasher(kmerSize, hashSeed+1).Hash(seqA))
	if misc.Uint64SliceEqual(first, reseeded) {
		t.Fatal("changing the seed did not change the hash values")
	}
}
