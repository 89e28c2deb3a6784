package sketch

import (
	"fmt"
	"math"
)

// emptyBin marks a bin that has received no k-mer during one-permutation hashing
const emptyBin uint64 = math.MaxUint64

// Sketch is the fixed-length densified MinHash sketch of one genome
type Sketch struct {
	ID         string
	KmerSize   uint
	SketchSize uint
	Bins       []uint64
	Degenerate bool // set when the genome yielded no valid k-mers; every bin is zero
}

// OPHSketcher bins canonical k-mer hashes into a fixed number of slots via
// one-permutation hashing, keeping the minimum value per bin, then densifies
// the empty bins. One OPHSketcher builds one sketch and is not safe for
// concurrent use.
type OPHSketcher struct {
	kmerSize   uint
	sketchSize uint
	seed       uint64
	strategy   DensifyStrategy
	hasher     *KmerHasher
	bins       []uint64
	filled     []bool
	numFilled  uint
}

// NewOPHSketcher is the constructor for an OPHSketcher
func NewOPHSketcher(kmerSize, sketchSize uint, seed uint64, strategy DensifyStrategy) (*OPHSketcher, error) {
	if kmerSize < 1 {
		return nil, fmt.Errorf("k-mer size must be a positive integer (got %d)", kmerSize)
	}
	if sketchSize < 1 {
		return nil, fmt.Errorf("sketch size must be a positive integer (got %d)", sketchSize)
	}

	// init the bins with the empty marker
	bins := make([]uint64, sketchSize)
	for i := range bins {
		bins[i] = emptyBin
	}

	return &OPHSketcher{
		kmerSize:   kmerSize,
		sketchSize: sketchSize,
		seed:       seed,
		strategy:   strategy,
		hasher:     NewKmerHasher(kmerSize, seed),
		bins:       bins,
		filled:     make([]bool, sketchSize),
	}, nil
}

// AddSequence hashes the canonical k-mers of a sequence and records the
// per-bin minima. Sequences shorter than the k-mer size contribute nothing.
func (sk *OPHSketcher) AddSequence(sequence []byte) error {
	for hv := range sk.hasher.Hash(sequence) {

		// route the k-mer to its bin with a secondary hash of the value
		bin := splitmix64(hv) % uint64(sk.sketchSize)
		if hv < sk.bins[bin] {
			sk.bins[bin] = hv
		}
		if !sk.filled[bin] {
			sk.filled[bin] = true
			sk.numFilled++
		}
	}
	return nil
}

// Sketch densifies the bins and returns the finished sketch. The sketcher must
// not be used again afterwards.
func (sk *OPHSketcher) Sketch(id string) *Sketch {
	finished := &Sketch{
		ID:         id,
		KmerSize:   sk.kmerSize,
		SketchSize: sk.sketchSize,
	}

	// a genome with no valid k-mers gets an all-zero sketch and the
	// degenerate flag, so the estimator clips it to the maximum distance
	// instead of computing a biased similarity
	if sk.numFilled == 0 {
		finished.Bins = make([]uint64, sk.sketchSize)
		finished.Degenerate = true
		return finished
	}

	sk.densify()
	finished.Bins = sk.bins
	return finished
}
