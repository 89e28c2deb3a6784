package sketch

import (
	"math"
	"testing"

	"sketchtree/src/misc"
)

// buildSketch is a helper function to sketch a single sequence
func buildSketch(t *testing.T, seq []byte, k, s uint, seed uint64, strategy DensifyStrategy) *Sketch {
	t.Helper()
	sketcher, err := NewOPHSketcher(k, s, seed, strategy)
	if err != nil {
		t.Fatal(err)
	}
	if err := sketcher.AddSequence(seq); err != nil {
		t.Fatal(err)
	}
	return sketcher.Sketch("test")
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewOPHSketcher(0, sketchSize, hashSeed, OptimalDensification); err == nil {
		t.Fatal("k-mer size of 0 should be rejected")
	}
	if _, err := NewOPHSketcher(kmerSize, 0, hashSeed, OptimalDensification); err == nil {
		t.Fatal("sketch size of 0 should be rejected")
	}
}

func TestDensificationCompleteness(t *testing.T) {
	for _, strategy := range []DensifyStrategy{OptimalDensification, ReverseDensification} {

		// more bins than k-mers guarantees empty bins before densification
		s := buildSketch(t, seqA, kmerSize, 64, hashSeed, strategy)
		if s.Degenerate {
			t.Fatalf("%v: sketch should not be degenerate", strategy)
		}
		if uint(len(s.Bins)) != 64 {
			t.Fatalf("%v: expected 64 bins, got %d", strategy, len(s.Bins))
		}
		for i, bin := range s.Bins {
			if bin == math.MaxUint64 {
				t.Fatalf("%v: bin %d left unfilled after densification", strategy, i)
			}
		}

		// the boundary case: exactly one k-mer must still fill every bin
		single := buildSketch(t, seqA[:kmerSize], kmerSize, 64, hashSeed, strategy)
		if single.Degenerate {
			t.Fatalf("%v: single k-mer sketch should not be degenerate", strategy)
		}
		for i, bin := range single.Bins {
			if bin == math.MaxUint64 {
				t.Fatalf("%v: bin %d left unfilled after densifying a single k-mer", strategy, i)
			}
		}
	}
}

func TestDegenerateSketch(t *testing.T) {
	s := buildSketch(t, seqA[:kmerSize-1], kmerSize, sketchSize, hashSeed, OptimalDensification)
	if !s.Degenerate {
		t.Fatal("sketch of a sequence shorter than k should be degenerate")
	}
	for i, bin := range s.Bins {
		if bin != 0 {
			t.Fatalf("degenerate sketch bin %d should be zero, got %d", i, bin)
		}
	}
}

func TestSketchDeterminism(t *testing.T) {
	for _, strategy := range []DensifyStrategy{OptimalDensification, ReverseDensification} {
		first := buildSketch(t, seqA, kmerSize, sketchSize, hashSeed, strategy)
		second := buildSketch(t, seqA, kmerSize, sketchSize, hashSeed, strategy)
		if !misc.Uint64SliceEqual(first.Bins, second.Bins) {
			t.Fatalf("%v: two sketches of the same input differ", strategy)
		}
	}
}

func TestParseDensifyStrategy(t *testing.T) {
	optimal, err := ParseDensifyStrategy("optimal")
	if err != nil || optimal != OptimalDensification {
		t.Fatal("failed to parse optimal strategy")
	}
	reverse, err := ParseDensifyStrategy("reverse")
	if err != nil || reverse != ReverseDensification {
		t.Fatal("failed to parse reverse strategy")
	}
	if _, err := ParseDensifyStrategy("bogus"); err == nil {
		t.Fatal("bogus strategy should be rejected")
	}
}
