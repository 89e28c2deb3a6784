package sketch

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"sketchtree/src/misc"
)

// writeFasta is a helper function to write a FASTA file for a test genome
func writeFasta(t *testing.T, dir, name string, seq []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(fmt.Sprintf(">%s\n%s\n", name, seq)), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSketchGenomes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dir := t.TempDir()
	paths := []string{
		writeFasta(t, dir, "genomeA.fna", randSeq(rng, 1000)),
		writeFasta(t, dir, "genomeB.fna", randSeq(rng, 1000)),
		writeFasta(t, dir, "genomeC.fna", randSeq(rng, 1000)),
	}

	collection, err := SketchGenomes(paths, kmerSize, sketchSize, hashSeed, OptimalDensification, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(collection.Sketches) != 3 {
		t.Fatalf("expected 3 sketches, got %d", len(collection.Sketches))
	}
	for i, path := range paths {
		if collection.Sketches[i].ID != filepath.Base(path) {
			t.Fatalf("sketch %d is out of genome list order", i)
		}
	}

	// the collection must be byte-identical regardless of processor count
	parallel, err := SketchGenomes(paths, kmerSize, sketchSize, hashSeed, OptimalDensification, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range collection.Sketches {
		if !misc.Uint64SliceEqual(collection.Sketches[i].Bins, parallel.Sketches[i].Bins) {
			t.Fatalf("sketch %d differs between 1 and 3 processors", i)
		}
	}
}

func TestSketchGenomesBadFile(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	dir := t.TempDir()
	paths := []string{
		writeFasta(t, dir, "genomeA.fna", randSeq(rng, 1000)),
		filepath.Join(dir, "missing.fna"),
	}
	if _, err := SketchGenomes(paths, kmerSize, sketchSize, hashSeed, OptimalDensification, 2); err == nil {
		t.Fatal("a missing genome file should abort the run")
	}
}
