package sketch

import (
	"golang.org/x/sync/errgroup"

	"sketchtree/src/seqio"
	"sketchtree/src/version"
)

// SketchGenomes loads and sketches every listed genome, parallelised across
// genomes and bounded by numProc. Each task reads only its own sequences and
// writes only its own slot, so the returned collection is identical for any
// processor count; a failed genome aborts the whole run with the offending
// file in the error.
func SketchGenomes(genomePaths []string, kmerSize, sketchSize uint, seed uint64, strategy DensifyStrategy, numProc int) (*Collection, error) {
	sketches := make([]*Sketch, len(genomePaths))
	var g errgroup.Group
	g.SetLimit(numProc)
	for i, path := range genomePaths {
		i, path := i, path
		g.Go(func() error {
			genome, err := seqio.LoadGenome(path)
			if err != nil {
				return err
			}
			sketcher, err := NewOPHSketcher(kmerSize, sketchSize, seed, strategy)
			if err != nil {
				return err
			}
			for _, sequence := range genome.Seqs {
				if err := sketcher.AddSequence(sequence); err != nil {
					return err
				}
			}
			sketches[i] = sketcher.Sketch(genome.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Collection{
		Version:    version.GetVersion(),
		KmerSize:   kmerSize,
		SketchSize: sketchSize,
		Seed:       seed,
		Strategy:   strategy.String(),
		Sketches:   sketches,
	}, nil
}
