/*
	the matrix package builds and stores the pairwise distance matrix between sketched genomes
*/
package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"sketchtree/src/sketch"
)

// DistanceMatrix is a symmetric matrix of pairwise distances with a zero
// diagonal, stored as a lower triangle to halve the memory
type DistanceMatrix struct {
	names []string
	dists [][]float64 // dists[i] holds distances to genomes 0..i-1
}

// NewDistanceMatrix allocates an all-zero matrix for the given genome names
func NewDistanceMatrix(names []string) *DistanceMatrix {
	dists := make([][]float64, len(names))
	for i := range dists {
		dists[i] = make([]float64, i)
	}
	return &DistanceMatrix{
		names: names,
		dists: dists,
	}
}

// Size returns the number of genomes in the matrix
func (dm *DistanceMatrix) Size() int {
	return len(dm.names)
}

// Names returns the genome identifiers in matrix order
func (dm *DistanceMatrix) Names() []string {
	return dm.names
}

// Get returns the distance between genomes i and j
func (dm *DistanceMatrix) Get(i, j int) float64 {
	if i == j {
		return 0.0
	}
	if i < j {
		i, j = j, i
	}
	return dm.dists[i][j]
}

// Set records the distance between genomes i and j
func (dm *DistanceMatrix) Set(i, j int, distance float64) {
	if i == j {
		return
	}
	if i < j {
		i, j = j, i
	}
	dm.dists[i][j] = distance
}

// Build computes all pairwise distances between the supplied sketches,
// parallelised across matrix rows and bounded by numProc. Every cell is
// written exactly once by exactly one task; the Wait call is the barrier
// that completes the matrix before it is handed to the tree engine.
func Build(sketches []*sketch.Sketch, numProc int) (*DistanceMatrix, error) {
	if len(sketches) < 2 {
		return nil, fmt.Errorf("need at least 2 sketches to build a distance matrix (got %d)", len(sketches))
	}
	names := make([]string, len(sketches))
	for i, s := range sketches {
		names[i] = s.ID
	}
	dm := NewDistanceMatrix(names)
	var g errgroup.Group
	g.SetLimit(numProc)
	for i := 1; i < len(sketches); i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < i; j++ {
				distance, err := sketches[i].Distance(sketches[j])
				if err != nil {
					return fmt.Errorf("can't compare %v and %v: %v", sketches[i].ID, sketches[j].ID, err)
				}
				dm.dists[i][j] = distance
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dm, nil
}
