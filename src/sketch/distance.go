package sketch

import (
	"fmt"
	"math"
)

// MaxDistance is the clipped evolutionary distance reported when two sketches
// share no bins (or when either sketch is degenerate), keeping every estimate
// finite for the tree engine
const MaxDistance = 5.0

// Similarity estimates the Jaccard similarity of two genomes as the fraction
// of matching bins between their sketches
func (s *Sketch) Similarity(other *Sketch) (float64, error) {
	if s.SketchSize != other.SketchSize {
		return 0.0, fmt.Errorf("sketch size mismatch: %d vs %d", s.SketchSize, other.SketchSize)
	}
	if s.KmerSize != other.KmerSize {
		return 0.0, fmt.Errorf("k-mer size mismatch: %d vs %d", s.KmerSize, other.KmerSize)
	}
	if s.Degenerate || other.Degenerate {
		return 0.0, nil
	}
	matches := 0
	for i := range s.Bins {
		if s.Bins[i] == other.Bins[i] {
			matches++
		}
	}
	return float64(matches) / float64(s.SketchSize), nil
}

// Distance converts the Jaccard estimate for two sketches to an evolutionary
// distance via the Mash transform, d = -ln(2J/(1+J))/k. The result is
// symmetric, never negative and never NaN; a similarity of zero (or a
// degenerate sketch on either side) is clipped to MaxDistance.
func (s *Sketch) Distance(other *Sketch) (float64, error) {
	jaccard, err := s.Similarity(other)
	if err != nil {
		return 0.0, err
	}
	if jaccard == 0.0 {
		return MaxDistance, nil
	}
	distance := -math.Log(2.0*jaccard/(1.0+jaccard)) / float64(s.KmerSize)
	if math.IsNaN(distance) || distance > MaxDistance {
		return MaxDistance, nil
	}
	if distance < 0.0 {
		return 0.0, nil
	}
	return distance, nil
}
