package nj

import "math"

// naiveSelector is the classical O(n^2)-per-iteration pair search: every
// active pair is scored on every call
type naiveSelector struct{}

func (ns *naiveSelector) selectPair(e *engine) (int, int) {
	r := float64(len(e.ids))
	bestQ := math.Inf(1)
	bestI, bestJ := -1, -1
	for x, i := range e.ids {
		for _, j := range e.ids[x+1:] {
			q := e.qCriterion(r, i, j)
			if betterPair(q, i, j, bestQ, bestI, bestJ) {
				bestQ, bestI, bestJ = q, i, j
			}
		}
	}
	return bestI, bestJ
}

func (ns *naiveSelector) clusterMerged(e *engine, i, j, k int) {}
