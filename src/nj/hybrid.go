package nj

// hybridSelector runs the naive search for the first share of the join steps,
// where candidate-list pruning buys little, then hands over to the RapidNJ
// search for the rest of the run. The switch point is computed once from the
// matrix size and is deterministic.
type hybridSelector struct {
	naiveSteps int
	steps      int
	naive      *naiveSelector
	rapid      *rapidSelector
}

func newHybridSelector(n, chunkSize, naivePercentage int) *hybridSelector {
	return &hybridSelector{
		naiveSteps: n * naivePercentage / 100,
		naive:      &naiveSelector{},
		rapid:      newRapidSelector(chunkSize),
	}
}

func (hs *hybridSelector) selectPair(e *engine) (int, int) {
	hs.steps++
	if hs.steps <= hs.naiveSteps {
		return hs.naive.selectPair(e)
	}

	// the rapid selector builds its candidate lists from the current active
	// set on its first call
	return hs.rapid.selectPair(e)
}

func (hs *hybridSelector) clusterMerged(e *engine, i, j, k int) {
	hs.rapid.clusterMerged(e, i, j, k)
}
