package nj

import (
	"math"
	"sort"
)

// candidate is one entry in a cluster's sorted neighbor list
type candidate struct {
	id   int
	dist float64
}

// candidateList holds a cluster's candidate neighbors sorted ascending by
// distance, along with a count of entries invalidated by merges since the
// list was last rebuilt
type candidateList struct {
	entries []candidate
	stale   int
}

// rapidSelector is the RapidNJ-style accelerated pair search. Distances
// between surviving clusters never change, so sorted candidate lists stay
// valid until one of their endpoints is merged away; stale entries are
// skipped and a list is rebuilt lazily once they dominate it.
type rapidSelector struct {
	chunkSize int
	lists     map[int]*candidateList
}

func newRapidSelector(chunkSize int) *rapidSelector {
	return &rapidSelector{chunkSize: chunkSize}
}

func (rs *rapidSelector) selectPair(e *engine) (int, int) {
	if rs.lists == nil {
		rs.initLists(e)
	}
	r := float64(len(e.ids))
	sMax := e.sMax()
	bestQ := math.Inf(1)
	bestI, bestJ := -1, -1
	for _, i := range e.ids {
		if rs.lists[i].stale*2 >= len(rs.lists[i].entries) {
			rs.rebuild(e, i)
		}
		si := e.sums[i]
		entries := rs.lists[i].entries
		for start := 0; start < len(entries); start += rs.chunkSize {

			// the lower-bound prune, once per chunk: entries are sorted by
			// distance and Q is monotone non-decreasing in d for fixed S
			// terms, so when even the most optimistic S term can't beat the
			// best Q the rest of the list is hopeless
			if (r-2.0)*entries[start].dist-si-sMax > bestQ {
				break
			}
			end := start + rs.chunkSize
			if end > len(entries) {
				end = len(entries)
			}
			for _, c := range entries[start:end] {
				if !e.active[c.id] {
					continue
				}
				a, b := i, c.id
				if a > b {
					a, b = b, a
				}
				q := e.qCriterion(r, a, b)
				if betterPair(q, a, b, bestQ, bestI, bestJ) {
					bestQ, bestI, bestJ = q, a, b
				}
			}
		}
	}
	return bestI, bestJ
}

// clusterMerged drops the merged clusters' lists, inserts the new cluster into
// every surviving list at its sorted position and builds the new cluster's own
// list; the dead i and j entries are left in place and skipped until a lazy
// rebuild claims them
func (rs *rapidSelector) clusterMerged(e *engine, i, j, k int) {
	if rs.lists == nil {
		return
	}
	delete(rs.lists, i)
	delete(rs.lists, j)
	entries := make([]candidate, 0, len(e.ids)-1)
	for _, m := range e.ids {
		if m == k {
			continue
		}
		rs.insert(m, candidate{id: k, dist: e.d[k][m]})
		rs.lists[m].stale += 2
		entries = append(entries, candidate{id: m, dist: e.d[k][m]})
	}
	sortCandidates(entries)
	rs.lists[k] = &candidateList{entries: entries}
}

func (rs *rapidSelector) initLists(e *engine) {
	rs.lists = make(map[int]*candidateList, len(e.ids))
	for _, i := range e.ids {
		rs.rebuild(e, i)
	}
}

// rebuild refreshes a cluster's candidate list from the current active set
func (rs *rapidSelector) rebuild(e *engine, i int) {
	entries := make([]candidate, 0, len(e.ids)-1)
	for _, m := range e.ids {
		if m == i {
			continue
		}
		entries = append(entries, candidate{id: m, dist: e.d[i][m]})
	}
	sortCandidates(entries)
	rs.lists[i] = &candidateList{entries: entries}
}

// insert places a candidate at its sorted position in a surviving list
func (rs *rapidSelector) insert(id int, c candidate) {
	list := rs.lists[id]
	pos := sort.Search(len(list.entries), func(x int) bool {
		return !candidateLess(list.entries[x], c)
	})
	list.entries = append(list.entries, candidate{})
	copy(list.entries[pos+1:], list.entries[pos:])
	list.entries[pos] = c
}

// candidateLess orders candidates by distance, then id for reproducibility
func candidateLess(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.id < b.id
}

func sortCandidates(entries []candidate) {
	sort.Slice(entries, func(a, b int) bool {
		return candidateLess(entries[a], entries[b])
	})
}
