/*
	the nj package reconstructs a neighbor-joining tree from a distance matrix.

	Three pair-search strategies share one merge implementation: an exhaustive
	scan, a RapidNJ-style pruned scan over sorted candidate lists, and a hybrid
	that switches from the first to the second at a fixed join step. The
	acceleration only changes how the minimal Q pair is found, never which pair
	is found, so all three produce the same tree.
*/
package nj

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"sketchtree/src/matrix"
)

// Method selects the pair-search strategy used by the engine
type Method int

const (
	// Naive scans every active pair in every iteration
	Naive Method = iota

	// RapidNJ prunes the pair search with sorted per-cluster candidate lists
	RapidNJ

	// Hybrid runs naive for a fixed share of the join steps, then switches to RapidNJ
	Hybrid
)

// ParseMethod converts a tree method name from the command line
func ParseMethod(name string) (Method, error) {
	switch name {
	case "naive":
		return Naive, nil
	case "rapidnj":
		return RapidNJ, nil
	case "hybrid":
		return Hybrid, nil
	default:
		return 0, fmt.Errorf("unknown tree method: %v (use naive, rapidnj or hybrid)", name)
	}
}

func (method Method) String() string {
	switch method {
	case RapidNJ:
		return "rapidnj"
	case Hybrid:
		return "hybrid"
	default:
		return "naive"
	}
}

// Config holds the tree construction parameters
type Config struct {
	Method          Method
	ChunkSize       int // candidate list scan chunk (RapidNJ and Hybrid)
	NaivePercentage int // percentage of join steps run naively (Hybrid)
}

// selector is the pair-search capability shared by the three strategies
type selector interface {

	// selectPair returns the active cluster pair minimising the Q-criterion
	selectPair(e *engine) (int, int)

	// clusterMerged lets a strategy update its bookkeeping after i and j
	// have been replaced by k
	clusterMerged(e *engine, i, j, k int)
}

// engine holds the evolving cluster state. Cluster ids index the working
// matrix; the n input genomes take ids 0..n-1 and every merge allocates the
// next id, so ids stay in ascending creation order.
type engine struct {
	d      [][]float64 // working square distance matrix over cluster ids
	sums   []float64   // per-cluster sum of distances to all other active clusters
	active []bool
	nodes  []*TreeNode
	ids    []int // active cluster ids, ascending
	next   int   // next cluster id to allocate
}

// Run reconstructs a tree from the distance matrix using the configured
// strategy. Neighbor joining is inherently sequential and runs single-threaded.
func Run(dm *matrix.DistanceMatrix, config *Config) (*TreeNode, error) {
	n := dm.Size()
	if n < 3 {
		return nil, fmt.Errorf("tree construction requires at least 3 genomes (got %d)", n)
	}
	sel, err := newSelector(n, config)
	if err != nil {
		return nil, err
	}
	e := newEngine(dm)
	for len(e.ids) > 3 {
		i, j := sel.selectPair(e)
		k := e.merge(i, j)
		sel.clusterMerged(e, i, j, k)
	}
	return e.finish(), nil
}

func newSelector(n int, config *Config) (selector, error) {
	switch config.Method {
	case Naive:
		return &naiveSelector{}, nil
	case RapidNJ:
		if config.ChunkSize < 1 {
			return nil, fmt.Errorf("chunk size must be a positive integer (got %d)", config.ChunkSize)
		}
		return newRapidSelector(config.ChunkSize), nil
	case Hybrid:
		if config.ChunkSize < 1 {
			return nil, fmt.Errorf("chunk size must be a positive integer (got %d)", config.ChunkSize)
		}
		if config.NaivePercentage < 0 || config.NaivePercentage > 100 {
			return nil, fmt.Errorf("naive percentage must be between 0 and 100 (got %d)", config.NaivePercentage)
		}
		return newHybridSelector(n, config.ChunkSize, config.NaivePercentage), nil
	default:
		return nil, fmt.Errorf("unknown tree method: %v", config.Method)
	}
}

// newEngine copies the distance matrix into the working state. The working
// matrix is sized for every cluster the run can create (2n-3 ids).
func newEngine(dm *matrix.DistanceMatrix) *engine {
	n := dm.Size()
	total := 2*n - 3
	e := &engine{
		d:      make([][]float64, total),
		sums:   make([]float64, total),
		active: make([]bool, total),
		nodes:  make([]*TreeNode, total),
		ids:    make([]int, n),
		next:   n,
	}
	for i := 0; i < total; i++ {
		e.d[i] = make([]float64, total)
	}
	names := dm.Names()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e.d[i][j] = dm.Get(i, j)
		}
		e.sums[i] = floats.Sum(e.d[i][:n])
		e.active[i] = true
		e.nodes[i] = &TreeNode{Name: names[i]}
		e.ids[i] = i
	}
	return e
}

// merge deactivates clusters i and j, allocates a new cluster joining them and
// recomputes the distances and row sums it touches. Returns the new cluster id.
func (e *engine) merge(i, j int) int {
	r := float64(len(e.ids))
	dij := e.d[i][j]

	// standard NJ branch lengths from k to i and j
	lengthI := 0.5*dij + (e.sums[i]-e.sums[j])/(2.0*(r-2.0))
	lengthJ := dij - lengthI

	k := e.next
	e.next++
	e.nodes[k] = &TreeNode{
		Children: []*TreeNode{e.nodes[i], e.nodes[j]},
		Lengths:  []float64{lengthI, lengthJ},
	}
	e.active[i], e.active[j] = false, false

	// d(k,m) = (d(i,m) + d(j,m) - d(i,j)) / 2 for every surviving cluster m
	sumK := 0.0
	survivors := make([]int, 0, len(e.ids)-1)
	for _, m := range e.ids {
		if m == i || m == j {
			continue
		}
		dkm := 0.5 * (e.d[i][m] + e.d[j][m] - dij)
		e.d[k][m], e.d[m][k] = dkm, dkm
		e.sums[m] += dkm - e.d[i][m] - e.d[j][m]
		sumK += dkm
		survivors = append(survivors, m)
	}
	e.sums[k] = sumK
	e.active[k] = true
	e.ids = append(survivors, k)
	return k
}

// finish joins the last three clusters into the unrooted trifurcation; no Q
// computation is needed, the three branch lengths follow directly from the
// three pairwise distances
func (e *engine) finish() *TreeNode {
	a, b, c := e.ids[0], e.ids[1], e.ids[2]
	dab, dac, dbc := e.d[a][b], e.d[a][c], e.d[b][c]
	return &TreeNode{
		Children: []*TreeNode{e.nodes[a], e.nodes[b], e.nodes[c]},
		Lengths: []float64{
			0.5 * (dab + dac - dbc),
			0.5 * (dab + dbc - dac),
			0.5 * (dac + dbc - dab),
		},
	}
}

// qCriterion is the neighbor-joining pair score; the pair minimising it over
// all active pairs is joined next
func (e *engine) qCriterion(r float64, i, j int) float64 {
	return (r-2.0)*e.d[i][j] - e.sums[i] - e.sums[j]
}

// betterPair reports whether pair (i,j) with score q beats the current best.
// Requires i < j. Ties break on the lexicographically smaller pair so that
// every strategy resolves them identically.
func betterPair(q float64, i, j int, bestQ float64, bestI, bestJ int) bool {
	if q != bestQ {
		return q < bestQ
	}
	if bestI < 0 {
		return true
	}
	if i != bestI {
		return i < bestI
	}
	return j < bestJ
}

// sMax returns the largest row sum over the active clusters, used by the
// RapidNJ lower bound
func (e *engine) sMax() float64 {
	best := math.Inf(-1)
	for _, id := range e.ids {
		if e.sums[id] > best {
			best = e.sums[id]
		}
	}
	return best
}
