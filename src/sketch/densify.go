package sketch

import "fmt"

// DensifyStrategy selects how empty bins are repaired after one-permutation hashing
type DensifyStrategy int

const (
	// OptimalDensification probes forward from each empty bin to find its
	// nearest filled bin; copied values are perturbed per destination bin so
	// they behave as independent MinHash draws
	OptimalDensification DensifyStrategy = iota

	// ReverseDensification makes a single circular pass, carrying the most
	// recently seen filled value into each empty bin; cheaper than optimal
	// densification but with a slightly higher variance estimator
	ReverseDensification
)

// ParseDensifyStrategy converts a strategy name from the command line
func ParseDensifyStrategy(name string) (DensifyStrategy, error) {
	switch name {
	case "optimal":
		return OptimalDensification, nil
	case "reverse":
		return ReverseDensification, nil
	default:
		return 0, fmt.Errorf("unknown densification strategy: %v (use optimal or reverse)", name)
	}
}

func (strategy DensifyStrategy) String() string {
	if strategy == ReverseDensification {
		return "reverse"
	}
	return "optimal"
}

// densify fills every empty bin; the sketcher is guaranteed to have at least
// one filled bin when this is called
func (sk *OPHSketcher) densify() {
	if sk.numFilled == sk.sketchSize {
		return
	}
	if sk.strategy == ReverseDensification {
		sk.densifyReverse()
		return
	}
	sk.densifyOptimal()
}

// densifyOptimal scans forward from each empty bin under a fixed circular
// probing order and copies the first filled bin it reaches
func (sk *OPHSketcher) densifyOptimal() {
	size := len(sk.bins)
	for i := range sk.bins {
		if sk.filled[i] {
			continue
		}
		for offset := 1; offset < size; offset++ {
			src := (i + offset) % size
			if sk.filled[src] {
				sk.bins[i] = perturb(sk.bins[src], i, sk.seed)
				break
			}
		}
	}
}

// densifyReverse makes one circular pass from the first filled bin, carrying
// the last genuine minimum forward into each empty bin
func (sk *OPHSketcher) densifyReverse() {
	size := len(sk.bins)
	start := 0
	for !sk.filled[start] {
		start++
	}
	carry := sk.bins[start]
	for offset := 1; offset < size; offset++ {
		i := (start + offset) % size
		if sk.filled[i] {
			carry = sk.bins[i]
			continue
		}
		sk.bins[i] = perturb(carry, i, sk.seed)
	}
}
