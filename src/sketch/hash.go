package sketch

// splitmix64 is the SplitMix64 finalizer - it is used to route hash values to
// bins during one-permutation hashing and to perturb copied values during
// densification
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// perturb mixes a copied bin value with its destination bin index, so that two
// empty bins filled from the same source bin end up with distinguishable values
func perturb(value uint64, bin int, seed uint64) uint64 {
	return splitmix64(value ^ (seed + uint64(bin)))
}
