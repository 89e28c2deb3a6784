package nj

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewick(t *testing.T) {
	leafA := &TreeNode{Name: "A"}
	leafB := &TreeNode{Name: "B"}
	leafC := &TreeNode{Name: "C"}
	inner := &TreeNode{
		Children: []*TreeNode{leafB, leafC},
		Lengths:  []float64{0.5, 0.25},
	}
	root := &TreeNode{
		Children: []*TreeNode{leafA, inner},
		Lengths:  []float64{1.5, 2},
	}
	assert.Equal(t, "(A:1.5,(B:0.5,C:0.25):2);", root.Newick())
}

func TestLeaves(t *testing.T) {
	root := &TreeNode{
		Children: []*TreeNode{
			{Name: "x"},
			{Children: []*TreeNode{{Name: "z"}, {Name: "y"}}, Lengths: []float64{1, 1}},
		},
		Lengths: []float64{1, 1},
	}
	leaves := root.Leaves()
	sort.Strings(leaves)
	assert.Equal(t, []string{"x", "y", "z"}, leaves)
	assert.True(t, (&TreeNode{Name: "solo"}).IsLeaf())
	assert.False(t, root.IsLeaf())
}
