package nj

import (
	"strconv"
	"strings"
)

// TreeNode is a node in the reconstructed tree: either a leaf carrying a
// genome identifier, or an internal node with two children (three for the
// trifurcating root). Lengths holds the branch length to each child.
type TreeNode struct {
	Name     string
	Children []*TreeNode
	Lengths  []float64
}

// IsLeaf reports whether the node is a leaf
func (node *TreeNode) IsLeaf() bool {
	return len(node.Children) == 0
}

// Leaves returns the genome identifiers under the node
func (node *TreeNode) Leaves() []string {
	if node.IsLeaf() {
		return []string{node.Name}
	}
	leaves := []string{}
	for _, child := range node.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Newick serialises the tree in Newick format, with branch lengths as :length
// suffixes and a terminating semicolon
func (node *TreeNode) Newick() string {
	var sb strings.Builder
	node.writeNewick(&sb)
	sb.WriteByte(';')
	return sb.String()
}

func (node *TreeNode) writeNewick(sb *strings.Builder) {
	if node.IsLeaf() {
		sb.WriteString(node.Name)
		return
	}
	sb.WriteByte('(')
	for i, child := range node.Children {
		if i > 0 {
			sb.WriteByte(',')
		}
		child.writeNewick(sb)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(node.Lengths[i], 'f', -1, 64))
	}
	sb.WriteByte(')')
}
