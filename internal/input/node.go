package input

import (
	"github.com/ja-he/lunadash/internal/control/action"
)

// Node is a node in a Tree.
// A node either has children or an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// NewNode returns a new intermediate node.
func NewNode() *Node {
	return &Node{Children: make(map[Key]*Node)}
}

// NewLeaf returns a new leaf node carrying the given action.
func NewLeaf(a action.Action) *Node {
	return &Node{Action: a}
}

// GetHelp returns the key sequences below this node with their explanations.
func (n *Node) GetHelp() Help {
	result := Help{}
	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}
	for k, c := range n.Children {
		for rest, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+rest] = explanation
		}
	}
	return result
}
