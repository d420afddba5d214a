package input

import (
	"fmt"

	"github.com/ja-he/lunadash/internal/control/action"
)

// Help maps key sequences to what they do.
type Help = map[string]string

// Tree is an input tree of key sequences that terminate in actions.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g   -> action1            "gg" -> action1
//	+-l   -> action2            "gl" -> action2
//	q     -> action3            "q"  -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput advances the tree by the given key.
// Returns whether the key applied, i.e. either completed a sequence (and the
// action was run) or continued a partial one.
func (t *Tree) ProcessInput(k Key) bool {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput is true while a sequence is partially entered.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the help for all sequences of the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// ConstructInputTree builds a Tree from the given sequences.
// Sequences that are prefixes of other sequences are rejected, as the longer
// one could never be reached.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for keyspec, a := range spec {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec (%w)", err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec bound to '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			if current.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends an already bound sequence", keyspec)
			}
			next, ok := current.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					next = NewLeaf(a)
				} else {
					next = NewNode()
				}
				current.Children[key] = next
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' is a prefix of (or equal to) another binding", keyspec)
			}
			current = next
		}
	}

	return &Tree{Root: root, Current: root}, nil
}

// EmptyTree returns a tree that applies no input.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{Root: root, Current: root}
}
