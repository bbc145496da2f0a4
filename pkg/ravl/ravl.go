// Package ravl implements a rank-augmented AVL tree: a height balanced binary
// search tree whose nodes also track subtree sizes, so that lookups, updates,
// rank and select-by-rank all run in O(log n).
//
// The functions in this file operate on subtree roots and perform no locking.
// Mutating functions return the new root of the subtree they were given and
// the caller must store it in place of the old one. Tree wraps a root with a
// lock for callers that share it.
package ravl

import (
	"fmt"
	"io"
)

// NotIn is returned by Rank for a key that is not in the tree.
const NotIn = -1

// Search returns the node holding key, or nil if key is not in the tree.
func Search(n *Node, key int32) *Node {
	for n != nil {
		if key < n.key {
			n = n.left
		} else if key > n.key {
			n = n.right
		} else {
			return n
		}
	}
	return nil
}

// Insert adds key/value to the tree rooted at n, or replaces the value if key
// is already present, and returns the root of the resulting tree.
func Insert(n *Node, key int32, value any) *Node {
	if n == nil {
		return newNode(key, value)
	}
	if key < n.key {
		n.left = Insert(n.left, key, value)
	} else if key > n.key {
		n.right = Insert(n.right, key, value)
	} else {
		n.value = value
		return n
	}

	return rebalance(n)
}

func minNode(n *Node) *Node {
	curr := n
	for curr.left != nil {
		curr = curr.left
	}
	return curr
}

// Delete removes key from the tree rooted at n and returns the root of the
// resulting tree, nil once the tree is empty. Deleting a missing key leaves
// the tree unchanged.
func Delete(n *Node, key int32) *Node {
	if n == nil {
		return nil
	}
	if key < n.key {
		n.left = Delete(n.left, key)
	} else if key > n.key {
		n.right = Delete(n.right, key)
	} else {
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			n.left, n.right, n.value = nil, nil, nil
			return child
		}
		succ := minNode(n.right)
		n.key = succ.key
		n.value = succ.value
		n.right = Delete(n.right, succ.key)
	}

	return rebalance(n)
}

// Rank returns the number of keys in the tree that are smaller than key, or
// NotIn if key is not in the tree.
func Rank(n *Node, key int32) int {
	if n == nil {
		return NotIn
	}
	if key < n.key {
		return Rank(n.left, key)
	}
	if key > n.key {
		r := Rank(n.right, key)
		if r == NotIn {
			return NotIn
		}
		return size(n.left) + 1 + r
	}
	return size(n.left)
}

// FindRank returns the node whose key has rank r, or nil when r is outside
// [0, size).
func FindRank(n *Node, r int) *Node {
	if n == nil || r < 0 || r >= size(n) {
		return nil
	}
	leftSize := size(n.left)
	if r < leftSize {
		return FindRank(n.left, r)
	} else if r == leftSize {
		return n
	} else {
		return FindRank(n.right, r-leftSize-1)
	}
}

// Walk visits the tree in key order until fn returns false. It reports
// whether the whole tree was visited.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return Walk(n.left, fn) && fn(n) && Walk(n.right, fn)
}

// Print writes the tree sideways: the right subtree first, indented by depth,
// then "key [height / size]", then the left subtree.
func Print(w io.Writer, n *Node) error {
	return printTree(w, n, 0)
}

func printTree(w io.Writer, n *Node, offset int) error {
	if n == nil {
		return nil
	}
	if err := printTree(w, n.right, offset+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%*s %d [%d / %d]\n", offset, "", n.key, n.height, n.size); err != nil {
		return err
	}
	return printTree(w, n.left, offset+1)
}

// Teardown releases every node of the tree in post-order. release, when not
// nil, is called once per node before the node is unlinked and may take
// ownership of its value. The tree must not be used afterwards.
func Teardown(n *Node, release func(*Node)) {
	if n == nil {
		return
	}
	Teardown(n.left, release)
	Teardown(n.right, release)
	if release != nil {
		release(n)
	}
	n.left, n.right, n.value = nil, nil, nil
	n.height, n.size = 0, 0
}
