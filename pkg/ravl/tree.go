package ravl

import (
	"io"
	"sync"
)

type Tree struct {
	root *Node
	mu   sync.RWMutex
}

func NewTree() *Tree {
	return &Tree{mu: sync.RWMutex{}}
}

// Insert stores value under key. It returns true when a new key was added and
// false when the value of an existing key was replaced.
func (tree *Tree) Insert(key int32, value any) bool {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	before := size(tree.root)
	tree.root = Insert(tree.root, key, value)
	return size(tree.root) > before
}

// Delete removes key and hands its value back to the caller.
func (tree *Tree) Delete(key int32) (any, bool) {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	n := Search(tree.root, key)
	if n == nil {
		return nil, false
	}
	value := n.value
	tree.root = Delete(tree.root, key)
	return value, true
}

func (tree *Tree) Search(key int32) (any, bool) {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	n := Search(tree.root, key)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

// Lookup returns a snapshot of the node holding key.
func (tree *Tree) Lookup(key int32) (NodeInfo, bool) {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	n := Search(tree.root, key)
	if n == nil {
		return NodeInfo{}, false
	}
	return infoOf(n, Rank(tree.root, key)), true
}

func (tree *Tree) Rank(key int32) int {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	return Rank(tree.root, key)
}

func (tree *Tree) FindRank(r int) (int32, any, bool) {
	info, ok := tree.LookupRank(r)
	return info.Key, info.Value, ok
}

// LookupRank returns a snapshot of the node whose key has rank r.
func (tree *Tree) LookupRank(r int) (NodeInfo, bool) {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	n := FindRank(tree.root, r)
	if n == nil {
		return NodeInfo{}, false
	}
	return infoOf(n, r), true
}

func (tree *Tree) Len() int {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	return size(tree.root)
}

func (tree *Tree) Height() int {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	return height(tree.root)
}

func (tree *Tree) Keys() []int32 {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	keys := make([]int32, 0, size(tree.root))
	Walk(tree.root, func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func (tree *Tree) Print(w io.Writer) error {
	tree.mu.RLock()
	defer tree.mu.RUnlock()

	return Print(w, tree.root)
}

// Clear tears the tree down, passing every node to release, and leaves an
// empty tree behind.
func (tree *Tree) Clear(release func(*Node)) {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	Teardown(tree.root, release)
	tree.root = nil
}

// NodeInfo is a copy of a node's fields taken under the tree lock.
type NodeInfo struct {
	Key    int32
	Value  any
	Height int
	Size   int
	Rank   int
}

func infoOf(n *Node, r int) NodeInfo {
	return NodeInfo{Key: n.key, Value: n.value, Height: n.height, Size: n.size, Rank: r}
}
