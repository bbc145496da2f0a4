package ravl

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTree(t *testing.T) {
	tree := NewTree()
	assert.NotNil(t, tree)
	assert.Nil(t, tree.root)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
}

func TestTreeInsert(t *testing.T) {
	tree := NewTree()

	assert.True(t, tree.Insert(5, "a"))
	assert.True(t, tree.Insert(3, "b"))
	assert.Equal(t, 2, tree.Len())

	assert.False(t, tree.Insert(5, "c"))
	assert.Equal(t, 2, tree.Len())

	value, ok := tree.Search(5)
	assert.True(t, ok)
	assert.Equal(t, "c", value)
}

func TestTreeDelete(t *testing.T) {
	tree := NewTree()

	value, ok := tree.Delete(1)
	assert.False(t, ok)
	assert.Nil(t, value)

	tree.Insert(1, "one")
	tree.Insert(2, "two")

	value, ok = tree.Delete(1)
	assert.True(t, ok)
	assert.Equal(t, "one", value)
	assert.Equal(t, []int32{2}, tree.Keys())

	_, ok = tree.Search(1)
	assert.False(t, ok)
}

func TestTreeRanks(t *testing.T) {
	tree := NewTree()
	for _, k := range []int32{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, k)
	}

	assert.Equal(t, 3, tree.Rank(5))
	assert.Equal(t, NotIn, tree.Rank(6))

	key, value, ok := tree.FindRank(6)
	assert.True(t, ok)
	assert.Equal(t, int32(9), key)
	assert.Equal(t, int32(9), value)

	_, _, ok = tree.FindRank(7)
	assert.False(t, ok)

	info, ok := tree.LookupRank(3)
	assert.True(t, ok)
	assert.Equal(t, NodeInfo{Key: 5, Value: int32(5), Height: 3, Size: 7, Rank: 3}, info)

	info, ok = tree.Lookup(8)
	assert.True(t, ok)
	assert.Equal(t, 2, info.Height)
	assert.Equal(t, 3, info.Size)
	assert.Equal(t, 5, info.Rank)

	_, ok = tree.Lookup(100)
	assert.False(t, ok)
}

func TestTreePrintAndClear(t *testing.T) {
	tree := NewTree()
	tree.Insert(2, "b")
	tree.Insert(1, "a")
	tree.Insert(3, "c")

	var buf bytes.Buffer
	assert.NoError(t, tree.Print(&buf))
	assert.Equal(t, "  3 [1 / 1]\n 2 [2 / 3]\n  1 [1 / 1]\n", buf.String())

	released := []any{}
	tree.Clear(func(n *Node) {
		released = append(released, n.Value())
	})

	assert.ElementsMatch(t, []any{"a", "b", "c"}, released)
	assert.Equal(t, 0, tree.Len())

	tree.Clear(nil)
	assert.Equal(t, 0, tree.Len())
}

func TestTreeConcurrentAccess(t *testing.T) {
	tree := NewTree()
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				key := int32(w*1000 + i)
				tree.Insert(key, i)
				tree.Rank(key)
				tree.Search(key)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 1000, tree.Len())
	assert.Equal(t, 1000, checkInvariants(t, tree.root))
}
