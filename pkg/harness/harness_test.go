package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgantsov/ravl/pkg/index"
)

func newTestHarness(input string) (*Harness, *index.Index, *bytes.Buffer) {
	idx := index.NewIndex(prometheus.NewRegistry(), 1)
	out := &bytes.Buffer{}
	return NewHarness(idx, strings.NewReader(input), out), idx, out
}

func TestLoad(t *testing.T) {
	h, idx, out := newTestHarness("")

	err := h.Load(strings.NewReader("2\n\n1\nnot-a-key\n3\n99999999999\n"))
	require.NoError(t, err)

	assert.Equal(t, []int32{1, 2, 3}, idx.Keys())
	assert.Equal(t,
		"read 2\n** The tree is now:\n 2 [1 / 1]\n**\n"+
			"read 1\n** The tree is now:\n 2 [2 / 2]\n  1 [1 / 1]\n**\n"+
			"read 3\n** The tree is now:\n  3 [1 / 1]\n 2 [2 / 3]\n  1 [1 / 1]\n**\n",
		out.String(),
	)
}

func TestRunSession(t *testing.T) {
	h, _, out := newTestHarness("s\n3\ns\n4\nr\n8\nr\n6\nf\n0\nf\n9\nd\n5\ni\n1\nq\n")
	require.NoError(t, h.Load(strings.NewReader("5\n3\n8\n")))
	out.Reset()

	require.NoError(t, h.Run())
	output := out.String()

	assert.Contains(t, output, "Key 3 was found at height 1, subtree size 1.\n")
	assert.Contains(t, output, "This key is not in the tree.\n")
	assert.Contains(t, output, "This key has rank 2.\n")
	assert.Contains(t, output, "This rank was found in node with key 3, at height 1, subtree size 1.\n")
	assert.Contains(t, output, "There is no node with this rank in the tree.\n")
	assert.Contains(t, output, "** The tree is now:\n 8 [2 / 2]\n  3 [1 / 1]\n**\n")
	assert.Contains(t, output, "** The tree is now:\n  8 [1 / 1]\n 3 [2 / 3]\n  1 [1 / 1]\n**\n")
	assert.True(t, strings.HasSuffix(output, "Quit selected. Goodbye!\n"))
	assert.Equal(t, 9, strings.Count(output, commandsPrompt))
}

func TestRunClosesIndex(t *testing.T) {
	h, idx, _ := newTestHarness("q\n")
	require.NoError(t, h.Load(strings.NewReader("1\n2\n")))

	require.NoError(t, h.Run())

	assert.Equal(t, 0, idx.Stats().Size)
}

func TestRunEndOfInput(t *testing.T) {
	h, _, out := newTestHarness("i\n")

	require.NoError(t, h.Run())

	assert.True(t, strings.HasSuffix(out.String(), "Quit selected. Goodbye!\n"))
}

func TestRunInvalidArguments(t *testing.T) {
	h, idx, out := newTestHarness("i\nabc\nf\nxyz\nz\ni\n7\n")

	require.NoError(t, h.Run())

	assert.Contains(t, out.String(), `invalid key: "abc"`)
	assert.Contains(t, out.String(), `invalid key: "xyz"`)
	assert.Contains(t, out.String(), "** The tree is now:\n 7 [1 / 1]\n**\n")
	assert.Equal(t, 0, idx.Stats().Size)
}
