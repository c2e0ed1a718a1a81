package abstract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeStackSpill(t *testing.T) {
	var s NodeStack[int, int, struct{}]
	nodes := make([]*Node[int, int, struct{}], 3*nodeStackDepth)
	for i := range nodes {
		nodes[i] = newNode[int, int, struct{}](i, i)
	}
	for round := 0; round < 2; round++ {
		for i, n := range nodes {
			s.Push(n)
			require.Equal(t, i+1, s.Len())
		}
		for i := len(nodes) - 1; i >= 0; i-- {
			require.Same(t, nodes[i], s.Pop())
		}
		require.Equal(t, 0, s.Len())
		s.Reset()
	}

	var small NodeStack[int, int, struct{}]
	small.Push(nodes[0])
	small.Push(nodes[1])
	small.Reset()
	require.Equal(t, 0, small.Len())
	small.Push(nodes[2])
	require.Same(t, nodes[2], small.Pop())
}
