package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("abprune", 3)
	c.AddNode()
	c.AddNode()
	c.AddLeaf()
	c.AddPrune()

	got := c.Complete(4.5)

	require.Equal(t, "abprune", got.Strategy)
	require.Equal(t, 3, got.Depth)
	require.Equal(t, 2, got.Nodes)
	require.Equal(t, 1, got.Leaves)
	require.Equal(t, 1, got.Prunes)
	require.Equal(t, 4.5, got.Score)

	c.Start("minimax", 1)
	require.Equal(t, 0, c.Complete(0).Nodes, "Start should reset the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("minimax", 2)
	c.AddNode()
	c.AddLeaf()
	c.AddPrune()

	require.Equal(t, SearchMetric{Strategy: "minimax", Depth: 2, Score: 1}, c.Complete(1))

	c.Start("human", 0)
	require.Equal(t, SearchMetric{Strategy: "human", Score: 3}, c.Complete(3))
}
