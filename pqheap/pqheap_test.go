package pqheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopOrdersByPriority(t *testing.T) {
	h := New(0)
	h.Push(1, 50)
	h.Push(2, 10)
	h.Push(3, 30)

	require.Equal(t, uint32(2), h.Pop().Node)
	require.Equal(t, uint32(3), h.Pop().Node)
	require.Equal(t, uint32(1), h.Pop().Node)
	require.Equal(t, 0, h.Len())
}

func TestUpdateDecreasesPriority(t *testing.T) {
	h := New(0)
	h.Push(1, 100)
	h.Push(2, 200)
	h.Push(3, 300)

	h.Update(3, 1)
	require.Equal(t, uint32(3), h.Pop().Node)
}

func TestUpdateIncreasesPriority(t *testing.T) {
	h := New(0)
	h.Push(1, 1)
	h.Push(2, 2)

	h.Update(1, 1000)
	require.Equal(t, uint32(2), h.Pop().Node)
	require.Equal(t, uint32(1), h.Pop().Node)
}

func TestUpdateOnAbsentNodeInserts(t *testing.T) {
	h := New(0)
	h.Update(5, 1)
	require.Equal(t, 1, h.Len())
	require.True(t, h.Contains(5))
}

func TestRemove(t *testing.T) {
	h := New(0)
	h.Push(1, 1)
	h.Push(2, 2)
	h.Remove(1)
	require.False(t, h.Contains(1))
	require.Equal(t, uint32(2), h.Pop().Node)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	h := New(0)
	h.Push(1, 1)
	h.Remove(99)
	require.Equal(t, 1, h.Len())
}

func TestPushDuplicatePanics(t *testing.T) {
	h := New(0)
	h.Push(1, 1)
	require.Panics(t, func() { h.Push(1, 2) })
}

func TestHeapMatchesSortedOrderUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := New(0)
	want := map[uint32]int64{}
	for i := uint32(0); i < 500; i++ {
		p := rng.Int63n(10000)
		h.Push(i, p)
		want[i] = p
	}
	for i := 0; i < 200; i++ {
		node := uint32(rng.Intn(500))
		if !h.Contains(node) {
			continue
		}
		p := rng.Int63n(10000)
		h.Update(node, p)
		want[node] = p
	}

	var last int64 = -1
	count := 0
	for h.Len() > 0 {
		it := h.Pop()
		require.GreaterOrEqual(t, it.Priority, last)
		require.Equal(t, want[it.Node], it.Priority)
		last = it.Priority
		count++
	}
	require.Equal(t, 500, count)
}
