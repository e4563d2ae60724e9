// Package pqheap implements a binary min-heap of (node, priority) pairs
// with a position index, giving true O(log n) decrease-key in addition to
// push/pop (spec.md §4.H). The contraction-hierarchies preprocessor relies
// on decrease-key to keep the node-importance heap in sync as edge
// difference changes during contraction; a lazy "push a duplicate and
// skip stale pops" scheme would leave stale importance values in the
// heap across thousands of re-priority events.
//
// Complexity:
//
//   - Push, Pop, Update: O(log n)
//   - Peek, Len: O(1)
//
// Thread safety: a Heap is not safe for concurrent use; callers needing
// concurrent access must synchronize externally.
package pqheap

import "container/heap"

// Item is one (node, priority) entry. Smaller Priority sorts first;
// equal priorities sort by ascending Node.
type Item struct {
	Node     uint32
	Priority int64

	index int // position in the backing slice; maintained by container/heap
}

// Heap is a min-heap over Item.Priority with a node->position index that
// allows Update to relocate an existing node in O(log n) instead of
// requiring a fresh push plus a stale-entry check on pop.
type Heap struct {
	items []*Item
	pos   map[uint32]int // node ID -> index in items
}

// New returns an empty heap with capacity reserved for n items.
func New(n int) *Heap {
	return &Heap{
		items: make([]*Item, 0, n),
		pos:   make(map[uint32]int, n),
	}
}

// Len returns the number of items currently in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Contains reports whether node is currently present in the heap.
func (h *Heap) Contains(node uint32) bool {
	_, ok := h.pos[node]

	return ok
}

// Push inserts node with the given priority. Panics if node is already
// present; callers that are unsure should use Update instead.
func (h *Heap) Push(node uint32, priority int64) {
	if _, ok := h.pos[node]; ok {
		panic("pqheap: node already present, use Update")
	}
	heap.Push((*innerHeap)(h), &Item{Node: node, Priority: priority})
}

// Pop removes and returns the item with the smallest priority.
// Pop panics if the heap is empty; callers must check Len first.
func (h *Heap) Pop() *Item {
	return heap.Pop((*innerHeap)(h)).(*Item)
}

// Peek returns the smallest-priority item without removing it.
// Peek panics if the heap is empty; callers must check Len first.
func (h *Heap) Peek() *Item {
	return h.items[0]
}

// Update sets node's priority, inserting it if absent. Whether the
// priority increases or decreases, the heap invariant is restored in
// O(log n) by sifting in the needed direction.
func (h *Heap) Update(node uint32, priority int64) {
	i, ok := h.pos[node]
	if !ok {
		h.Push(node, priority)

		return
	}
	old := h.items[i].Priority
	h.items[i].Priority = priority
	switch {
	case priority < old:
		(*innerHeap)(h).up(i)
	case priority > old:
		(*innerHeap)(h).down(i)
	}
}

// Remove deletes node from the heap if present; a no-op otherwise.
func (h *Heap) Remove(node uint32) {
	i, ok := h.pos[node]
	if !ok {
		return
	}
	heap.Remove((*innerHeap)(h), i)
}

// Reset empties the heap in place, keeping its backing slice and
// position map's allocated capacity so a caller that reuses the same
// Heap across many short-lived searches (e.g. a witness search run
// once per candidate pair during CH preprocessing) doesn't pay for a
// fresh heap on every call.
func (h *Heap) Reset() {
	for k := range h.items {
		h.items[k] = nil
	}
	h.items = h.items[:0]
	for k := range h.pos {
		delete(h.pos, k)
	}
}

// innerHeap adapts Heap to container/heap.Interface while keeping the
// public API free of heap.Interface's index-based vocabulary.
type innerHeap Heap

func (h *innerHeap) Len() int { return len(h.items) }

func (h *innerHeap) Less(i, j int) bool {
	if h.items[i].Priority != h.items[j].Priority {
		return h.items[i].Priority < h.items[j].Priority
	}

	return h.items[i].Node < h.items[j].Node
}

func (h *innerHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
	h.pos[h.items[i].Node] = i
	h.pos[h.items[j].Node] = j
}

func (h *innerHeap) Push(x any) {
	it := x.(*Item)
	it.index = len(h.items)
	h.items = append(h.items, it)
	h.pos[it.Node] = it.index
}

func (h *innerHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	delete(h.pos, it.Node)

	return it
}

// up and down expose container/heap's internal sift operations so Update
// can restore the invariant from an arbitrary changed index without a
// full re-push. These mirror the unexported fix() helper container/heap
// itself uses internally.
func (h *innerHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.Less(i, parent) {
			break
		}
		h.Swap(i, parent)
		i = parent
	}
}

func (h *innerHeap) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.Less(right, left) {
			smallest = right
		}
		if !h.Less(smallest, i) {
			break
		}
		h.Swap(i, smallest)
		i = smallest
	}
}
