package ch

import (
	"sort"

	"github.com/seacharts/oceanroute/pqheap"
)

// newImportanceHeap computes the initial importance of every node and
// returns a heap ordered by it (lowest importance pops first).
func newImportanceHeap(st *state, nodes []string) *pqheap.Heap {
	h := pqheap.New(len(nodes))
	st.refreshImportance(h, nodes)

	return h
}

// refreshImportance recomputes pending shortcuts and importance for
// every node in nodes and pushes/updates it in heap.
func (st *state) refreshImportance(heap *pqheap.Heap, nodes []string) {
	for _, n := range nodes {
		if st.contracted[n] {
			continue
		}

		pending := st.computeShortcuts(n)
		st.pending[n] = pending

		priority := st.importance(n, pending)
		if heap.Contains(st.idOf[n]) {
			heap.Update(st.idOf[n], priority)
		} else {
			heap.Push(st.idOf[n], priority)
		}
	}
}

// computeShortcuts finds, for every pair of distinct neighbors (a, b)
// of n, whether the path a-n-b must be preserved by a shortcut: it is
// needed unless a witness path from a to b avoiding n is already no
// longer than a-n-b (spec.md §4.J, witness search).
func (st *state) computeShortcuts(n string) []shortcut {
	neighbors, err := st.h.NeighborIDs(n)
	if err != nil || len(neighbors) < 2 {
		return nil
	}
	sort.Strings(neighbors)

	var out []shortcut
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			a, b := neighbors[i], neighbors[j]
			wan := st.edgeWeight(a, n)
			wnb := st.edgeWeight(n, b)
			if wan < 0 || wnb < 0 {
				continue
			}
			bound := wan + wnb

			witness := st.witness.Distance(a, b, n, bound, witnessExpansionCap)
			if witness <= bound {
				continue // existing path is at least as good, no shortcut needed
			}

			out = append(out, shortcut{
				a:        a,
				b:        b,
				dist:     bound,
				hopcount: st.getHop(a, n) + st.getHop(n, b),
			})
		}
	}

	return out
}

// importance implements spec.md §4.J's node priority:
//
//	L(n) + |shortcuts(n)|/degree(n) + sum(shortcut hopcounts)/sum(neighbor edge hopcounts)
//
// scaled by 1000 and truncated to an int64 so it fits pqheap's
// integer-priority heap.
func (st *state) importance(n string, pending []shortcut) int64 {
	neighbors, _ := st.h.NeighborIDs(n)
	degree := len(neighbors)
	if degree == 0 {
		degree = 1
	}

	var neighborHopSum int64
	for _, m := range neighbors {
		neighborHopSum += st.getHop(n, m)
	}
	if neighborHopSum == 0 {
		neighborHopSum = 1
	}

	var shortcutHopSum int64
	for _, sc := range pending {
		shortcutHopSum += sc.hopcount
	}

	importance := float64(st.level[n]) +
		float64(len(pending))/float64(degree) +
		float64(shortcutHopSum)/float64(neighborHopSum)

	return int64(importance * 1000)
}

// selectIndependentSet pops nodes off heap in ascending importance
// order, keeping a node only if none of its neighbors were already
// selected this round, and stopping once the next candidate's
// importance exceeds the minimum selected importance by more than
// independentSetSlack (spec.md §4.J step 2.b). Rejected candidates are
// pushed back so they remain eligible in the next round.
func (st *state) selectIndependentSet(heap *pqheap.Heap) []string {
	selectedSet := make(map[string]bool)
	var selected []string
	var rejected []*pqheap.Item
	minSelected := int64(0)
	haveMin := false

	for heap.Len() > 0 {
		item := heap.Peek()
		if haveMin && item.Priority > minSelected+independentSetSlack {
			break
		}
		heap.Pop()

		n := itoa(item.Node)
		if st.contracted[n] {
			continue
		}

		neighbors, _ := st.h.NeighborIDs(n)
		adjacent := false
		for _, m := range neighbors {
			if selectedSet[m] {
				adjacent = true
				break
			}
		}
		if adjacent {
			rejected = append(rejected, item)
			continue
		}

		selectedSet[n] = true
		selected = append(selected, n)
		if !haveMin || item.Priority < minSelected {
			minSelected = item.Priority
			haveMin = true
		}
	}

	for _, item := range rejected {
		heap.Push(item.Node, item.Priority)
	}

	sort.Strings(selected)

	return selected
}
