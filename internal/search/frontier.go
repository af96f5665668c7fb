package search

import (
	"container/heap"

	"sokoplan.ai/internal/state"
)

// pqueue is a min-heap keyed by priority with a strictly increasing
// insertion counter as the only tie-break. States themselves are never
// compared; equal-priority entries pop in arrival order, which golden-plan
// fixtures depend on.
type pqueue struct {
	items pqItems
	seq   uint64
}

type pqItem struct {
	st       state.State
	priority float64
	seq      uint64
}

type pqItems []pqItem

func (q pqItems) Len() int { return len(q) }
func (q pqItems) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q pqItems) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pqItems) Push(x any)   { *q = append(*q, x.(pqItem)) }
func (q *pqItems) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func (q *pqueue) push(s state.State, priority float64) {
	heap.Push(&q.items, pqItem{st: s, priority: priority, seq: q.seq})
	q.seq++
}

func (q *pqueue) pop() state.State {
	return heap.Pop(&q.items).(pqItem).st
}

func (q *pqueue) empty() bool { return q.items.Len() == 0 }
