package schedulers

import (
	"container/heap"
	"sort"

	"cpu-scheduler/internal/core"
)

// lessFunc orders two ready processes; the one that should run first is less.
type lessFunc func(a, b *core.ProcessState) bool

// readyQueue implements heap.Interface over the processes that have arrived
// and still need the CPU.
type readyQueue struct {
	items []*core.ProcessState
	less  lessFunc
}

func newReadyQueue(less lessFunc, capacity int) *readyQueue {
	return &readyQueue{items: make([]*core.ProcessState, 0, capacity), less: less}
}

func (q *readyQueue) Len() int { return len(q.items) }

func (q *readyQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q *readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push is called by heap.Push, do not call directly.
func (q *readyQueue) Push(x any) {
	q.items = append(q.items, x.(*core.ProcessState))
}

// Pop is called by heap.Pop, do not call directly.
func (q *readyQueue) Pop() any {
	old := q.items
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return s
}

func (q *readyQueue) push(s *core.ProcessState) {
	heap.Push(q, s)
}

func (q *readyQueue) pop() *core.ProcessState {
	return heap.Pop(q).(*core.ProcessState)
}

func (q *readyQueue) peek() *core.ProcessState {
	return q.items[0]
}

// fixHead restores heap order after the head's key changed.
func (q *readyQueue) fixHead() {
	heap.Fix(q, 0)
}

// arrivalOrder returns the states sorted by arrival time, input order on ties.
func arrivalOrder(states []*core.ProcessState) []*core.ProcessState {
	ordered := make([]*core.ProcessState, len(states))
	copy(ordered, states)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})
	return ordered
}

// byArrival is the shared tie-breaker: earlier arrival, then earlier input position.
func byArrival(a, b *core.ProcessState) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}

func byCpuTime(a, b *core.ProcessState) bool {
	if a.CpuTime != b.CpuTime {
		return a.CpuTime < b.CpuTime
	}
	return byArrival(a, b)
}

func byRemaining(a, b *core.ProcessState) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return byArrival(a, b)
}

func byPriority(a, b *core.ProcessState) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return byArrival(a, b)
}

// arrivals feeds processes into a ready set as the clock passes their arrival time.
type arrivals struct {
	pending []*core.ProcessState
	next    int
}

func newArrivals(states []*core.ProcessState) *arrivals {
	return &arrivals{pending: arrivalOrder(states)}
}

// admit hands every process arrived at or before now to add, in arrival order.
func (a *arrivals) admit(now int, add func(*core.ProcessState)) {
	for a.next < len(a.pending) && a.pending[a.next].ArrivalTime <= now {
		add(a.pending[a.next])
		a.next++
	}
}

func (a *arrivals) exhausted() bool {
	return a.next >= len(a.pending)
}

// nextArrival is the arrival time of the earliest process not yet admitted.
func (a *arrivals) nextArrival() int {
	return a.pending[a.next].ArrivalTime
}
