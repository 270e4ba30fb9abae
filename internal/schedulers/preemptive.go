package schedulers

import (
	"cpu-scheduler/internal/core"
)

// runPreemptive always gives the CPU to the least ready process according to
// less, re-deciding whenever a process arrives or completes. Between those
// events the choice cannot change, so the selected process runs straight up
// to the next event instead of one unit at a time.
//
// less must not rank a process lower as it runs: the head's key may only
// decrease (remaining time) or stay put (priority).
func runPreemptive(states []*core.ProcessState, less lessFunc, timeline *core.Timeline) []core.Result {
	results := make([]core.Result, 0, len(states))
	incoming := newArrivals(states)
	ready := newReadyQueue(less, len(states))

	currentTime := incoming.nextArrival()
	for len(results) < len(states) {
		incoming.admit(currentTime, ready.push)
		if ready.Len() == 0 {
			currentTime = incoming.nextArrival()
			continue
		}

		s := ready.peek()
		s.Dispatch(currentTime)

		slice := s.Remaining
		if !incoming.exhausted() {
			slice = min(slice, incoming.nextArrival()-currentTime)
		}
		s.Run(slice)
		timeline.Add(s.ProcessId, currentTime, currentTime+slice)
		currentTime += slice

		if s.Done() {
			ready.pop()
			s.Complete(currentTime)
			results = append(results, s.Result())
		} else {
			ready.fixHead()
		}
	}
	return results
}
