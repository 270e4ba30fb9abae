package schedulers

import (
	"cpu-scheduler/internal/core"
)

// runNonPreemptive repeatedly picks the least ready process according to less
// and runs it to completion. When nothing is ready the clock jumps to the
// next arrival.
func runNonPreemptive(states []*core.ProcessState, less lessFunc, timeline *core.Timeline) []core.Result {
	results := make([]core.Result, 0, len(states))
	incoming := newArrivals(states)
	ready := newReadyQueue(less, len(states))

	currentTime := 0
	for len(results) < len(states) {
		incoming.admit(currentTime, ready.push)
		if ready.Len() == 0 {
			currentTime = incoming.nextArrival()
			continue
		}

		s := ready.pop()
		s.Dispatch(currentTime)
		s.Run(s.Remaining)
		currentTime += s.CpuTime
		s.Complete(currentTime)

		timeline.Add(s.ProcessId, s.StartTime, currentTime)
		results = append(results, s.Result())
	}
	return results
}
