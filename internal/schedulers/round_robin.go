package schedulers

import (
	"cpu-scheduler/internal/core"
)

// scheduleRoundRobin serves a FIFO ready queue in slices of at most
// timeQuantum. Processes arriving during a slice are queued before the
// process that was just preempted.
func scheduleRoundRobin(states []*core.ProcessState, timeQuantum int, timeline *core.Timeline) []core.Result {
	results := make([]core.Result, 0, len(states))
	incoming := newArrivals(states)
	queue := make([]*core.ProcessState, 0, len(states))
	enqueue := func(s *core.ProcessState) {
		queue = append(queue, s)
	}

	currentTime := 0
	incoming.admit(currentTime, enqueue)

	for len(results) < len(states) {
		if len(queue) == 0 {
			if incoming.exhausted() {
				break
			}
			currentTime = incoming.nextArrival()
			incoming.admit(currentTime, enqueue)
			continue
		}

		s := queue[0]
		queue = queue[1:]
		if s.Done() {
			continue
		}

		if currentTime < s.ArrivalTime {
			currentTime = s.ArrivalTime
		}
		s.Dispatch(currentTime)

		slice := min(timeQuantum, s.Remaining)
		timeline.Add(s.ProcessId, currentTime, currentTime+slice)
		s.Run(slice)
		currentTime += slice

		incoming.admit(currentTime, enqueue)
		if !s.Done() {
			enqueue(s)
			continue
		}
		s.Complete(currentTime)
		results = append(results, s.Result())
	}
	return results
}
