package schedulers

import (
	"cpu-scheduler/internal/core"
)

// scheduleFirstComeFirstServe runs processes to completion in arrival order.
func scheduleFirstComeFirstServe(states []*core.ProcessState, timeline *core.Timeline) []core.Result {
	results := make([]core.Result, 0, len(states))

	currentTime := 0
	for _, s := range arrivalOrder(states) {
		startTime := max(currentTime, s.ArrivalTime)
		s.Dispatch(startTime)
		s.Run(s.CpuTime)
		currentTime = startTime + s.CpuTime
		s.Complete(currentTime)

		timeline.Add(s.ProcessId, startTime, currentTime)
		results = append(results, s.Result())
	}
	return results
}
