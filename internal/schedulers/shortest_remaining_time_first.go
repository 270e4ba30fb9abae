package schedulers

import (
	"cpu-scheduler/internal/core"
)

// scheduleShortestRemainingTimeFirst preempts the running process as soon as
// an arrival has strictly less work left.
func scheduleShortestRemainingTimeFirst(states []*core.ProcessState, timeline *core.Timeline) []core.Result {
	return runPreemptive(states, byRemaining, timeline)
}
