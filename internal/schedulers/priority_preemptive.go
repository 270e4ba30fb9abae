package schedulers

import (
	"cpu-scheduler/internal/core"
)

// schedulePriorityPreemptive preempts the running process as soon as a more
// urgent one arrives. Equal priority never preempts an earlier arrival.
func schedulePriorityPreemptive(states []*core.ProcessState, timeline *core.Timeline) []core.Result {
	return runPreemptive(states, byPriority, timeline)
}
