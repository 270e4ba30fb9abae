package schedulers

import (
	"cpu-scheduler/internal/core"
)

// scheduleShortestJobFirst dispatches the ready process with the smallest
// burst and never preempts it.
func scheduleShortestJobFirst(states []*core.ProcessState, timeline *core.Timeline) []core.Result {
	return runNonPreemptive(states, byCpuTime, timeline)
}
