package schedulers

import (
	"cpu-scheduler/internal/core"
)

// schedulePriorityNonPreemptive dispatches the most urgent ready process
// (lowest priority value) and runs it to completion.
func schedulePriorityNonPreemptive(states []*core.ProcessState, timeline *core.Timeline) []core.Result {
	return runNonPreemptive(states, byPriority, timeline)
}
