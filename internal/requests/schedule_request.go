package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id" yaml:"id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	CpuTime     int `json:"cpu_time" yaml:"cpu_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"processes"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Processes converts the submitted jobs, keeping their order.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			ProcessId:   job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			CpuTime:     job.CpuTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
