package core

// Process is a unit of CPU demand submitted to a scheduler. Schedulers never
// mutate it; per-run bookkeeping lives in ProcessState.
type Process struct {
	ProcessId   int
	ArrivalTime int
	CpuTime     int
	Priority    int // lower value = more urgent
}

// Result holds the timing of one process after a run.
type Result struct {
	ProcessId      int
	ArrivalTime    int
	CpuTime        int
	Priority       int
	StartTime      int
	CompletionTime int
	EndTime        int
	WaitingTime    int
	TurnAroundTime int
	ResponseTime   int
}

// NewResult derives waiting, turnaround and response time from the first
// dispatch and completion of p.
func NewResult(p Process, startTime, completionTime int) Result {
	turnAroundTime := completionTime - p.ArrivalTime
	return Result{
		ProcessId:      p.ProcessId,
		ArrivalTime:    p.ArrivalTime,
		CpuTime:        p.CpuTime,
		Priority:       p.Priority,
		StartTime:      startTime,
		CompletionTime: completionTime,
		EndTime:        completionTime,
		WaitingTime:    turnAroundTime - p.CpuTime,
		TurnAroundTime: turnAroundTime,
		ResponseTime:   startTime - p.ArrivalTime,
	}
}
