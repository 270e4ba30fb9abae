package core

const notStarted = -1

// ProcessState is the mutable view of a Process during a single run. A fresh
// set is built for every run and dropped when the run returns.
type ProcessState struct {
	Process
	Index          int // position in the caller's input, the last tie-breaker
	Remaining      int
	StartTime      int
	CompletionTime int
}

// NewRunState builds one state per process, in input order.
func NewRunState(processes []Process) []*ProcessState {
	states := make([]*ProcessState, len(processes))
	for i, p := range processes {
		states[i] = &ProcessState{
			Process:        p,
			Index:          i,
			Remaining:      p.CpuTime,
			StartTime:      notStarted,
			CompletionTime: notStarted,
		}
	}
	return states
}

func (s *ProcessState) Started() bool {
	return s.StartTime != notStarted
}

func (s *ProcessState) Done() bool {
	return s.Remaining <= 0
}

// Dispatch marks the first time the process gets the CPU. Later calls are no-ops.
func (s *ProcessState) Dispatch(now int) {
	if !s.Started() {
		s.StartTime = now
	}
}

// Run consumes units of service, never going below zero.
func (s *ProcessState) Run(units int) {
	s.Remaining -= units
	if s.Remaining < 0 {
		s.Remaining = 0
	}
}

func (s *ProcessState) Complete(now int) {
	s.CompletionTime = now
}

func (s *ProcessState) Result() Result {
	return NewResult(s.Process, s.StartTime, s.CompletionTime)
}
