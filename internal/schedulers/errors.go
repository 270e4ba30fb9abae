package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrNoProcesses        = errors.New("no processes to schedule")
	ErrInvalidCpuTime     = errors.New("cpu time must be positive")
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
	ErrDuplicateProcessId = errors.New("duplicate process id")
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
)

// Validate rejects input that would yield meaningless metrics.
func Validate(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}

	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.CpuTime <= 0 {
			return fmt.Errorf("%w: process %d has cpu time %d", ErrInvalidCpuTime, p.ProcessId, p.CpuTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d arrives at %d", ErrInvalidArrivalTime, p.ProcessId, p.ArrivalTime)
		}
		if _, ok := seen[p.ProcessId]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProcessId, p.ProcessId)
		}
		seen[p.ProcessId] = struct{}{}
	}
	return nil
}
