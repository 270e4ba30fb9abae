package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	p := Process{ProcessId: 2, ArrivalTime: 1, CpuTime: 3, Priority: 4}

	r := NewResult(p, 5, 8)

	assert.Equal(t, 2, r.ProcessId)
	assert.Equal(t, 4, r.Priority)
	assert.Equal(t, 5, r.StartTime)
	assert.Equal(t, 8, r.CompletionTime)
	assert.Equal(t, r.CompletionTime, r.EndTime)
	assert.Equal(t, 7, r.TurnAroundTime)
	assert.Equal(t, 4, r.WaitingTime)
	assert.Equal(t, 4, r.ResponseTime)
}

func TestNewResult_NoWait(t *testing.T) {
	r := NewResult(Process{ProcessId: 1, ArrivalTime: 3, CpuTime: 2}, 3, 5)

	assert.Zero(t, r.WaitingTime)
	assert.Zero(t, r.ResponseTime)
	assert.Equal(t, 2, r.TurnAroundTime)
}
