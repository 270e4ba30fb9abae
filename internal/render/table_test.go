package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

func TestOutputGantt_MarksIdle(t *testing.T) {
	var buf bytes.Buffer

	OutputGantt(&buf, []responses.IntervalResponse{
		{ProcessId: 1, Start: 0, End: 2},
		{ProcessId: 2, Start: 4, End: 5},
	})

	out := buf.String()
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, idleLabel)
	assert.Contains(t, out, "0\t2\t4\t5")
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer

	Output(&buf, "Round-robin", responses.ScheduleResponse{
		AverageWaitingTime:    7.0 / 3.0,
		AverageTurnAroundTime: 4.5,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, CpuTime: 5, CompletionTime: 8, TurnAroundTime: 8, WaitingTime: 3},
		},
		Timeline: []responses.IntervalResponse{{ProcessId: 1, Start: 0, End: 8}},
	})

	out := buf.String()
	assert.Contains(t, out, "Round-robin")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "2.33")
	assert.Contains(t, out, "4.50")
}

func TestOutputGantt_WideProcessIds(t *testing.T) {
	var buf bytes.Buffer

	assert.NotPanics(t, func() {
		OutputGantt(&buf, []responses.IntervalResponse{
			{ProcessId: 1234567890, Start: 0, End: 2},
			{ProcessId: -123456789, Start: 2, End: 3},
		})
	})
	assert.Contains(t, buf.String(), "|1234567890|-123456789|")
}
