package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns an outcome into its wire form, adding averages and
// CPU metrics. processes must be the input the outcome was computed from.
func GenerateResponse(processes []core.Process, outcome Outcome, opts Options) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, len(outcome.Results))
	for i, r := range outcome.Results {
		processDetails[i] = generateProcessDetails(r)
	}

	blocks := render.Blocks(outcome.Timeline, render.PixelsPerUnit)
	timeline := make([]responses.IntervalResponse, len(outcome.Timeline))
	for i, interval := range outcome.Timeline {
		timeline[i] = responses.IntervalResponse{
			ProcessId: interval.ProcessId,
			Start:     interval.Start,
			End:       interval.End,
			Left:      blocks[i].Left,
			Width:     blocks[i].Width,
			Color:     blocks[i].Color,
		}
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	cpuMetric := core.MeasureCpu(processes, outcome.Timeline)

	response := responses.ScheduleResponse{
		Algorithm:             outcome.Algorithm.String(),
		Preemptive:            outcome.Algorithm.Preemptive(),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(outcome.Results)),
		Details:               processDetails,
		Timeline:              timeline,
	}
	if outcome.Algorithm == RoundRobin {
		response.TimeQuantum = opts.quantum()
	}
	return response
}

func generateProcessDetails(r core.Result) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      r.ProcessId,
		ArrivalTime:    r.ArrivalTime,
		CpuTime:        r.CpuTime,
		Priority:       r.Priority,
		StartTime:      r.StartTime,
		CompletionTime: r.CompletionTime,
		EndTime:        r.EndTime,
		WaitingTime:    r.WaitingTime,
		TurnAroundTime: r.TurnAroundTime,
		ResponseTime:   r.ResponseTime,
	}
}
