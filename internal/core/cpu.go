package core

// CpuMetric summarises how busy the simulated CPU was over a run, measured
// from the first arrival to the last completion.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives the CPU metric of a run from its input and timeline.
func MeasureCpu(processes []Process, timeline []Interval) CpuMetric {
	if len(processes) == 0 || len(timeline) == 0 {
		return CpuMetric{}
	}

	firstArrival := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < firstArrival {
			firstArrival = p.ArrivalTime
		}
	}

	var utilizationTime, lastEnd int
	for _, interval := range timeline {
		utilizationTime += interval.Len()
		if interval.End > lastEnd {
			lastEnd = interval.End
		}
	}

	totalTime := lastEnd - firstArrival
	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}

// Utilization is the busy fraction of TotalTime, or 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is processes completed per time unit, or 0 for an empty run.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
