package core

// Interval is a half-open span [Start, End) during which ProcessId held the CPU.
type Interval struct {
	ProcessId int
	Start     int
	End       int
}

func (i Interval) Len() int {
	return i.End - i.Start
}

// Timeline collects execution intervals in dispatch order. Touching intervals
// of the same process are merged, so two adjacent entries never share an id.
type Timeline struct {
	intervals []Interval
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{intervals: make([]Interval, 0, capacity)}
}

// Add records that processId ran over [start, end). Empty spans are ignored.
func (t *Timeline) Add(processId, start, end int) {
	if end <= start {
		return
	}
	if n := len(t.intervals); n > 0 {
		last := &t.intervals[n-1]
		if last.ProcessId == processId && last.End == start {
			last.End = end
			return
		}
	}
	t.intervals = append(t.intervals, Interval{ProcessId: processId, Start: start, End: end})
}

// Intervals returns a copy of the recorded intervals.
func (t *Timeline) Intervals() []Interval {
	out := make([]Interval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

func (t *Timeline) Len() int {
	return len(t.intervals)
}
