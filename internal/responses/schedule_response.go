package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	CpuTime        int `json:"cpu_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	EndTime        int `json:"end_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
}

// IntervalResponse is one Gantt block. Left and Width are in pixels, measured
// from the first block.
type IntervalResponse struct {
	ProcessId int    `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Left      int    `json:"left"`
	Width     int    `json:"width"`
	Color     string `json:"color"`
}

type ScheduleResponse struct {
	RunId                 string             `json:"run_id,omitempty"`
	Algorithm             string             `json:"algorithm"`
	Preemptive            bool               `json:"preemptive"`
	TimeQuantum           int                `json:"time_quantum,omitempty"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []IntervalResponse `json:"timeline"`
}

type AllResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
