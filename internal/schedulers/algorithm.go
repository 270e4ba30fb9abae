package schedulers

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cpu-scheduler/internal/core"
)

// Algorithm names one of the supported scheduling disciplines.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	PriorityNonPreemptive      Algorithm = "priority-np"
	PriorityPreemptive         Algorithm = "priority-p"
	RoundRobin                 Algorithm = "rr"
)

// DefaultTimeQuantum is used by round robin when no positive quantum is given.
const DefaultTimeQuantum = 2

var aliases = map[string]Algorithm{
	"priority-nonpreemptive": PriorityNonPreemptive,
	"priority-preemptive":    PriorityPreemptive,
	"round-robin":            RoundRobin,
}

// Algorithms lists every discipline in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		PriorityNonPreemptive,
		PriorityPreemptive,
		RoundRobin,
	}
}

// ParseAlgorithm maps a tag such as "srtf" to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for _, alg := range Algorithms() {
		if string(alg) == tag {
			return alg, nil
		}
	}
	if alg, ok := aliases[tag]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) Preemptive() bool {
	switch a {
	case ShortestRemainingTimeFirst, PriorityPreemptive, RoundRobin:
		return true
	}
	return false
}

func (a Algorithm) String() string {
	return string(a)
}

// Title is the human readable name of the discipline.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case ShortestRemainingTimeFirst:
		return "Shortest-remaining-time-first"
	case PriorityNonPreemptive:
		return "Priority (non-preemptive)"
	case PriorityPreemptive:
		return "Priority (preemptive)"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

type Options struct {
	// TimeQuantum is the round robin slice; values <= 0 mean DefaultTimeQuantum.
	TimeQuantum int
	Logger      *slog.Logger
}

func (o Options) quantum() int {
	if o.TimeQuantum <= 0 {
		return DefaultTimeQuantum
	}
	return o.TimeQuantum
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Outcome is what a single run produces. Results are in completion order and
// Timeline is sorted by start time.
type Outcome struct {
	Algorithm Algorithm
	Results   []core.Result
	Timeline  []core.Interval
}

// Schedule validates processes and runs them under alg. The input slice is
// only read, so it may be shared between concurrent calls.
func Schedule(alg Algorithm, processes []core.Process, opts Options) (Outcome, error) {
	if err := Validate(processes); err != nil {
		return Outcome{}, err
	}
	return run(alg, processes, opts)
}

// ScheduleAll runs every discipline over the same input concurrently and
// returns the outcomes in Algorithms() order.
func ScheduleAll(processes []core.Process, opts Options) ([]Outcome, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	algorithms := Algorithms()
	outcomes := make([]Outcome, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, alg := range algorithms {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			outcomes[i], errs[i] = run(alg, processes, opts)
		}(i, alg)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}

func run(alg Algorithm, processes []core.Process, opts Options) (Outcome, error) {
	logger := opts.logger().With("algorithm", alg.String())
	logger.Debug("running scheduler", "processes", len(processes))

	states := core.NewRunState(processes)
	timeline := core.NewTimeline(len(processes))

	var results []core.Result
	switch alg {
	case FirstComeFirstServe:
		results = scheduleFirstComeFirstServe(states, timeline)
	case ShortestJobFirst:
		results = scheduleShortestJobFirst(states, timeline)
	case ShortestRemainingTimeFirst:
		results = scheduleShortestRemainingTimeFirst(states, timeline)
	case PriorityNonPreemptive:
		results = schedulePriorityNonPreemptive(states, timeline)
	case PriorityPreemptive:
		results = schedulePriorityPreemptive(states, timeline)
	case RoundRobin:
		logger = logger.With("time_quantum", opts.quantum())
		results = scheduleRoundRobin(states, opts.quantum(), timeline)
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	logger.Debug("scheduler finished", "completed", len(results), "intervals", timeline.Len())
	return Outcome{
		Algorithm: alg,
		Results:   results,
		Timeline:  timeline.Intervals(),
	}, nil
}
