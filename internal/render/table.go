package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

const (
	idleLabel = "idle"
	cellWidth = 8 // labels wider than this are printed unpadded
)

func OutputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// OutputGantt draws the timeline as a row of labelled cells followed by their
// boundary times. Gaps between intervals are shown as idle cells.
func OutputGantt(w io.Writer, timeline []responses.IntervalResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	type cell struct {
		label      string
		start, end int
	}
	cells := make([]cell, 0, len(timeline))
	for i, interval := range timeline {
		if i > 0 && timeline[i-1].End < interval.Start {
			cells = append(cells, cell{idleLabel, timeline[i-1].End, interval.Start})
		}
		cells = append(cells, cell{fmt.Sprint(interval.ProcessId), interval.Start, interval.End})
	}

	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(0, (cellWidth-len(c.label))/2))
		_, _ = fmt.Fprint(w, padding, c.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, c := range cells {
		_, _ = fmt.Fprint(w, c.start, "\t")
		if i == len(cells)-1 {
			_, _ = fmt.Fprint(w, c.end)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// OutputSchedule writes one row per process and a footer of averages. Averages
// are rounded to two decimals here only.
func OutputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Response", "Exit"})

	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.CpuTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		}
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}

// Output writes the full report for one run.
func Output(w io.Writer, title string, response responses.ScheduleResponse) {
	OutputTitle(w, title)
	OutputGantt(w, response.Timeline)
	OutputSchedule(w, response)
}
