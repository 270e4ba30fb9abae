// Command simulate runs the scheduling disciplines over a process file and
// prints a Gantt chart and timing table for each.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/schedulers"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		algorithm string
		quantum   int
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "simulate <process-file>",
		Short: "Simulate CPU scheduling disciplines over a CSV or YAML process file",
		Long: "Reads processes from a .csv file (id,burst,arrival[,priority]) or a .yaml file\n" +
			"and prints the schedule of the chosen discipline, or of all of them.\n\n" +
			"Disciplines: " + algorithmTags() + ", all",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(os.Stderr, logLevel, "text")

			processes, fileQuantum, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quantum") && fileQuantum > 0 {
				quantum = fileQuantum
			}
			opts := schedulers.Options{TimeQuantum: quantum, Logger: logger}

			var outcomes []schedulers.Outcome
			if strings.EqualFold(algorithm, "all") {
				outcomes, err = schedulers.ScheduleAll(processes, opts)
			} else {
				var alg schedulers.Algorithm
				if alg, err = schedulers.ParseAlgorithm(algorithm); err != nil {
					return err
				}
				var outcome schedulers.Outcome
				outcome, err = schedulers.Schedule(alg, processes, opts)
				outcomes = []schedulers.Outcome{outcome}
			}
			if err != nil {
				return fmt.Errorf("scheduling %s: %w", args[0], err)
			}

			for _, outcome := range outcomes {
				render.Output(out, outcome.Algorithm.Title(), schedulers.GenerateResponse(processes, outcome, opts))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "scheduling discipline to run")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "round robin time quantum")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func algorithmTags() string {
	algorithms := schedulers.Algorithms()
	tags := make([]string, len(algorithms))
	for i, alg := range algorithms {
		tags[i] = alg.String()
	}
	return strings.Join(tags, ", ")
}
