package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

var (
	ErrInvalidRow      = errors.New("invalid process row")
	ErrUnsupportedFile = errors.New("unsupported process file")
)

// LoadFile reads processes from a .csv, .yaml or .yml file. A YAML file may
// also carry a time quantum, which is returned alongside (zero when absent).
func LoadFile(path string) ([]core.Process, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		processes, err := LoadCSV(f)
		return processes, 0, err
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// LoadCSV parses rows of id,burst,arrival[,priority]. A first row whose id is
// not a number is taken as a header and skipped.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			rows = rows[1:]
		}
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w %d: want 3 or 4 fields, got %d", ErrInvalidRow, i+1, len(row))
		}
		fields := make([]int, 4)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w %d: %v", ErrInvalidRow, i+1, err)
			}
			fields[j] = v
		}
		processes = append(processes, core.Process{
			ProcessId:   fields[0],
			CpuTime:     fields[1],
			ArrivalTime: fields[2],
			Priority:    fields[3],
		})
	}
	return processes, nil
}

// LoadYAML parses the same shape the HTTP API accepts:
//
//	time_quantum: 2
//	processes:
//	  - {id: 1, arrival_time: 0, cpu_time: 5, priority: 1}
func LoadYAML(r io.Reader) ([]core.Process, int, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil {
		return nil, 0, fmt.Errorf("parsing YAML: %w", err)
	}
	return request.Processes(), request.TimeQuantum, nil
}
