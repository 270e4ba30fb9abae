package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestLoadCSV(t *testing.T) {
	in := "id,burst,arrival,priority\n1,5,0,2\n2, 3, 1\n"

	processes, err := LoadCSV(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		{ProcessId: 1, CpuTime: 5, ArrivalTime: 0, Priority: 2},
		{ProcessId: 2, CpuTime: 3, ArrivalTime: 1, Priority: 0},
	}, processes)
}

func TestLoadCSV_InvalidRows(t *testing.T) {
	for _, in := range []string{
		"1,5\n",
		"1,5,0,2,9\n",
		"1,5,0\n2,x,1\n",
	} {
		_, err := LoadCSV(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidRow, in)
	}
}

func TestLoadYAML(t *testing.T) {
	in := `
time_quantum: 3
processes:
  - {id: 1, arrival_time: 0, cpu_time: 5, priority: 1}
  - id: 2
    arrival_time: 2
    cpu_time: 4
`

	processes, quantum, err := LoadYAML(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, 3, quantum)
	assert.Equal(t, []core.Process{
		{ProcessId: 1, ArrivalTime: 0, CpuTime: 5, Priority: 1},
		{ProcessId: 2, ArrivalTime: 2, CpuTime: 4, Priority: 0},
	}, processes)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "processes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,5,0\n"), 0o644))
	txtPath := filepath.Join(dir, "processes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("1,5,0\n"), 0o644))

	processes, quantum, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, processes, 1)
	assert.Zero(t, quantum)

	_, _, err = LoadFile(txtPath)
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, _, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
