package render

import "cpu-scheduler/internal/core"

// PixelsPerUnit is the width of one time unit when a timeline is drawn.
const PixelsPerUnit = 60

// Palette is cycled through in order of first appearance on a timeline.
var Palette = []string{
	"#3498db",
	"#e74c3c",
	"#2ecc71",
	"#f39c12",
	"#9b59b6",
	"#1abc9c",
	"#e67e22",
	"#34495e",
}

// AssignColors gives every process on the timeline a palette color. Colors are
// handed out in first-appearance order and wrap around once the palette runs out.
func AssignColors(timeline []core.Interval) map[int]string {
	colors := make(map[int]string)
	for _, interval := range timeline {
		if _, ok := colors[interval.ProcessId]; ok {
			continue
		}
		colors[interval.ProcessId] = Palette[len(colors)%len(Palette)]
	}
	return colors
}

// Block is an interval positioned for drawing.
type Block struct {
	ProcessId int
	Left      int
	Width     int
	Color     string
}

// Blocks lays the timeline out left to right, scale pixels per time unit,
// with the earliest start at offset zero.
func Blocks(timeline []core.Interval, scale int) []Block {
	if len(timeline) == 0 {
		return nil
	}

	colors := AssignColors(timeline)
	origin := timeline[0].Start
	blocks := make([]Block, len(timeline))
	for i, interval := range timeline {
		blocks[i] = Block{
			ProcessId: interval.ProcessId,
			Left:      (interval.Start - origin) * scale,
			Width:     interval.Len() * scale,
			Color:     colors[interval.ProcessId],
		}
	}
	return blocks
}
