package main

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/spacefabric/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Rows:         10,
		Columns:      20,
		Bodies:       2,
		Falloff:      "inverse-linear",
		TotalUpdates: 42,
		Deformations: 40,
		Skipped:      2,
		DeepestZ:     -12.5,
		Systems: []scene.SystemStats{
			{Name: "DeformSystem", ExecutionCount: 42, AvgDuration: time.Microsecond},
		},
		GCPauseMetrics: true,
	}

	var out strings.Builder
	require.NoError(t, r.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "10x20 (200 vertices)")
	assert.Contains(t, text, "**Deformations:** 40 (skipped 2)")
	assert.Contains(t, text, "-12.50")
	assert.Contains(t, text, "| DeformSystem | 42 | 1µs |")
	assert.Contains(t, text, "## GC Pause Durations")
}
