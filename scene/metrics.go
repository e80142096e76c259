package scene

import "github.com/plus3/spacefabric/fabric"

const frameHistory = 60

// Metrics is the per-frame summary shown in the debug UI and the benchmark.
type Metrics struct {
	FrameTime    float32
	FPS          float32
	AvgFrameTime float32
	AvgFPS       float32
	MinFrameTime float32
	MaxFrameTime float32

	// Frame times in milliseconds, oldest first.
	Samples []float32

	Sources  int
	DeepestZ float32
	Frames   int64
}

// MetricsSystem tracks frame times and fabric statistics.
type MetricsSystem struct{}

func (m *MetricsSystem) Execute(frame *UpdateFrame) {
	sc := frame.Scene
	perf := &sc.Metrics
	perf.Frames++

	if frame.DeltaTime > 0 {
		ft := float32(frame.DeltaTime)
		perf.FrameTime = ft
		perf.FPS = 1.0 / ft

		if len(perf.Samples) >= frameHistory {
			perf.Samples = perf.Samples[1:]
		}
		perf.Samples = append(perf.Samples, ft*1000)

		sum := float32(0)
		lo := perf.Samples[0]
		hi := perf.Samples[0]
		for _, sample := range perf.Samples {
			sum += sample
			lo = min(lo, sample)
			hi = max(hi, sample)
		}
		perf.AvgFrameTime = sum / float32(len(perf.Samples))
		if perf.AvgFrameTime > 0 {
			perf.AvgFPS = 1000.0 / perf.AvgFrameTime
		}
		perf.MinFrameTime = lo
		perf.MaxFrameTime = hi
	}

	perf.Sources = sc.Len()
	if sc.Probe.Enabled {
		perf.Sources++
	}

	var deepest float32
	sc.Mesh.EachVertex(func(_ int, v fabric.Vertex, _ fabric.Shade) {
		deepest = min(deepest, v.Z)
	})
	perf.DeepestZ = deepest
}
