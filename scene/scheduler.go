package scene

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStats struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (s *systemStats) record(d time.Duration) {
	s.count++
	s.last = d
	s.total += d
	if d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
}

// Scheduler runs systems in registration order against one scene.
type Scheduler struct {
	scene   *Scene
	systems []System
	stats   []*systemStats
}

// NewScheduler creates a scheduler for the given scene.
func NewScheduler(scene *Scene) *Scheduler {
	return &Scheduler{scene: scene}
}

// Register appends a system. Systems run in the order they were registered.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, &systemStats{
		name: systemName(system),
		min:  time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Scene returns the scene the systems operate on.
func (s *Scheduler) Scene() *Scene {
	return s.scene
}

// Once executes all registered systems once with the given delta time in seconds.
func (s *Scheduler) Once(dt float64) {
	frame := &UpdateFrame{DeltaTime: dt, Scene: s.scene}
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.stats[i].record(time.Since(start))
	}
}

// Run executes all systems at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns a snapshot of per-system execution statistics.
func (s *Scheduler) Stats() *SchedulerStats {
	out := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}
	for i, st := range s.stats {
		var avg, minDuration time.Duration
		if st.count > 0 {
			avg = st.total / time.Duration(st.count)
			minDuration = st.min
		}
		out.Systems[i] = SystemStats{
			Name:           st.name,
			ExecutionCount: st.count,
			MinDuration:    minDuration,
			MaxDuration:    st.max,
			AvgDuration:    avg,
			LastDuration:   st.last,
			TotalDuration:  st.total,
		}
		out.TotalExecutions += st.count
	}
	return out
}
