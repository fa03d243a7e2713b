package profiler

import (
	"runtime"

	"github.com/Carmen-Shannon/vista-go/engine/logger"
	"go.uber.org/zap"
)

// Sample is one aggregated window of frame statistics.
type Sample struct {
	// FPS is the average frames per second over the window.
	FPS float64
	// FrameMs is the average frame time in milliseconds over the window.
	FrameMs float64
}

// Profiler aggregates per-frame deltas into once-per-second samples. Feed it
// the frame delta every frame; it fires a sample when the accumulated time
// crosses one second, then starts over. Also logs heap and GC statistics with
// each sample.
type Profiler struct {
	accumulated float64
	frameCount  int

	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with an empty accumulator.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Accumulate adds one frame's delta to the window. When the accumulated time
// reaches one second it computes the window's averages, logs them along with
// memory statistics, resets the accumulator and returns the sample.
//
// Parameters:
//   - deltaTime: seconds elapsed since the previous frame
//
// Returns:
//   - Sample: the window averages, valid only when the second value is true
//   - bool: true if the window closed this call
func (p *Profiler) Accumulate(deltaTime float64) (Sample, bool) {
	p.accumulated += deltaTime
	p.frameCount++

	if p.accumulated < 1.0 || p.frameCount == 0 {
		return Sample{}, false
	}

	sample := Sample{
		FPS:     float64(p.frameCount) / p.accumulated,
		FrameMs: p.accumulated / float64(p.frameCount) * 1000,
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / p.accumulated

	logger.Log.Debug("frame stats",
		zap.Float64("fps", sample.FPS),
		zap.Float64("frame_ms", sample.FrameMs),
		zap.Float64("heap_mb", allocMB),
		zap.Float64("alloc_rate_mb_s", allocRateMB),
		zap.Uint32("gc_count", p.memStats.NumGC))

	p.accumulated = 0
	p.frameCount = 0
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return sample, true
}
