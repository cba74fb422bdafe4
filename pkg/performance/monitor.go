// Package performance tracks render loop timing for the frame.
package performance

import (
	"log"
	"runtime"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	next    int
	count   int
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{samples: make([]time.Duration, windowSize)}
}

// Add records a new sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(d time.Duration) {
	if r.count == len(r.samples) {
		r.sum -= r.samples[r.next]
	} else {
		r.count++
	}

	r.samples[r.next] = d
	r.sum += d
	r.next = (r.next + 1) % len(r.samples)
}

// Average returns the current rolling average, 0 with no samples
func (r *RollingAverage) Average() time.Duration {
	if r.count == 0 {
		return 0
	}
	return r.sum / time.Duration(r.count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	return r.count
}

// FrameMonitor tracks how long the loop spends in Update and Draw. It is
// owned by the render loop and not safe for concurrent use.
type FrameMonitor struct {
	budget      time.Duration
	updateTimes *RollingAverage
	drawTimes   *RollingAverage
	totalFrames int
	slowFrames  int
	startTime   time.Time
}

// FrameReport contains aggregated frame metrics
type FrameReport struct {
	AvgUpdateMs   float64
	AvgDrawMs     float64
	TotalFrames   int
	SlowFrames    int // frames whose update+draw exceeded the budget
	IsHealthy     bool
	UptimeSeconds int64
}

// NewFrameMonitor creates a monitor averaging over windowSize frames with
// the given per-frame budget (1s/targetFPS)
func NewFrameMonitor(windowSize int, budget time.Duration) *FrameMonitor {
	return &FrameMonitor{
		budget:      budget,
		updateTimes: NewRollingAverage(windowSize),
		drawTimes:   NewRollingAverage(windowSize),
		startTime:   time.Now(),
	}
}

// RecordFrame records one loop iteration
func (m *FrameMonitor) RecordFrame(update, draw time.Duration) {
	m.updateTimes.Add(update)
	m.drawTimes.Add(draw)
	m.totalFrames++
	if update+draw > m.budget {
		m.slowFrames++
	}
}

// Report generates a report with current metrics
func (m *FrameMonitor) Report() FrameReport {
	avgUpdate := m.updateTimes.Average()
	avgDraw := m.drawTimes.Average()

	return FrameReport{
		AvgUpdateMs:   float64(avgUpdate.Microseconds()) / 1000.0,
		AvgDrawMs:     float64(avgDraw.Microseconds()) / 1000.0,
		TotalFrames:   m.totalFrames,
		SlowFrames:    m.slowFrames,
		IsHealthy:     avgUpdate+avgDraw <= m.budget,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}

// LogReport logs the frame report together with Go heap statistics
func (m *FrameMonitor) LogReport() {
	r := m.Report()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	log.Printf("Frames: total=%d slow=%d update=%.2fms draw=%.2fms healthy=%t uptime=%ds | Go[Alloc=%dMB, Sys=%dMB, GC=%d]",
		r.TotalFrames, r.SlowFrames, r.AvgUpdateMs, r.AvgDrawMs, r.IsHealthy, r.UptimeSeconds,
		mem.Alloc/(1024*1024), mem.Sys/(1024*1024), mem.NumGC)
}
