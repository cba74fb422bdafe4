package performance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tv-frame/pkg/performance"
)

func TestRollingAverage(t *testing.T) {
	r := performance.NewRollingAverage(3)
	assert.Equal(t, time.Duration(0), r.Average())

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, r.Average())
	assert.Equal(t, 2, r.Count())

	r.Add(30 * time.Millisecond)
	r.Add(40 * time.Millisecond) // evicts 10ms
	assert.Equal(t, 30*time.Millisecond, r.Average())
	assert.Equal(t, 3, r.Count())
}

func TestRollingAverage_MinimumWindow(t *testing.T) {
	r := performance.NewRollingAverage(0)
	r.Add(5 * time.Millisecond)
	r.Add(7 * time.Millisecond)
	assert.Equal(t, 7*time.Millisecond, r.Average())
}

func TestFrameMonitor_Report(t *testing.T) {
	m := performance.NewFrameMonitor(10, 16*time.Millisecond)

	m.RecordFrame(2*time.Millisecond, 4*time.Millisecond)
	m.RecordFrame(2*time.Millisecond, 20*time.Millisecond)

	r := m.Report()
	assert.Equal(t, 2, r.TotalFrames)
	assert.Equal(t, 1, r.SlowFrames)
	assert.InDelta(t, 2.0, r.AvgUpdateMs, 0.001)
	assert.InDelta(t, 12.0, r.AvgDrawMs, 0.001)
	assert.True(t, r.IsHealthy)
}

func TestFrameMonitor_Unhealthy(t *testing.T) {
	m := performance.NewFrameMonitor(4, 16*time.Millisecond)
	for i := 0; i < 4; i++ {
		m.RecordFrame(10*time.Millisecond, 10*time.Millisecond)
	}

	r := m.Report()
	assert.False(t, r.IsHealthy)
	assert.Equal(t, 4, r.SlowFrames)
}
