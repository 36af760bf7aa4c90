package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsAverageAndFPS(t *testing.T) {
	require.NoError(t, MetricsInitialize())

	// 60 frames of 20ms cover 1.2 seconds
	for i := 0; i < 60; i++ {
		MetricsUpdate(0.020)
	}
	fps, ms := MetricsFrame()
	assert.InDelta(t, 20.0, ms, 1e-9)
	assert.Equal(t, float64(50), fps)
	assert.Equal(t, fps, MetricsFPS())
	assert.Equal(t, ms, MetricsFrameTime())
}

func TestClockElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := &Clock{now: func() time.Time { return now }}

	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	now = now.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}
