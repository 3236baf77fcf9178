package perf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_AccumulatesAcrossIntervals(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	time.Sleep(time.Millisecond)
	timer.Stop()
	first := timer.TotalDuration()
	assert.Greater(t, first, time.Duration(0))

	timer.Start()
	time.Sleep(time.Millisecond)
	timer.Stop()
	assert.Greater(t, timer.TotalDuration(), first)
}

func TestTimer_StartWhileRunningPanics(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	assert.Panics(t, func() { timer.Start() })
}

func TestTimer_StopWhileNotRunningPanics(t *testing.T) {
	timer := NewTimer()
	assert.Panics(t, func() { timer.Stop() })
}

func TestTimer_Report(t *testing.T) {
	timer := NewTimer()
	timer.SetReport("binary heap")
	timer.Start()
	timer.Stop()
	assert.Contains(t, timer.Report(), "binary heap")
}
