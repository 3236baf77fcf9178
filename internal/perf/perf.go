// Package perf provides a small timer for measuring and reporting how
// long a run of cmd/heapperf took.
package perf

import (
	"fmt"
	"time"
)

// Timer measures elapsed wall-clock time across one or more Start/Stop
// pairs, accumulating the total across repeated measurements the way a
// caller benchmarking several scenarios in one process would want.
type Timer struct {
	startedAt time.Time
	running   bool
	total     time.Duration
	report    string
}

// NewTimer returns a Timer with zero accumulated duration.
func NewTimer() *Timer {
	return &Timer{}
}

// Start begins timing. Panics if the timer is already running.
func (t *Timer) Start() {
	if t.running {
		panic("perf: Start called while already running")
	}
	t.running = true
	t.startedAt = time.Now()
}

// Stop ends the current timing interval and adds its duration to the
// accumulated total. Panics if the timer is not running.
func (t *Timer) Stop() {
	if !t.running {
		panic("perf: Stop called while not running")
	}
	t.total += time.Since(t.startedAt)
	t.running = false
}

// TotalDuration returns the accumulated duration across every completed
// Start/Stop interval.
func (t *Timer) TotalDuration() time.Duration {
	return t.total
}

// SetReport attaches a caller-chosen label to this timer, which Report
// prints ahead of the accumulated duration.
func (t *Timer) SetReport(report string) {
	t.report = report
}

// Report renders the timer's label and accumulated duration for
// human-readable log output.
func (t *Timer) Report() string {
	if t.report == "" {
		return t.TotalDuration().String()
	}
	return fmt.Sprintf("%s: %s", t.report, t.TotalDuration())
}
