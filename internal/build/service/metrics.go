package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks build pipeline counters
type Metrics struct {
	buildsStarted     int64
	buildsCompleted   int64
	buildsFailed      int64
	engineInvocations int64
	fallbacksUsed     int64
	buildDuration     int64 // Total duration in nanoseconds
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		buildsStarted:     atomic.LoadInt64(&globalMetrics.buildsStarted),
		buildsCompleted:   atomic.LoadInt64(&globalMetrics.buildsCompleted),
		buildsFailed:      atomic.LoadInt64(&globalMetrics.buildsFailed),
		engineInvocations: atomic.LoadInt64(&globalMetrics.engineInvocations),
		fallbacksUsed:     atomic.LoadInt64(&globalMetrics.fallbacksUsed),
		buildDuration:     atomic.LoadInt64(&globalMetrics.buildDuration),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.buildsStarted, 0)
	atomic.StoreInt64(&globalMetrics.buildsCompleted, 0)
	atomic.StoreInt64(&globalMetrics.buildsFailed, 0)
	atomic.StoreInt64(&globalMetrics.engineInvocations, 0)
	atomic.StoreInt64(&globalMetrics.fallbacksUsed, 0)
	atomic.StoreInt64(&globalMetrics.buildDuration, 0)
}

// recordBuildStarted records a new build job entering the pipeline
func recordBuildStarted() {
	atomic.AddInt64(&globalMetrics.buildsStarted, 1)
}

// recordBuildFinished records a terminal build outcome and its duration
func recordBuildFinished(duration time.Duration, failed bool) {
	atomic.AddInt64(&globalMetrics.buildDuration, duration.Nanoseconds())
	if failed {
		atomic.AddInt64(&globalMetrics.buildsFailed, 1)
	} else {
		atomic.AddInt64(&globalMetrics.buildsCompleted, 1)
	}
}

// recordEngineInvocation records one engine launch
func recordEngineInvocation() {
	atomic.AddInt64(&globalMetrics.engineInvocations, 1)
}

// recordFallbackUsed records a build served by placeholder artifacts
func recordFallbackUsed() {
	atomic.AddInt64(&globalMetrics.fallbacksUsed, 1)
}

// BuildsStarted returns the number of builds that entered the pipeline
func (m Metrics) BuildsStarted() int64 { return m.buildsStarted }

// BuildsCompleted returns the number of successful builds
func (m Metrics) BuildsCompleted() int64 { return m.buildsCompleted }

// BuildsFailed returns the number of failed builds
func (m Metrics) BuildsFailed() int64 { return m.buildsFailed }

// FallbacksUsed returns the number of builds served by placeholder artifacts
func (m Metrics) FallbacksUsed() int64 { return m.fallbacksUsed }

// AverageBuildDuration returns the average build duration in milliseconds
func (m Metrics) AverageBuildDuration() float64 {
	finished := m.buildsCompleted + m.buildsFailed
	if finished == 0 {
		return 0
	}
	avgNs := float64(m.buildDuration) / float64(finished)
	return avgNs / 1e6
}
