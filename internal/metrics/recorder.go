// Package metrics defines observability hooks for build and stage timings.
package metrics

import "time"

// ResultLabel enumerates page processing result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder defines observability hooks for build and stage metrics.
// Implementations may forward to Prometheus or elsewhere; NoopRecorder allows
// optional injection.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncPageResult(result ResultLabel)
	IncBuildOutcome(outcome string) // outcome: success|warning|failed|canceled
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncPageResult(ResultLabel)                  {}
func (NoopRecorder) IncBuildOutcome(string)                     {}
