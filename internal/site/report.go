package site

import (
	"time"
)

// Build outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeWarning  = "warning"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

// PageIssue records a page that could not be rendered or written.
type PageIssue struct {
	Page string
	Err  error
}

// BuildReport summarizes one build run.
type BuildReport struct {
	BuildID      string
	Started      time.Time
	Duration     time.Duration
	PagesWritten int
	Issues       []PageIssue
	Outcome      string
}

func newBuildReport(buildID string) *BuildReport {
	return &BuildReport{BuildID: buildID, Started: time.Now()}
}

// AddIssue records a skipped page.
func (r *BuildReport) AddIssue(page string, err error) {
	r.Issues = append(r.Issues, PageIssue{Page: page, Err: err})
}

// finish stamps the duration and final outcome. An explicit outcome (failed,
// canceled) wins; otherwise the outcome derives from recorded issues.
func (r *BuildReport) finish(outcome string) {
	r.Duration = time.Since(r.Started)
	if outcome != "" {
		r.Outcome = outcome
		return
	}
	if len(r.Issues) > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}
