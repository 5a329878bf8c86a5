package site

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/mdpages/internal/sequence"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names.
const (
	StageFetchSource   StageName = "fetch_source"
	StagePrepareOutput StageName = "prepare_output"
	StageScanInput     StageName = "scan_input"
	StageSequencePages StageName = "sequence_pages"
	StageRenderPages   StageName = "render_pages"
	StageWritePages    StageName = "write_pages"
	StageRecordHistory StageName = "record_history"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}
func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}
func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// BuildState carries mutable state across stages.
type BuildState struct {
	BuildID   string
	InputDir  string // resolved source directory (local input or git workspace)
	FileNames []string
	Sequence  []sequence.Document
	Pages     []*Page
	Report    *BuildReport
	Timings   map[StageName]time.Duration

	cleanups []func()
}

func (bs *BuildState) addCleanup(fn func()) {
	if fn != nil {
		bs.cleanups = append(bs.cleanups, fn)
	}
}

func (bs *BuildState) runCleanups() {
	for i := len(bs.cleanups) - 1; i >= 0; i-- {
		bs.cleanups[i]()
	}
	bs.cleanups = nil
}
