// Package site turns a directory of Markdown documents into the linked HTML
// page set: it sequences the documents, renders each one through the
// configured renderer, assembles the page shell, and writes the output.
package site

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/markdown"
	"git.home.luguber.info/inful/mdpages/internal/metrics"
	"git.home.luguber.info/inful/mdpages/internal/site/theme"
)

// Generator orchestrates the build stages for one site.
type Generator struct {
	cfg      *config.Config
	renderer markdown.Renderer
	recorder metrics.Recorder
	theme    theme.Theme
}

// NewGenerator creates a Generator with the built-in Goldmark renderer.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		renderer: markdown.NewGoldmarkRenderer(markdown.Options{
			HighlightStyle: cfg.Site.HighlightStyle,
			UnsafeHTML:     cfg.Site.UnsafeHTML,
		}),
		recorder: metrics.NoopRecorder{},
		theme:    theme.Get(cfg.Site.Theme),
	}
}

// WithRenderer swaps the rendering collaborator (fluent helper).
func (g *Generator) WithRenderer(r markdown.Renderer) *Generator { g.renderer = r; return g }

// WithRecorder attaches a metrics recorder (fluent helper).
func (g *Generator) WithRecorder(rec metrics.Recorder) *Generator { g.recorder = rec; return g }

func (g *Generator) stages() []StageDef {
	return []StageDef{
		{StageFetchSource, g.fetchSource},
		{StagePrepareOutput, g.prepareOutput},
		{StageScanInput, g.scanInput},
		{StageSequencePages, g.sequencePages},
		{StageRenderPages, g.renderPages},
		{StageWritePages, g.writePages},
		{StageRecordHistory, g.recordHistory},
	}
}

// Build runs the full stage pipeline and returns the build report. The report
// is non-nil even on failure.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	bs := &BuildState{
		BuildID: uuid.NewString(),
		Timings: make(map[StageName]time.Duration),
	}
	bs.Report = newBuildReport(bs.BuildID)
	defer bs.runCleanups()

	slog.Info("Starting site build",
		logfields.BuildID(bs.BuildID),
		logfields.Input(g.cfg.Input),
		logfields.Output(g.cfg.Output),
		logfields.Theme(g.theme.Name))

	for _, def := range g.stages() {
		if err := ctx.Err(); err != nil {
			return g.abort(bs, OutcomeCanceled, newCanceledStageError(def.Name, err))
		}

		start := time.Now()
		err := def.Fn(ctx, bs)
		elapsed := time.Since(start)
		bs.Timings[def.Name] = elapsed
		g.recorder.ObserveStageDuration(string(def.Name), elapsed)
		slog.Debug("Stage finished", logfields.Stage(string(def.Name)), logfields.DurationMS(float64(elapsed.Milliseconds())))

		if err == nil {
			continue
		}

		var se *StageError
		if stderrors.As(err, &se) {
			switch se.Kind {
			case StageErrorWarning:
				slog.Warn("Stage reported a non-fatal problem", logfields.Stage(string(se.Stage)), logfields.Error(se.Err))
				continue
			case StageErrorCanceled:
				return g.abort(bs, OutcomeCanceled, se)
			}
		}
		return g.abort(bs, OutcomeFailed, err)
	}

	bs.Report.finish("")
	g.recorder.ObserveBuildDuration(bs.Report.Duration)
	g.recorder.IncBuildOutcome(bs.Report.Outcome)

	slog.Info("Site build complete",
		logfields.BuildID(bs.BuildID),
		logfields.Count(bs.Report.PagesWritten),
		slog.Int("skipped", len(bs.Report.Issues)),
		logfields.DurationMS(float64(bs.Report.Duration.Milliseconds())))
	return bs.Report, nil
}

func (g *Generator) abort(bs *BuildState, outcome string, err error) (*BuildReport, error) {
	bs.Report.finish(outcome)
	g.recorder.ObserveBuildDuration(bs.Report.Duration)
	g.recorder.IncBuildOutcome(outcome)
	slog.Error("Site build aborted", logfields.BuildID(bs.BuildID), logfields.Error(err))
	return bs.Report, err
}
