package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/frontmatter"
	"git.home.luguber.info/inful/mdpages/internal/gitsource"
	"git.home.luguber.info/inful/mdpages/internal/history"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/markdown"
	"git.home.luguber.info/inful/mdpages/internal/metrics"
	"git.home.luguber.info/inful/mdpages/internal/sequence"
)

func (g *Generator) fetchSource(ctx context.Context, bs *BuildState) error {
	if g.cfg.Source == nil {
		bs.InputDir = g.cfg.Input
		return nil
	}

	dir, cleanup, err := gitsource.Fetch(ctx, g.cfg.Source)
	if err != nil {
		return newFatalStageError(StageFetchSource, err)
	}
	bs.addCleanup(cleanup)
	bs.InputDir = dir
	return nil
}

func (g *Generator) prepareOutput(_ context.Context, _ *BuildState) error {
	if err := os.MkdirAll(g.cfg.Output, 0o755); err != nil {
		return newFatalStageError(StagePrepareOutput,
			apperrors.Wrap(err, apperrors.CategoryFileSystem, apperrors.SeverityFatal, "failed to create output directory"))
	}
	return nil
}

func (g *Generator) scanInput(_ context.Context, bs *BuildState) error {
	entries, err := os.ReadDir(bs.InputDir)
	if err != nil {
		return newFatalStageError(StageScanInput, apperrors.InputDirError(bs.InputDir, err))
	}

	bs.FileNames = bs.FileNames[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		bs.FileNames = append(bs.FileNames, entry.Name())
	}
	slog.Debug("Scanned input directory", logfields.Input(bs.InputDir), logfields.Count(len(bs.FileNames)))
	return nil
}

func (g *Generator) sequencePages(_ context.Context, bs *BuildState) error {
	seq, err := sequence.BuildSequence(bs.FileNames, g.cfg.Extension)
	if err != nil {
		return newFatalStageError(StageSequencePages, err)
	}
	bs.Sequence = seq
	if len(seq) == 0 {
		slog.Warn("No documents found in input directory", logfields.Input(bs.InputDir))
		return nil
	}
	slog.Info("Sequenced documents", logfields.Count(len(seq)))
	return nil
}

func (g *Generator) renderPages(ctx context.Context, bs *BuildState) error {
	for i := range bs.Sequence {
		if err := ctx.Err(); err != nil {
			return newCanceledStageError(StageRenderPages, err)
		}

		doc := bs.Sequence[i]
		page, err := g.processPage(ctx, bs, i)
		if err != nil {
			if ctx.Err() != nil {
				return newCanceledStageError(StageRenderPages, ctx.Err())
			}
			slog.Warn("Skipping page", logfields.Page(doc.FileName), logfields.Error(err))
			bs.Report.AddIssue(doc.FileName, err)
			g.recorder.IncPageResult(metrics.ResultSkipped)
			continue
		}
		bs.Pages = append(bs.Pages, page)
		g.recorder.IncPageResult(metrics.ResultSuccess)
	}
	return nil
}

// processPage reads, splits, and renders a single document. A document that
// disappears mid-run (race with the filesystem) fails here without touching
// already-written outputs.
func (g *Generator) processPage(ctx context.Context, bs *BuildState, position int) (*Page, error) {
	doc := bs.Sequence[position]

	raw, err := os.ReadFile(filepath.Join(bs.InputDir, doc.FileName)) // #nosec G304 -- path comes from the scanned input dir
	if err != nil {
		return nil, apperrors.PageRenderError(doc.FileName, err)
	}

	fm, body, had := frontmatter.Split(raw)

	title := doc.Title
	if had {
		fields, parseErr := frontmatter.Parse(fm)
		if parseErr != nil {
			slog.Warn("Ignoring malformed frontmatter", logfields.Page(doc.FileName), logfields.Error(parseErr))
		} else if t, ok := frontmatter.Title(fields); ok && !doc.IsIndex {
			title = t
		}
	}

	fragment, err := g.renderer.Render(ctx, body)
	if err != nil {
		return nil, apperrors.PageRenderError(doc.FileName, err)
	}
	if g.cfg.Site.Mermaid.Enabled() {
		fragment = markdown.RewriteMermaidBlocks(fragment)
	}

	return &Page{
		Doc:        doc,
		Title:      title,
		Fragment:   fragment,
		Nav:        sequence.ComputeNavigation(bs.Sequence, position),
		OutputName: doc.Name + ".html",
	}, nil
}

func (g *Generator) writePages(_ context.Context, bs *BuildState) error {
	for _, page := range bs.Pages {
		data, err := g.assemble(page)
		if err != nil {
			slog.Warn("Skipping page", logfields.Page(page.OutputName), logfields.Error(err))
			bs.Report.AddIssue(page.Doc.FileName, err)
			g.recorder.IncPageResult(metrics.ResultSkipped)
			continue
		}

		outPath := filepath.Join(g.cfg.Output, page.OutputName)
		// #nosec G306 -- generated pages are public content
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			slog.Warn("Skipping page", logfields.Page(page.OutputName), logfields.Error(err))
			bs.Report.AddIssue(page.Doc.FileName, apperrors.PageWriteError(page.Doc.FileName, err))
			g.recorder.IncPageResult(metrics.ResultSkipped)
			continue
		}

		bs.Report.PagesWritten++
		slog.Debug("Wrote page", logfields.Page(page.OutputName), logfields.Title(page.Title), logfields.Path(outPath))
	}

	if len(bs.Sequence) > 0 && bs.Report.PagesWritten == 0 {
		return newFatalStageError(StageWritePages,
			apperrors.BuildFailed(string(StageWritePages), fmt.Errorf("no pages could be written")))
	}
	return nil
}

func (g *Generator) recordHistory(ctx context.Context, bs *BuildState) error {
	if g.cfg.History == nil {
		return nil
	}

	store, err := history.Open(g.cfg.History.Path)
	if err != nil {
		return newWarnStageError(StageRecordHistory, err)
	}
	defer func() { _ = store.Close() }()

	outcome := OutcomeSuccess
	if len(bs.Report.Issues) > 0 {
		outcome = OutcomeWarning
	}
	rec := history.Record{
		BuildID:  bs.BuildID,
		Started:  bs.Report.Started,
		Duration: time.Since(bs.Report.Started),
		Pages:    bs.Report.PagesWritten,
		Skipped:  len(bs.Report.Issues),
		Outcome:  outcome,
	}
	if err := store.Append(ctx, rec); err != nil {
		return newWarnStageError(StageRecordHistory, err)
	}
	slog.Debug("Recorded build history", logfields.BuildID(bs.BuildID), logfields.Path(g.cfg.History.Path))
	return nil
}
