// Package gitsource fetches the document source from a git repository when
// the configuration points at a remote instead of a local directory.
package gitsource

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/mdpages/internal/config"
	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
)

// Fetch clones the configured repository into a temporary workspace and
// returns the input directory within it plus a cleanup function. The clone is
// shallow and single-branch; the workspace is removed by cleanup.
func Fetch(ctx context.Context, src *config.SourceConfig) (string, func(), error) {
	workspace, err := os.MkdirTemp("", "mdpages-source-")
	if err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.CategoryFileSystem, apperrors.SeverityFatal, "failed to create source workspace")
	}
	cleanup := func() {
		if err := os.RemoveAll(workspace); err != nil {
			slog.Warn("Failed to clean up source workspace", logfields.Path(workspace), logfields.Error(err))
		}
	}

	slog.Info("Cloning document source", logfields.URL(src.URL), slog.String("branch", src.Branch))

	cloneOptions := &git.CloneOptions{
		URL:          src.URL,
		Depth:        1,
		SingleBranch: true,
	}
	if src.Branch != "" {
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/heads/" + src.Branch)
	}

	repo, err := git.PlainCloneContext(ctx, workspace, false, cloneOptions)
	if err != nil {
		cleanup()
		return "", nil, apperrors.GitCloneError(src.URL, err)
	}

	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Document source cloned", logfields.URL(src.URL), slog.String("commit", ref.Hash().String()[:8]))
	}

	inputDir := workspace
	if src.Path != "" {
		inputDir = filepath.Join(workspace, filepath.Clean(src.Path))
	}
	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		cleanup()
		return "", nil, apperrors.InputDirError(inputDir, err)
	}
	return inputDir, cleanup, nil
}
