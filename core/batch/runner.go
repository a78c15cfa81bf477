package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tristendillon/pagemigrate/core/config"
	"github.com/tristendillon/pagemigrate/core/diff"
	"github.com/tristendillon/pagemigrate/core/logger"
	"github.com/tristendillon/pagemigrate/core/models"
	"github.com/tristendillon/pagemigrate/core/rewrite"
)

type Runner struct {
	BaseDir  string
	Files    []string
	DryRun   bool
	Pipeline *rewrite.Pipeline
	Reporter *Reporter
}

func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		BaseDir:  cfg.BaseDir,
		Files:    cfg.Files,
		Pipeline: rewrite.NewPipeline(),
		Reporter: NewReporter(out),
	}
}

func (r *Runner) Targets() []models.TargetFile {
	targets := make([]models.TargetFile, 0, len(r.Files))
	for _, name := range r.Files {
		targets = append(targets, models.TargetFile{
			Name: name,
			Path: filepath.Join(r.BaseDir, name),
		})
	}
	return targets
}

// Run processes every target one after another. A missing file is reported
// and skipped; any other failure stops the run and leaves files already
// written in their migrated state.
func (r *Runner) Run(ctx context.Context) (*models.Summary, error) {
	summary := models.NewSummary()
	logger.Debug("Migrating %d files under %s", len(r.Files), r.BaseDir)

	for _, target := range r.Targets() {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("migration interrupted before %s: %w", target.Name, err)
		}

		res, err := r.processFile(target)
		if err != nil {
			return summary, fmt.Errorf("failed to migrate %s: %w", target.Path, err)
		}

		summary.Add(res)
		r.Reporter.File(res)
	}

	r.Reporter.Done(summary, r.DryRun)
	logger.Debug("Migration summary: %s", summary)
	return summary, nil
}

func (r *Runner) processFile(target models.TargetFile) (models.FileResult, error) {
	res := models.FileResult{TargetFile: target}

	info, err := os.Stat(target.Path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Skipping missing file %s", target.Path)
		res.Status = models.StatusNotFound
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to stat file: %w", err)
	}

	src, err := os.ReadFile(target.Path)
	if err != nil {
		return res, fmt.Errorf("failed to read file: %w", err)
	}

	out, err := r.Pipeline.RunBytes(src)
	if err != nil {
		return res, err
	}
	res.Applied = out.Applied

	if !out.Changed() {
		if r.Reporter.Strict {
			logger.Warn("No rule matched %s", target.Name)
		} else {
			logger.Debug("No rule matched %s", target.Name)
		}
		res.Status = models.StatusUnchanged
		return res, nil
	}
	logger.Debug("Rules applied to %s: %v", target.Name, out.Applied)

	if r.DryRun {
		res.Status = models.StatusWouldUpdate
		res.Diff, err = diff.Unified(target.Name, string(src), out.Text)
		return res, err
	}

	if err := os.WriteFile(target.Path, []byte(out.Text), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write file: %w", err)
	}

	res.Status = models.StatusUpdated
	return res, nil
}
