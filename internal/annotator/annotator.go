// Package annotator prepends OpenAPI JSDoc blocks to controller entry files.
//
// A controller entry file is a source file named after its directory, for
// example controller/admin/user/user.js. Files that already carry one of the
// configured markers are left alone, so repeated runs are harmless.
package annotator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aman-s12345/swagger-sync/internal/analyzer"
	"github.com/Aman-s12345/swagger-sync/internal/config"
	"github.com/Aman-s12345/swagger-sync/internal/logging"
)

type Annotator struct {
	cfg    config.Annotate
	logger *slog.Logger
}

// Result lists the entry files seen by a run.
type Result struct {
	Updated   []string // block written
	Annotated []string // marker already present
	Pending   []string // would be written; dry run only
}

// New returns an Annotator for cfg. An empty platform list falls back to the
// default platforms.
func New(cfg config.Annotate, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = logging.Discard()
	}
	if len(cfg.Platforms) == 0 {
		cfg.Platforms = config.Default().Annotate.Platforms
	}
	return &Annotator{cfg: cfg, logger: logger}
}

// Run annotates every entry file under the configured roots, in root order
// and lexical order within a root. The first I/O error stops the run.
func (a *Annotator) Run() (*Result, error) {
	result := &Result{}
	for _, root := range a.cfg.RootDirs {
		if err := a.walk(root, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (a *Annotator) walk(root string, result *Result) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("controller directory not found", "root", root)
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !a.IsCandidate(path) {
			return nil
		}

		changed, err := a.AnnotateFile(path)
		if err != nil {
			return err
		}
		switch {
		case !changed:
			result.Annotated = append(result.Annotated, path)
		case a.cfg.DryRun:
			a.logger.Info("would update", "file", path)
			result.Pending = append(result.Pending, path)
		default:
			a.logger.Info("updated", "file", path)
			result.Updated = append(result.Updated, path)
		}
		return nil
	})
}

// IsCandidate reports whether path is a controller entry file: a source file,
// not the index file, whose name without extension equals its directory name.
func (a *Annotator) IsCandidate(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, a.cfg.SourceExt) || base == a.cfg.IndexFile {
		return false
	}
	return a.RouteStem(path) == filepath.Base(filepath.Dir(path))
}

// AnnotateFile prepends the block to the file at path unless it is already
// annotated. It reports whether the file needed the block; in a dry run the
// file is never written.
func (a *Annotator) AnnotateFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if a.IsAnnotated(string(content)) {
		a.logger.Debug("already annotated", "file", path)
		return false, nil
	}
	if a.cfg.DryRun {
		return true, nil
	}

	block, err := Block(a.EntityName(path), a.Platform(path), a.RouteStem(path))
	if err != nil {
		return false, err
	}
	updated := append([]byte(block), content...)
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func (a *Annotator) IsAnnotated(content string) bool {
	for _, marker := range a.cfg.Markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// EntityName is the capitalized name of the directory holding the file, or
// the default entity for paths of two segments or fewer.
func (a *Annotator) EntityName(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) <= 2 {
		return a.cfg.DefaultEntity
	}
	return analyzer.Capitalize(parts[len(parts)-2])
}

// Platform returns the first configured platform whose controller segment
// (controller/<platform>) appears in path, falling back to the first platform.
func (a *Annotator) Platform(path string) string {
	slashed := filepath.ToSlash(path)
	for _, platform := range a.cfg.Platforms {
		if strings.Contains(slashed, a.cfg.ControllerDir+"/"+platform) {
			return platform
		}
	}
	return a.cfg.Platforms[0]
}

func (a *Annotator) RouteStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), a.cfg.SourceExt)
}
