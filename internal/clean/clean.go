// Package clean implements the clean task, which deletes the root build
// directory and everything under it.
package clean

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/droidconf/droidconf/internal/project"
	"go.uber.org/zap"
)

// TaskName is the name the clean task is registered under.
const TaskName = "clean"

// ErrUnsafePath is returned when the directory to delete is the filesystem
// root or contains the root project.
var ErrUnsafePath = errors.New("refusing to delete path")

// Remove deletes dir recursively. A missing dir is not an error. projectDir,
// when set, must not be inside dir.
func Remove(dir, projectDir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafePath, abs)
	}
	if projectDir != "" {
		proj, err := filepath.Abs(projectDir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", projectDir, err)
		}
		if rel, err := filepath.Rel(abs, proj); err == nil && rel != ".." && !startsWithParent(rel) {
			return fmt.Errorf("%w: %s contains the project at %s", ErrUnsafePath, abs, proj)
		}
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("removing %s: %w", abs, err)
	}
	return nil
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:2] == ".." && os.IsPathSeparator(rel[2])
}

// Register adds the clean task to root's task registry. The build directory
// is read when the task runs, so layout changes made during evaluation are
// honored.
func Register(root *project.Project) error {
	root = root.Root()
	logger := root.Logger()

	return root.Tasks().Register(TaskName, "Deletes the root build directory", func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := root.BuildDir
		logger.Debug("cleaning build directory", zap.String("dir", dir))
		if err := Remove(dir, root.Dir); err != nil {
			return err
		}
		logger.Info("build directory removed", zap.String("dir", dir))
		return nil
	})
}
