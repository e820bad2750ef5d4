package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/droidconf/droidconf/internal/backfill"
	"github.com/droidconf/droidconf/internal/clean"
	"github.com/droidconf/droidconf/internal/config"
	"github.com/droidconf/droidconf/internal/layout"
	"github.com/droidconf/droidconf/internal/project"
	"github.com/droidconf/droidconf/internal/settings"
	"go.uber.org/zap"
)

var descriptionFile string

// evaluatedBuild is a loaded and evaluated build description.
type evaluatedBuild struct {
	Path   string
	Root   *project.Project
	Layout layout.Layout
	Report *backfill.Report
}

// descriptionPath resolves the --file flag against the working directory.
func descriptionPath() (string, error) {
	path := descriptionFile
	if path == "" {
		path = settings.DefaultFileName
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

// loadBuild reads the build description, wires the root configuration
// (layout, namespace backfill, clean task) and evaluates it.
func loadBuild(ctx context.Context, path string, log *zap.Logger) (*evaluatedBuild, error) {
	desc, err := settings.Load(path)
	if err != nil {
		return nil, err
	}

	caps, err := project.DefaultCapabilities().With(config.CapabilityOverrides())
	if err != nil {
		return nil, fmt.Errorf("user config: %w", err)
	}

	root, err := desc.NewProject(filepath.Dir(path), settings.BuildOptions{Capabilities: caps, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	external := desc.Layout.External
	if external == "" {
		external = config.LayoutExternal()
	}
	l, err := layout.Resolve(root.Dir, external)
	if err != nil {
		return nil, fmt.Errorf("%s: layout: %w", path, err)
	}

	report := &backfill.Report{}
	rule := backfill.New(backfill.WithReport(report))

	if err := root.AllProjects(l.Action()); err != nil {
		return nil, err
	}
	if err := root.ConfigureSubprojects(rule.Action()); err != nil {
		return nil, err
	}
	if err := clean.Register(root); err != nil {
		return nil, err
	}

	log.Debug("evaluating build",
		zap.String("description", path),
		zap.Int("subprojects", len(root.Subprojects())),
		zap.String("buildDir", l.RootBuildDir),
	)
	if err := root.Evaluate(ctx); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}
	log.Debug("build evaluated",
		zap.Int("patched", report.Count(backfill.Patched)),
		zap.Int("alreadySet", report.Count(backfill.AlreadySet)),
	)

	return &evaluatedBuild{Path: path, Root: root, Layout: l, Report: report}, nil
}
