// Package layout resolves where build output goes. The root build directory
// sits two levels above the root project, so that a host project wrapping the
// Android build shares one build/ tree; each subproject gets its own
// directory beneath it.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/droidconf/droidconf/internal/project"
)

// RootBuildRel is the root build directory relative to the root project.
const RootBuildRel = "../../build"

// ErrInvalidExternal is returned when the external segment would place
// subproject directories outside the root build directory.
var ErrInvalidExternal = errors.New("external segment leaves the build directory")

// Layout holds resolved build directories.
type Layout struct {
	// RootBuildDir is the cleaned absolute (or root-relative) build directory.
	RootBuildDir string
	// External is an optional path segment between RootBuildDir and the
	// per-subproject directories.
	External string
}

// Resolve computes the layout for a root project directory. The external
// segment is relative to the root build directory and may not climb out of it.
func Resolve(rootDir, external string) (Layout, error) {
	ext := filepath.Clean(filepath.FromSlash(external))
	if filepath.IsAbs(ext) || ext == ".." || strings.HasPrefix(ext, ".."+string(filepath.Separator)) {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidExternal, external)
	}
	return Layout{
		RootBuildDir: filepath.Clean(filepath.Join(rootDir, RootBuildRel)),
		External:     ext,
	}, nil
}

// SubprojectDir returns the build directory for the named subproject.
func (l Layout) SubprojectDir(name string) string {
	if l.External == "" || l.External == "." {
		return filepath.Join(l.RootBuildDir, name)
	}
	return filepath.Join(l.RootBuildDir, l.External, name)
}

// Apply sets the build directory of the root project and of each of its
// subprojects.
func (l Layout) Apply(root *project.Project) {
	root = root.Root()
	root.BuildDir = l.RootBuildDir
	for _, sp := range root.Subprojects() {
		sp.BuildDir = l.SubprojectDir(sp.Name)
	}
}

// Action returns the layout as a configuration action. Registered with
// Project.AllProjects it relocates each project as it is evaluated.
func (l Layout) Action() project.Action {
	return func(p *project.Project) error {
		if p.IsRoot() {
			p.BuildDir = l.RootBuildDir
		} else {
			p.BuildDir = l.SubprojectDir(p.Name)
		}
		return nil
	}
}
