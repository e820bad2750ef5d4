package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

var (
	// ErrAlreadyEvaluated is returned when configuring a project whose
	// evaluation has already completed.
	ErrAlreadyEvaluated = errors.New("project already evaluated")

	// ErrEvaluationFailed is returned when configuring or evaluating a build
	// whose evaluation already failed. A failed build cannot be reused.
	ErrEvaluationFailed = errors.New("project evaluation failed")

	// ErrDuplicateProject is returned when a subproject name is reused.
	ErrDuplicateProject = errors.New("duplicate project name")
)

// DefaultRepositories are applied to every project when the build
// description does not list any.
var DefaultRepositories = []string{"google", "mavenCentral"}

// Action configures a project. Actions and after-evaluate hooks share the type.
type Action func(p *Project) error

// Plugin is the build plugin applied to a project.
type Plugin struct {
	ID      string
	Version string
}

type state int

const (
	stateUnevaluated state = iota
	stateEvaluating
	stateEvaluated
	stateFailed
)

// Project is the root project or one of its subprojects.
type Project struct {
	Name         string
	Group        string
	Dir          string
	BuildDir     string
	Plugin       Plugin
	Repositories []string

	parent        *Project
	subprojects   []*Project
	byName        map[string]*Project
	extensions    extensionContainer
	afterEvaluate []Action
	state         state

	// Root-only fields.
	allprojects    []Action
	subprojectsCfg []Action
	tasks          *TaskRegistry
	logger         *zap.Logger
	failure        error
}

// NewRoot creates a root project in dir. A nil logger disables logging.
func NewRoot(name, dir string, logger *zap.Logger) *Project {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Project{
		Name:   name,
		Dir:    dir,
		byName: make(map[string]*Project),
		tasks:  NewTaskRegistry(),
		logger: logger,
	}
}

// AddSubproject creates a subproject under the root. Dir defaults to
// <root>/<name> when relDir is empty.
func (p *Project) AddSubproject(name, group, relDir string) (*Project, error) {
	root := p.Root()
	if err := root.configurable(); err != nil {
		return nil, fmt.Errorf("adding %q: %w", name, err)
	}
	if name == "" {
		return nil, errors.New("subproject name is required")
	}
	if _, ok := root.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateProject, name)
	}
	if relDir == "" {
		relDir = name
	}
	dir := relDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root.Dir, relDir)
	}

	sp := &Project{
		Name:   name,
		Group:  group,
		Dir:    dir,
		parent: root,
	}
	root.subprojects = append(root.subprojects, sp)
	root.byName[name] = sp
	return sp, nil
}

// Root returns the root project.
func (p *Project) Root() *Project {
	if p.parent == nil {
		return p
	}
	return p.parent
}

// IsRoot reports whether p is the root project.
func (p *Project) IsRoot() bool { return p.parent == nil }

// Subprojects returns the subprojects in declaration order.
func (p *Project) Subprojects() []*Project {
	return p.Root().subprojects
}

// FindProject returns the subproject with the given name.
func (p *Project) FindProject(name string) (*Project, bool) {
	sp, ok := p.Root().byName[name]
	return sp, ok
}

// Tasks returns the build's task registry.
func (p *Project) Tasks() *TaskRegistry {
	return p.Root().tasks
}

// Logger returns the build's logger.
func (p *Project) Logger() *zap.Logger {
	return p.Root().logger
}

// AddExtension attaches a named extension.
func (p *Project) AddExtension(name string, ext Extension) error {
	if err := p.extensions.add(name, ext); err != nil {
		return fmt.Errorf("project %s: %w", p.Name, err)
	}
	return nil
}

// FindExtension returns the extension registered under name, or nil.
func (p *Project) FindExtension(name string) Extension {
	return p.extensions.find(name)
}

// ExtensionNames returns the registered extension names in sorted order.
func (p *Project) ExtensionNames() []string {
	return p.extensions.names()
}

// AllProjects registers an action run on the root and on every subproject.
func (p *Project) AllProjects(fn Action) error {
	root := p.Root()
	if err := root.configurable(); err != nil {
		return err
	}
	root.allprojects = append(root.allprojects, fn)
	return nil
}

// ConfigureSubprojects registers an action run on every subproject.
func (p *Project) ConfigureSubprojects(fn Action) error {
	root := p.Root()
	if err := root.configurable(); err != nil {
		return err
	}
	root.subprojectsCfg = append(root.subprojectsCfg, fn)
	return nil
}

// AfterEvaluate appends a hook fired once p's own configuration actions have
// run. Hooks fire in registration order. Hooks may be added while p is being
// evaluated, but not after.
func (p *Project) AfterEvaluate(fn Action) error {
	switch p.state {
	case stateEvaluated:
		return fmt.Errorf("project %s: %w", p.Name, ErrAlreadyEvaluated)
	case stateFailed:
		return fmt.Errorf("project %s: %w", p.Name, ErrEvaluationFailed)
	}
	p.afterEvaluate = append(p.afterEvaluate, fn)
	return nil
}

// Evaluated reports whether p has finished evaluation.
func (p *Project) Evaluated() bool { return p.state == stateEvaluated }

// Evaluate runs the configuration pass: the root first, then each subproject
// in declaration order. Each project runs the allprojects actions, then (for
// subprojects) the subprojects actions, then its after-evaluate hooks.
// The first error aborts the pass and leaves the build failed: later calls
// to Evaluate and the configuration methods return ErrEvaluationFailed.
func (p *Project) Evaluate(ctx context.Context) error {
	root := p.Root()
	if err := root.configurable(); err != nil {
		return err
	}
	if err := root.evaluateAll(ctx); err != nil {
		root.failure = err
		return err
	}
	return nil
}

func (p *Project) evaluateAll(ctx context.Context) error {
	if len(p.Repositories) == 0 {
		p.Repositories = append([]string(nil), DefaultRepositories...)
	}

	if err := p.evaluate(ctx, p.allprojects); err != nil {
		return err
	}

	actions := append(append([]Action(nil), p.allprojects...), p.subprojectsCfg...)
	for _, sp := range p.subprojects {
		if len(sp.Repositories) == 0 {
			sp.Repositories = append([]string(nil), p.Repositories...)
		}
		if err := sp.evaluate(ctx, actions); err != nil {
			return err
		}
	}
	return nil
}

// configurable reports whether the build rooted at p can still be
// configured and evaluated.
func (p *Project) configurable() error {
	if p.failure != nil {
		return fmt.Errorf("%w: %w", ErrEvaluationFailed, p.failure)
	}
	if p.state != stateUnevaluated {
		return ErrAlreadyEvaluated
	}
	return nil
}

func (p *Project) evaluate(ctx context.Context, actions []Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := p.Logger().With(zap.String("project", p.Name))
	logger.Debug("evaluating project")

	p.state = stateEvaluating
	for _, fn := range actions {
		if err := fn(p); err != nil {
			p.state = stateFailed
			return fmt.Errorf("configuring project %s: %w", p.Name, err)
		}
	}

	// Hooks may append further hooks; index instead of ranging.
	for i := 0; i < len(p.afterEvaluate); i++ {
		if err := p.afterEvaluate[i](p); err != nil {
			p.state = stateFailed
			return fmt.Errorf("after evaluate of project %s: %w", p.Name, err)
		}
	}
	p.state = stateEvaluated

	logger.Debug("project evaluated", zap.String("buildDir", p.BuildDir))
	return nil
}
