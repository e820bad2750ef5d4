package backfill

import (
	"errors"

	"github.com/droidconf/droidconf/internal/project"
)

// Entry records the result of patching one project.
type Entry struct {
	Project   string  `yaml:"project" json:"project"`
	Outcome   Outcome `yaml:"-" json:"-"`
	Result    string  `yaml:"outcome" json:"outcome"`
	Namespace string  `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// Report collects patch results in evaluation order.
type Report struct {
	Entries []Entry
}

// Count returns the number of entries with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

func (r *Report) add(p *project.Project, o Outcome, namespace string) {
	r.Entries = append(r.Entries, Entry{
		Project:   p.Name,
		Outcome:   o,
		Result:    o.String(),
		Namespace: namespace,
	})
}

// Rule installs the namespace backfill on projects.
type Rule struct {
	report *Report
}

// Option configures a Rule.
type Option func(*Rule)

// WithReport records every patch result into r.
func WithReport(r *Report) Option {
	return func(rule *Rule) { rule.report = r }
}

// New creates a Rule.
func New(opts ...Option) *Rule {
	r := &Rule{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply registers the backfill as an after-evaluate hook on each project. The
// hook never fails. Apply only errors when a project has already been
// evaluated.
func (r *Rule) Apply(projects ...*project.Project) error {
	var errs []error
	for _, p := range projects {
		if err := p.AfterEvaluate(r.hook); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Action returns the rule as a configuration action, for use with
// Project.ConfigureSubprojects.
func (r *Rule) Action() project.Action {
	return func(p *project.Project) error {
		return p.AfterEvaluate(r.hook)
	}
}

func (r *Rule) hook(p *project.Project) error {
	outcome, namespace, err := patch(p)
	_ = err
	if r.report != nil {
		r.report.add(p, outcome, namespace)
	}
	return nil
}
