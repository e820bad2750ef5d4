package project

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateTask is returned when a task name is registered twice.
	ErrDuplicateTask = errors.New("task already registered")

	// ErrUnknownTask is returned when running a task that was never registered.
	ErrUnknownTask = errors.New("unknown task")
)

// TaskFunc is the body of a task.
type TaskFunc func(ctx context.Context) error

// Task is a named unit of work registered on the root project.
type Task struct {
	Name        string
	Description string
	Run         TaskFunc
}

// TaskRegistry holds the build's tasks.
type TaskRegistry struct {
	tasks map[string]*Task
}

// NewTaskRegistry returns an empty registry.
func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{tasks: make(map[string]*Task)}
}

// Register adds a task.
func (r *TaskRegistry) Register(name, description string, fn TaskFunc) error {
	if name == "" {
		return errors.New("task name is required")
	}
	if fn == nil {
		return fmt.Errorf("task %q has no action", name)
	}
	if _, ok := r.tasks[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, name)
	}
	r.tasks[name] = &Task{Name: name, Description: description, Run: fn}
	return nil
}

// Lookup returns the task registered under name.
func (r *TaskRegistry) Lookup(name string) (*Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Run executes the named task.
func (r *TaskRegistry) Run(ctx context.Context, name string) error {
	t, ok := r.tasks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTask, name)
	}
	if err := t.Run(ctx); err != nil {
		return fmt.Errorf("task %s: %w", name, err)
	}
	return nil
}

// Names returns the registered task names in sorted order.
func (r *TaskRegistry) Names() []string {
	names := make([]string, 0, len(r.tasks))
	for n := range r.tasks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
