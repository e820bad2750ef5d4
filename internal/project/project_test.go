package project

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestRoot(t *testing.T, names ...string) *Project {
	t.Helper()
	root := NewRoot("app", t.TempDir(), nil)
	for _, n := range names {
		if _, err := root.AddSubproject(n, "com.example."+n, ""); err != nil {
			t.Fatalf("AddSubproject(%s): %v", n, err)
		}
	}
	return root
}

func TestAddSubproject(t *testing.T) {
	root := newTestRoot(t, "core")

	sp, ok := root.FindProject("core")
	if !ok {
		t.Fatal("FindProject(core) not found")
	}
	if sp.Dir != filepath.Join(root.Dir, "core") {
		t.Errorf("Dir = %q, want %q", sp.Dir, filepath.Join(root.Dir, "core"))
	}
	if sp.Root() != root {
		t.Error("Root() of subproject is not the root project")
	}
	if sp.IsRoot() || !root.IsRoot() {
		t.Error("IsRoot reported incorrectly")
	}

	if _, err := root.AddSubproject("core", "x", ""); !errors.Is(err, ErrDuplicateProject) {
		t.Errorf("duplicate AddSubproject error = %v, want ErrDuplicateProject", err)
	}
	if _, err := root.AddSubproject("", "x", ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestEvaluateOrder(t *testing.T) {
	root := newTestRoot(t, "a", "b")

	var trace []string
	record := func(tag string) Action {
		return func(p *Project) error {
			trace = append(trace, tag+":"+p.Name)
			return nil
		}
	}

	if err := root.AllProjects(record("all")); err != nil {
		t.Fatal(err)
	}
	if err := root.ConfigureSubprojects(func(p *Project) error {
		trace = append(trace, "sub:"+p.Name)
		return p.AfterEvaluate(record("after"))
	}); err != nil {
		t.Fatal(err)
	}

	if err := root.Evaluate(context.Background()); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	want := []string{
		"all:app",
		"all:a", "sub:a", "after:a",
		"all:b", "sub:b", "after:b",
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}

	for _, sp := range root.Subprojects() {
		if !sp.Evaluated() {
			t.Errorf("%s not marked evaluated", sp.Name)
		}
	}
}

func TestEvaluateTwice(t *testing.T) {
	root := newTestRoot(t, "a")
	if err := root.Evaluate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := root.Evaluate(context.Background()); !errors.Is(err, ErrAlreadyEvaluated) {
		t.Errorf("second Evaluate error = %v, want ErrAlreadyEvaluated", err)
	}

	sp, _ := root.FindProject("a")
	if err := sp.AfterEvaluate(func(*Project) error { return nil }); !errors.Is(err, ErrAlreadyEvaluated) {
		t.Errorf("AfterEvaluate after evaluation error = %v, want ErrAlreadyEvaluated", err)
	}
}

func TestEvaluateHookErrorAborts(t *testing.T) {
	root := newTestRoot(t, "a", "b")
	boom := errors.New("boom")

	a, _ := root.FindProject("a")
	if err := a.AfterEvaluate(func(*Project) error { return boom }); err != nil {
		t.Fatal(err)
	}
	reached := false
	b, _ := root.FindProject("b")
	if err := b.AfterEvaluate(func(*Project) error { reached = true; return nil }); err != nil {
		t.Fatal(err)
	}

	err := root.Evaluate(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Evaluate error = %v, want boom", err)
	}
	if reached {
		t.Error("hook of later subproject ran after abort")
	}
}

func TestEvaluateAfterFailure(t *testing.T) {
	root := newTestRoot(t, "a")
	boom := errors.New("boom")
	if err := root.ConfigureSubprojects(func(*Project) error { return boom }); err != nil {
		t.Fatal(err)
	}
	if err := root.Evaluate(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Evaluate error = %v, want boom", err)
	}

	err := root.Evaluate(context.Background())
	if !errors.Is(err, ErrEvaluationFailed) || !errors.Is(err, boom) {
		t.Errorf("retried Evaluate error = %v, want ErrEvaluationFailed wrapping boom", err)
	}
	if errors.Is(err, ErrAlreadyEvaluated) {
		t.Errorf("retried Evaluate error = %v, should not claim the build was evaluated", err)
	}
	if err := root.AllProjects(func(*Project) error { return nil }); !errors.Is(err, ErrEvaluationFailed) {
		t.Errorf("AllProjects after failure error = %v, want ErrEvaluationFailed", err)
	}

	a, _ := root.FindProject("a")
	if a.Evaluated() {
		t.Error("failed subproject reports itself evaluated")
	}
	if err := a.AfterEvaluate(func(*Project) error { return nil }); !errors.Is(err, ErrEvaluationFailed) {
		t.Errorf("AfterEvaluate after failure error = %v, want ErrEvaluationFailed", err)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	root := newTestRoot(t, "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := root.Evaluate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate error = %v, want context.Canceled", err)
	}
}

func TestRepositoriesDefault(t *testing.T) {
	root := newTestRoot(t, "a")
	if err := root.Evaluate(context.Background()); err != nil {
		t.Fatal(err)
	}
	sp, _ := root.FindProject("a")
	if !reflect.DeepEqual(sp.Repositories, DefaultRepositories) {
		t.Errorf("Repositories = %v, want %v", sp.Repositories, DefaultRepositories)
	}
}

func TestExtensions(t *testing.T) {
	root := newTestRoot(t, "a")
	sp, _ := root.FindProject("a")

	if sp.FindExtension("android") != nil {
		t.Fatal("expected no android extension")
	}

	ext := NewExtension(ExtensionSpec{Kind: KindLibrary}, DefaultCapabilities())
	if err := sp.AddExtension("android", ext); err != nil {
		t.Fatal(err)
	}
	if err := sp.AddExtension("android", ext); !errors.Is(err, ErrDuplicateExtension) {
		t.Errorf("duplicate AddExtension error = %v, want ErrDuplicateExtension", err)
	}
	if sp.FindExtension("android") != ext {
		t.Error("FindExtension returned a different extension")
	}
	if got := sp.ExtensionNames(); !reflect.DeepEqual(got, []string{"android"}) {
		t.Errorf("ExtensionNames = %v", got)
	}
}

func TestTaskRegistry(t *testing.T) {
	r := NewTaskRegistry()
	ran := false
	if err := r.Register("clean", "delete", func(context.Context) error { ran = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("clean", "again", func(context.Context) error { return nil }); !errors.Is(err, ErrDuplicateTask) {
		t.Errorf("duplicate Register error = %v, want ErrDuplicateTask", err)
	}
	if err := r.Register("nil", "", nil); err == nil {
		t.Error("expected error for nil task action")
	}

	if err := r.Run(context.Background(), "clean"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ran {
		t.Error("task body did not run")
	}
	if err := r.Run(context.Background(), "missing"); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("Run(missing) error = %v, want ErrUnknownTask", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"clean"}) {
		t.Errorf("Names = %v", got)
	}
}
