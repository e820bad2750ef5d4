package backfill

import (
	"errors"
	"fmt"

	"github.com/droidconf/droidconf/internal/project"
)

// ExtensionName is the name the Android plugins register their extension under.
const ExtensionName = "android"

// ErrNotApplicable covers every reason the patch could not be applied: no
// android extension, no namespace property, or a rejected write.
var ErrNotApplicable = errors.New("namespace patch not applicable")

// Outcome describes what TryPatchNamespace did to a project.
type Outcome int

const (
	// NoExtension means the project has no android extension.
	NoExtension Outcome = iota
	// Unsupported means the extension has no readable namespace property.
	Unsupported
	// AlreadySet means the namespace was set before the rule ran.
	AlreadySet
	// Patched means the namespace was set to the project's group.
	Patched
	// WriteFailed means the namespace was unset and could not be written.
	WriteFailed
)

func (o Outcome) String() string {
	switch o {
	case NoExtension:
		return "no-extension"
	case Unsupported:
		return "unsupported"
	case AlreadySet:
		return "already-set"
	case Patched:
		return "patched"
	case WriteFailed:
		return "write-failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// TryPatchNamespace sets the namespace of p's android extension to p's group
// when the extension has a namespace property that is unset. A namespace that
// is already set is left alone. Every other case yields an error wrapping
// ErrNotApplicable; p is not modified in those cases.
func TryPatchNamespace(p *project.Project) (Outcome, error) {
	outcome, _, err := patch(p)
	return outcome, err
}

// patch does the work of TryPatchNamespace and also returns the namespace
// it found or wrote.
func patch(p *project.Project) (outcome Outcome, namespace string, err error) {
	outcome = Unsupported
	defer func() {
		if r := recover(); r != nil {
			namespace = ""
			err = fmt.Errorf("%w: %s: %v", ErrNotApplicable, p.Name, r)
		}
	}()

	ext := p.FindExtension(ExtensionName)
	if ext == nil {
		return NoExtension, "", fmt.Errorf("%w: %s has no %s extension", ErrNotApplicable, p.Name, ExtensionName)
	}

	accessor, ok := namespaceAccessor(ext)
	if !ok {
		return Unsupported, "", fmt.Errorf("%w: %s extension of kind %q has no namespace", ErrNotApplicable, ExtensionName, ext.Kind())
	}

	current, err := accessor.Namespace()
	if err != nil {
		return Unsupported, "", fmt.Errorf("%w: reading namespace of %s: %v", ErrNotApplicable, p.Name, err)
	}
	if current != "" {
		return AlreadySet, current, nil
	}

	// A panic from here on is a failed write.
	outcome = WriteFailed
	if err := accessor.SetNamespace(p.Group); err != nil {
		return WriteFailed, "", fmt.Errorf("%w: writing namespace of %s: %v", ErrNotApplicable, p.Name, err)
	}
	return Patched, p.Group, nil
}

// namespaceAccessor picks the namespace capability of the known extension
// variants. Extensions from other packages qualify by implementing
// project.NamespaceAccessor themselves.
func namespaceAccessor(ext project.Extension) (project.NamespaceAccessor, bool) {
	switch e := ext.(type) {
	case *project.ApplicationExtension:
		return e, true
	case *project.LibraryExtension:
		return e, true
	case *project.TestExtension:
		return e, true
	case *project.DynamicFeatureExtension:
		return e, true
	case *project.OpaqueExtension:
		return nil, false
	case project.NamespaceAccessor:
		return e, true
	default:
		return nil, false
	}
}
