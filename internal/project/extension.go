package project

import (
	"errors"
	"fmt"
	"sort"
)

// Kind identifies an extension variant.
type Kind string

const (
	KindApplication    Kind = "application"
	KindLibrary        Kind = "library"
	KindTest           Kind = "test"
	KindDynamicFeature Kind = "dynamic-feature"
	KindLegacy         Kind = "legacy"
)

// Plugin ids that create an android extension.
const (
	PluginApplication    = "com.android.application"
	PluginLibrary        = "com.android.library"
	PluginTest           = "com.android.test"
	PluginDynamicFeature = "com.android.dynamic-feature"
)

var (
	// ErrNoSuchProperty is returned when an extension variant does not
	// expose the requested property.
	ErrNoSuchProperty = errors.New("no such property")

	// ErrInvalidValue is returned when a property write is rejected.
	ErrInvalidValue = errors.New("invalid property value")

	// ErrDuplicateExtension is returned when an extension name is reused.
	ErrDuplicateExtension = errors.New("extension already exists")
)

// KindForPlugin maps a plugin id to the extension kind it creates. Unknown
// plugin ids yield "".
func KindForPlugin(id string) Kind {
	switch id {
	case PluginApplication:
		return KindApplication
	case PluginLibrary:
		return KindLibrary
	case PluginTest:
		return KindTest
	case PluginDynamicFeature:
		return KindDynamicFeature
	default:
		return ""
	}
}

// Extension is a named configuration block attached to a project by a plugin.
type Extension interface {
	Kind() Kind
}

// NamespaceAccessor is implemented by extensions that may carry a namespace.
// Namespace returns "" when the property exists but is unset.
type NamespaceAccessor interface {
	Namespace() (string, error)
	SetNamespace(string) error
}

// namespaceProperty holds the namespace of the stock Android extensions.
// Whether the property exists depends on the plugin version that created it.
type namespaceProperty struct {
	supported bool
	value     string
}

func (p *namespaceProperty) Namespace() (string, error) {
	if !p.supported {
		return "", fmt.Errorf("namespace: %w", ErrNoSuchProperty)
	}
	return p.value, nil
}

func (p *namespaceProperty) SetNamespace(ns string) error {
	if !p.supported {
		return fmt.Errorf("namespace: %w", ErrNoSuchProperty)
	}
	if ns == "" {
		return fmt.Errorf("namespace: %w: empty string", ErrInvalidValue)
	}
	p.value = ns
	return nil
}

// ApplicationExtension is created by com.android.application.
type ApplicationExtension struct {
	namespaceProperty
	CompileSdk    int
	ApplicationID string
}

func (*ApplicationExtension) Kind() Kind { return KindApplication }

// LibraryExtension is created by com.android.library. Libraries built with
// older plugin versions use KindLegacy.
type LibraryExtension struct {
	namespaceProperty
	CompileSdk int
	legacy     bool
}

func (e *LibraryExtension) Kind() Kind {
	if e.legacy {
		return KindLegacy
	}
	return KindLibrary
}

// TestExtension is created by com.android.test.
type TestExtension struct {
	namespaceProperty
	CompileSdk        int
	TargetProjectPath string
}

func (*TestExtension) Kind() Kind { return KindTest }

// DynamicFeatureExtension is created by com.android.dynamic-feature.
type DynamicFeatureExtension struct {
	namespaceProperty
	CompileSdk int
}

func (*DynamicFeatureExtension) Kind() Kind { return KindDynamicFeature }

// OpaqueExtension stands in for extensions of unknown variants. It has no
// namespace capability.
type OpaqueExtension struct {
	kind       Kind
	Properties map[string]string
}

func (e *OpaqueExtension) Kind() Kind { return e.kind }

// ExtensionSpec describes an extension to create.
type ExtensionSpec struct {
	Kind          Kind
	PluginVersion string
	Namespace     string
	CompileSdk    int
	Properties    map[string]string
}

// NewExtension creates the variant for spec.Kind. The namespace property is
// present only when caps allows it for the kind and plugin version; an
// initial namespace on a variant without the property is dropped.
func NewExtension(spec ExtensionSpec, caps *Capabilities) Extension {
	prop := namespaceProperty{supported: caps.SupportsNamespace(spec.Kind, spec.PluginVersion)}
	if prop.supported {
		prop.value = spec.Namespace
	}

	switch spec.Kind {
	case KindApplication:
		return &ApplicationExtension{namespaceProperty: prop, CompileSdk: spec.CompileSdk, ApplicationID: spec.Properties["applicationId"]}
	case KindLibrary, KindLegacy:
		return &LibraryExtension{namespaceProperty: prop, CompileSdk: spec.CompileSdk, legacy: spec.Kind == KindLegacy}
	case KindTest:
		return &TestExtension{namespaceProperty: prop, CompileSdk: spec.CompileSdk, TargetProjectPath: spec.Properties["targetProjectPath"]}
	case KindDynamicFeature:
		return &DynamicFeatureExtension{namespaceProperty: prop, CompileSdk: spec.CompileSdk}
	default:
		return &OpaqueExtension{kind: spec.Kind, Properties: spec.Properties}
	}
}

// extensionContainer holds a project's named extensions.
type extensionContainer struct {
	byName map[string]Extension
}

func (c *extensionContainer) add(name string, ext Extension) error {
	if c.byName == nil {
		c.byName = make(map[string]Extension)
	}
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateExtension, name)
	}
	c.byName[name] = ext
	return nil
}

func (c *extensionContainer) find(name string) Extension {
	return c.byName[name]
}

func (c *extensionContainer) names() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
