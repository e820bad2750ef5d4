package project

import (
	"errors"
	"fmt"
	"testing"
)

func TestSupportsNamespace(t *testing.T) {
	caps := DefaultCapabilities()

	tests := []struct {
		name    string
		kind    Kind
		version string
		want    bool
	}{
		{"library current", KindLibrary, "", true},
		{"library new", KindLibrary, "8.1.0", true},
		{"library boundary", KindLibrary, "4.2.0", true},
		{"library old", KindLibrary, "4.1.3", false},
		{"v prefix", KindApplication, "v7.0.0", true},
		{"legacy never", KindLegacy, "", false},
		{"unknown kind", Kind("kotlin"), "", false},
		{"bad version", KindLibrary, "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caps.SupportsNamespace(tt.kind, tt.version); got != tt.want {
				t.Errorf("SupportsNamespace(%s, %q) = %v, want %v", tt.kind, tt.version, got, tt.want)
			}
		})
	}
}

func TestCapabilitiesWith(t *testing.T) {
	base := DefaultCapabilities()

	caps, err := base.With(map[string]string{
		"legacy":      ">= 3.0.0",
		"Application": "none",
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if !caps.SupportsNamespace(KindLegacy, "3.5.0") {
		t.Error("legacy override not applied")
	}
	if caps.SupportsNamespace(KindApplication, "") {
		t.Error("application not removed")
	}
	if caps.Constraint(KindLegacy) != ">= 3.0.0" {
		t.Errorf("Constraint(legacy) = %q", caps.Constraint(KindLegacy))
	}

	// The receiver is unchanged.
	if base.SupportsNamespace(KindLegacy, "3.5.0") || !base.SupportsNamespace(KindApplication, "") {
		t.Error("With mutated the receiver")
	}

	if _, err := base.With(map[string]string{"library": ">>> nope"}); err == nil {
		t.Error("expected error for invalid constraint")
	}
}

func TestNewExtensionVariants(t *testing.T) {
	caps := DefaultCapabilities()

	tests := []struct {
		kind     Kind
		wantType string
		accessor bool
	}{
		{KindApplication, "*project.ApplicationExtension", true},
		{KindLibrary, "*project.LibraryExtension", true},
		{KindLegacy, "*project.LibraryExtension", true},
		{KindTest, "*project.TestExtension", true},
		{KindDynamicFeature, "*project.DynamicFeatureExtension", true},
		{Kind("kmp"), "*project.OpaqueExtension", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ext := NewExtension(ExtensionSpec{Kind: tt.kind}, caps)
			if got := typeName(ext); got != tt.wantType {
				t.Errorf("type = %s, want %s", got, tt.wantType)
			}
			if ext.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", ext.Kind(), tt.kind)
			}
			if _, ok := ext.(NamespaceAccessor); ok != tt.accessor {
				t.Errorf("NamespaceAccessor = %v, want %v", ok, tt.accessor)
			}
		})
	}
}

func TestNamespaceProperty(t *testing.T) {
	caps := DefaultCapabilities()

	lib := NewExtension(ExtensionSpec{Kind: KindLibrary, Namespace: "com.example.lib"}, caps).(NamespaceAccessor)
	ns, err := lib.Namespace()
	if err != nil || ns != "com.example.lib" {
		t.Fatalf("Namespace() = %q, %v", ns, err)
	}
	if err := lib.SetNamespace(""); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetNamespace(\"\") error = %v, want ErrInvalidValue", err)
	}
	if err := lib.SetNamespace("com.example.other"); err != nil {
		t.Fatal(err)
	}
	if ns, _ := lib.Namespace(); ns != "com.example.other" {
		t.Errorf("Namespace() = %q after set", ns)
	}

	old := NewExtension(ExtensionSpec{Kind: KindLibrary, PluginVersion: "3.6.0", Namespace: "dropped"}, caps).(NamespaceAccessor)
	if _, err := old.Namespace(); !errors.Is(err, ErrNoSuchProperty) {
		t.Errorf("old Namespace() error = %v, want ErrNoSuchProperty", err)
	}
	if err := old.SetNamespace("x"); !errors.Is(err, ErrNoSuchProperty) {
		t.Errorf("old SetNamespace() error = %v, want ErrNoSuchProperty", err)
	}
}

func TestKindForPlugin(t *testing.T) {
	if KindForPlugin(PluginLibrary) != KindLibrary {
		t.Error("library plugin not mapped")
	}
	if KindForPlugin("org.jetbrains.kotlin.jvm") != "" {
		t.Error("unknown plugin should map to empty kind")
	}
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
