package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultNamespaceConstraint is the plugin version range in which the
// namespace property exists on the stock Android extensions.
const DefaultNamespaceConstraint = ">= 4.2.0"

// Capabilities records which extension kinds expose a namespace property,
// and for which plugin versions.
type Capabilities struct {
	constraints map[Kind]*semver.Constraints
	raw         map[Kind]string
}

// DefaultCapabilities returns the stock capability set. The legacy kind is
// not listed, so legacy extensions never expose a namespace.
func DefaultCapabilities() *Capabilities {
	c := &Capabilities{
		constraints: make(map[Kind]*semver.Constraints),
		raw:         make(map[Kind]string),
	}
	for _, k := range []Kind{KindApplication, KindLibrary, KindTest, KindDynamicFeature} {
		// The default constraint is a constant and always parses.
		_ = c.set(k, DefaultNamespaceConstraint)
	}
	return c
}

// With returns a copy of c with the given overrides applied. Keys are
// extension kinds and values are semver constraints. An empty value or
// "none" removes the kind from the set.
func (c *Capabilities) With(overrides map[string]string) (*Capabilities, error) {
	out := &Capabilities{
		constraints: make(map[Kind]*semver.Constraints, len(c.constraints)),
		raw:         make(map[Kind]string, len(c.raw)),
	}
	for k, v := range c.constraints {
		out.constraints[k] = v
		out.raw[k] = c.raw[k]
	}

	for key, value := range overrides {
		kind := Kind(strings.ToLower(strings.TrimSpace(key)))
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, "none") {
			delete(out.constraints, kind)
			delete(out.raw, kind)
			continue
		}
		if err := out.set(kind, value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Capabilities) set(kind Kind, constraint string) error {
	parsed, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing namespace constraint %q for %s: %w", constraint, kind, err)
	}
	c.constraints[kind] = parsed
	c.raw[kind] = constraint
	return nil
}

// SupportsNamespace reports whether an extension of the given kind, created
// by the given plugin version, has a namespace property. An empty plugin
// version stands for the current plugin and satisfies any listed kind.
func (c *Capabilities) SupportsNamespace(kind Kind, pluginVersion string) bool {
	constraint, ok := c.constraints[kind]
	if !ok {
		return false
	}
	if pluginVersion == "" {
		return true
	}
	v, err := semver.NewVersion(strings.TrimPrefix(pluginVersion, "v"))
	if err != nil {
		return false
	}
	return constraint.Check(v)
}

// Kinds returns the listed kinds in sorted order.
func (c *Capabilities) Kinds() []Kind {
	kinds := make([]Kind, 0, len(c.constraints))
	for k := range c.constraints {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Constraint returns the constraint text for kind, or "" if it is not listed.
func (c *Capabilities) Constraint(kind Kind) string {
	return c.raw[kind]
}
