package settings

import (
	"fmt"

	"github.com/droidconf/droidconf/internal/backfill"
	"github.com/droidconf/droidconf/internal/project"
	"go.uber.org/zap"
)

// BuildOptions controls how a Description becomes a project model.
type BuildOptions struct {
	// Capabilities is the base capability set; nil means the defaults. The
	// description's own capabilities block is layered on top.
	Capabilities *project.Capabilities
	Logger       *zap.Logger
}

// NewProject creates the root project in dir and its subprojects, with the
// android extensions attached. Nothing is evaluated.
func (d *Description) NewProject(dir string, opts BuildOptions) (*project.Project, error) {
	caps := opts.Capabilities
	if caps == nil {
		caps = project.DefaultCapabilities()
	}
	caps, err := caps.With(d.Capabilities)
	if err != nil {
		return nil, fmt.Errorf("build description capabilities: %w", err)
	}

	root := project.NewRoot(d.Name, dir, opts.Logger)
	root.Repositories = append([]string(nil), d.Repositories...)

	for i, sc := range d.Subprojects {
		group := sc.Group
		if group == "" {
			group = d.Name
		}

		sp, err := root.AddSubproject(sc.Name, group, sc.Path)
		if err != nil {
			return nil, fmt.Errorf("subprojects[%d]: %w", i, err)
		}
		sp.Repositories = append([]string(nil), sc.Repositories...)
		if sc.Plugin != nil {
			sp.Plugin = project.Plugin{ID: sc.Plugin.ID, Version: sc.Plugin.Version}
		}

		spec, ok, err := extensionSpec(sc)
		if err != nil {
			return nil, fmt.Errorf("subprojects[%d] (%s): %w", i, sc.Name, err)
		}
		if !ok {
			continue
		}
		if err := sp.AddExtension(backfill.ExtensionName, project.NewExtension(spec, caps)); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// extensionSpec derives the android extension for a subproject. A subproject
// gets one when it applies an Android plugin or declares an android block.
func extensionSpec(sc SubprojectConfig) (project.ExtensionSpec, bool, error) {
	var spec project.ExtensionSpec
	if sc.Plugin != nil {
		spec.Kind = project.KindForPlugin(sc.Plugin.ID)
		spec.PluginVersion = sc.Plugin.Version
	}

	if sc.Android == nil {
		return spec, spec.Kind != "", nil
	}

	if sc.Android.Kind != "" {
		spec.Kind = project.Kind(sc.Android.Kind)
	}
	if spec.Kind == "" {
		return spec, false, fmt.Errorf("android block needs a kind or an Android plugin")
	}
	spec.Namespace = sc.Android.Namespace
	spec.CompileSdk = sc.Android.CompileSdk
	spec.Properties = sc.Android.Properties
	return spec, true, nil
}
