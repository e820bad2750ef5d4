package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/droidconf/droidconf/internal/backfill"
	"github.com/droidconf/droidconf/internal/project"
	"go.yaml.in/yaml/v3"
)

// buildView is the printable form of an evaluated build.
type buildView struct {
	Name         string           `yaml:"name" json:"name"`
	Dir          string           `yaml:"dir" json:"dir"`
	BuildDir     string           `yaml:"build_dir" json:"build_dir"`
	Repositories []string         `yaml:"repositories" json:"repositories"`
	Tasks        []string         `yaml:"tasks" json:"tasks"`
	Subprojects  []subprojectView `yaml:"subprojects" json:"subprojects"`
	Backfill     []backfill.Entry `yaml:"backfill,omitempty" json:"backfill,omitempty"`
}

type subprojectView struct {
	Name         string   `yaml:"name" json:"name"`
	Group        string   `yaml:"group" json:"group"`
	Dir          string   `yaml:"dir" json:"dir"`
	BuildDir     string   `yaml:"build_dir" json:"build_dir"`
	Plugin       string   `yaml:"plugin,omitempty" json:"plugin,omitempty"`
	Repositories []string `yaml:"repositories" json:"repositories"`
	Android      string   `yaml:"android,omitempty" json:"android,omitempty"`
	Namespace    string   `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

func newBuildView(b *evaluatedBuild, withReport bool) buildView {
	root := b.Root
	v := buildView{
		Name:         root.Name,
		Dir:          root.Dir,
		BuildDir:     root.BuildDir,
		Repositories: root.Repositories,
		Tasks:        root.Tasks().Names(),
	}
	for _, sp := range root.Subprojects() {
		sv := subprojectView{
			Name:         sp.Name,
			Group:        sp.Group,
			Dir:          sp.Dir,
			BuildDir:     sp.BuildDir,
			Repositories: sp.Repositories,
		}
		if sp.Plugin.ID != "" {
			sv.Plugin = sp.Plugin.ID
			if sp.Plugin.Version != "" {
				sv.Plugin += ":" + sp.Plugin.Version
			}
		}
		if ext := sp.FindExtension(backfill.ExtensionName); ext != nil {
			sv.Android = string(ext.Kind())
			if acc, ok := ext.(project.NamespaceAccessor); ok {
				sv.Namespace, _ = acc.Namespace()
			}
		}
		v.Subprojects = append(v.Subprojects, sv)
	}
	if withReport {
		v.Backfill = b.Report.Entries
	}
	return v
}

// writeOutput encodes v as YAML or JSON.
func writeOutput(w io.Writer, format string, v interface{}) error {
	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
