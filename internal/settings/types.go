package settings

// DefaultFileName is the build description looked up in the root project.
const DefaultFileName = "droidconf.yaml"

// Description is the parsed build description.
type Description struct {
	Name         string             `yaml:"name" json:"name"`
	Repositories []string           `yaml:"repositories,omitempty" json:"repositories,omitempty"`
	Layout       LayoutConfig       `yaml:"layout,omitempty" json:"layout,omitempty"`
	Capabilities map[string]string  `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	Subprojects  []SubprojectConfig `yaml:"subprojects,omitempty" json:"subprojects,omitempty"`
}

// LayoutConfig customizes the build directory layout.
type LayoutConfig struct {
	External string `yaml:"external,omitempty" json:"external,omitempty"`
}

// SubprojectConfig describes one subproject.
type SubprojectConfig struct {
	Name         string         `yaml:"name" json:"name"`
	Group        string         `yaml:"group,omitempty" json:"group,omitempty"`
	Path         string         `yaml:"path,omitempty" json:"path,omitempty"`
	Repositories []string       `yaml:"repositories,omitempty" json:"repositories,omitempty"`
	Plugin       *PluginConfig  `yaml:"plugin,omitempty" json:"plugin,omitempty"`
	Android      *AndroidConfig `yaml:"android,omitempty" json:"android,omitempty"`
}

// PluginConfig names the plugin applied to a subproject.
type PluginConfig struct {
	ID      string `yaml:"id" json:"id"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// AndroidConfig is the android extension block of a subproject. Kind defaults
// to the kind implied by the plugin id.
type AndroidConfig struct {
	Kind       string            `yaml:"kind,omitempty" json:"kind,omitempty"`
	Namespace  string            `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	CompileSdk int               `yaml:"compile_sdk,omitempty" json:"compile_sdk,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
}
