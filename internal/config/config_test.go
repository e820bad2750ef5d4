package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestSetAndReload(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DROIDCONF_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	if got := FilePath(); got != filepath.Join(home, "config.yaml") {
		t.Fatalf("FilePath() = %q", got)
	}

	Load()
	if err := Set(KeyLayoutExternal, "external"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(KeyCapabilities+".legacy", ">= 3.0.0"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	viper.Reset()
	Load()
	if got := LayoutExternal(); got != "external" {
		t.Errorf("LayoutExternal() = %q, want %q", got, "external")
	}
	if got := CapabilityOverrides()["legacy"]; got != ">= 3.0.0" {
		t.Errorf("CapabilityOverrides()[legacy] = %q", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DROIDCONF_HOME", t.TempDir())
	t.Setenv("DROIDCONF_LAYOUT_EXTERNAL", "from-env")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if got := LayoutExternal(); got != "from-env" {
		t.Errorf("LayoutExternal() = %q, want %q", got, "from-env")
	}
}
