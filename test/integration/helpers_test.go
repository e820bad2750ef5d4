//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

const flutterDescription = `name: android
layout:
  external: external
subprojects:
  - name: app
    group: com.example.notes
    plugin:
      id: com.android.application
      version: 8.1.0
    android:
      namespace: com.example.notes
  - name: isar_flutter_libs
    group: dev.isar.isar_flutter_libs
    plugin:
      id: com.android.library
      version: 8.1.0
  - name: old_camera
    group: io.flutter.plugins.camera
    plugin:
      id: com.android.library
      version: 3.5.0
`

// testEnv holds paths to an isolated Flutter-style checkout.
type testEnv struct {
	HostDir         string // <tmp>/host, where build/ ends up
	RootDir         string // <tmp>/host/app/android, the root project
	DescriptionPath string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	host := filepath.Join(t.TempDir(), "host")
	env := &testEnv{
		HostDir: host,
		RootDir: filepath.Join(host, "app", "android"),
	}
	env.DescriptionPath = filepath.Join(env.RootDir, "droidconf.yaml")

	if err := os.MkdirAll(env.RootDir, 0755); err != nil {
		t.Fatalf("creating root project: %v", err)
	}
	if err := os.WriteFile(env.DescriptionPath, []byte(flutterDescription), 0644); err != nil {
		t.Fatalf("writing description: %v", err)
	}
	return env
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be gone, stat err = %v", path, err)
	}
}
