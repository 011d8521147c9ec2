package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubforge/cli/internal/project"
)

func mustModel(t *testing.T, opts project.Options) project.Model {
	t.Helper()
	m, err := project.NewModel(opts)
	require.NoError(t, err)
	return m
}

func planPaths(entries []Entry) map[string]Entry {
	byPath := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPath[e.RelPath] = e
	}
	return byPath
}

func TestPlan_BaseFiles(t *testing.T) {
	m := mustModel(t, project.Options{Name: "my_app", KindName: "app", PlatformCSV: "android"})
	byPath := planPaths(Plan(m))

	for _, p := range []string{
		"pubspec.yaml", "README.md", "CHANGELOG.md", "LICENSE",
		"analysis_options.yaml", ".gitignore",
		"lib/my_app.dart", "test/my_app_test.dart",
	} {
		_, ok := byPath[p]
		assert.True(t, ok, "missing plan entry %s", p)
	}

	assert.True(t, byPath["lib"].IsDir)
	assert.True(t, byPath["test"].IsDir)
}

func TestPlan_DirectoriesBeforeFiles(t *testing.T) {
	m := mustModel(t, project.Options{Name: "geo_sensor", KindName: "plugin", PlatformCSV: "android,ios"})
	entries := Plan(m)

	dirIndex := make(map[string]int)
	for i, e := range entries {
		if e.IsDir {
			dirIndex[e.RelPath] = i
		}
	}

	for i, e := range entries {
		if e.IsDir {
			continue
		}
		for dir, di := range dirIndex {
			if len(e.RelPath) > len(dir) && e.RelPath[:len(dir)+1] == dir+"/" {
				assert.Less(t, di, i, "directory %s must be planned before %s", dir, e.RelPath)
			}
		}
	}
}

func TestPlan_App_PlatformRunners(t *testing.T) {
	m := mustModel(t, project.Options{Name: "my_app", KindName: "app", PlatformCSV: "android,ios,web"})
	byPath := planPaths(Plan(m))

	assert.Contains(t, byPath, "android/app/src/main/kotlin/MainActivity.kt")
	assert.Contains(t, byPath, "ios/Runner/AppDelegate.swift")
	assert.Contains(t, byPath, "web/index.html")
	assert.NotContains(t, byPath, "linux/main.cc")
}

func TestPlan_Plugin(t *testing.T) {
	m := mustModel(t, project.Options{Name: "geo_sensor", KindName: "plugin", PlatformCSV: "android,ios"})
	byPath := planPaths(Plan(m))

	assert.Contains(t, byPath, "lib/geo_sensor.dart")
	assert.Contains(t, byPath, "lib/geo_sensor_platform_interface.dart")
	assert.Contains(t, byPath, "lib/geo_sensor_method_channel.dart")
	assert.Contains(t, byPath, "android/src/main/kotlin/GeoSensorPlugin.kt")
	assert.Contains(t, byPath, "ios/Classes/GeoSensorPlugin.swift")
	assert.Contains(t, byPath, "example/pubspec.yaml")
	assert.Contains(t, byPath, "example/lib/main.dart")
}

func TestPlan_Package(t *testing.T) {
	m := mustModel(t, project.Options{Name: "geo_math", KindName: "package"})
	byPath := planPaths(Plan(m))

	assert.Contains(t, byPath, "lib/geo_math.dart")
	assert.Contains(t, byPath, "lib/src/geo_math_base.dart")
	assert.Contains(t, byPath, "example/geo_math_example.dart")

	// No platform subtrees for a pure library.
	assert.NotContains(t, byPath, "android/src/main/kotlin")
	assert.NotContains(t, byPath, "ios/Classes")
}

func TestRender_Pubspec(t *testing.T) {
	m := mustModel(t, project.Options{
		Name:        "geo_sensor",
		KindName:    "plugin",
		PlatformCSV: "android,ios",
		Description: "Reads the geo sensor.",
	})
	byPath := planPaths(Plan(m))

	content, err := Render(byPath["pubspec.yaml"])
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "name: geo_sensor")
	assert.Contains(t, text, "description: Reads the geo sensor.")
	assert.Contains(t, text, "version: 0.1.0+1")
	assert.Contains(t, text, "publish_to: none")
	assert.Contains(t, text, "environment:")
	assert.Contains(t, text, "android:")
	assert.Contains(t, text, "ios:")
	assert.Contains(t, text, "pluginClass: GeoSensorPlugin")
	assert.NotContains(t, text, "{{", "all markers must resolve")
	assert.NotContains(t, text, "uses-material-design", "app-only section must not leak")
}

func TestRender_Entrypoint(t *testing.T) {
	m := mustModel(t, project.Options{Name: "geo_math", KindName: "package"})
	byPath := planPaths(Plan(m))

	content, err := Render(byPath["lib/geo_math.dart"])
	require.NoError(t, err)
	assert.Contains(t, string(content), "export 'src/geo_math_base.dart';")
}

func TestContent_Unknown(t *testing.T) {
	_, err := Content("no_such_template")
	assert.Error(t, err)
}
