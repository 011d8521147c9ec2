package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"pubspec.yaml":     "Package metadata",
		"lib/my_app.dart":  "Entry point",
		"test/my_app_test.dart": "",
	}

	out := RenderFileTree("my_app", files)

	assert.Contains(t, out, "my_app/")
	assert.Contains(t, out, "pubspec.yaml")
	assert.Contains(t, out, "lib/")
	assert.Contains(t, out, "my_app.dart")
	assert.Contains(t, out, "Package metadata")

	// Directories render before root-level files.
	libIdx := strings.Index(out, "lib/")
	pubspecIdx := strings.Index(out, "pubspec.yaml")
	assert.Less(t, libIdx, pubspecIdx)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my_app", nil))
}

func TestRenderFindingsTable(t *testing.T) {
	out := RenderFindingsTable([]FindingRow{
		{Severity: "error", Path: "LICENSE", Message: "missing LICENSE file"},
		{Severity: "warning", Path: "README.md", Message: "readme is very short", Fixed: true},
	})

	assert.Contains(t, out, "SEVERITY")
	assert.Contains(t, out, "missing LICENSE file")
	assert.Contains(t, out, "(fixed)")
}

func TestFormatScore(t *testing.T) {
	assert.Contains(t, FormatScore(130, 130), "130/130")
	assert.Contains(t, FormatScore(0, 130), "0/130")
}
