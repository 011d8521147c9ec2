package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetValidateFlags() {
	validateStrict = false
	validateFix = false
}

func createTestPackage(t *testing.T, name string) string {
	t.Helper()
	resetCreateFlags()

	target := filepath.Join(t.TempDir(), name)
	cmd := NewCreateCmd()
	cmd.SetArgs([]string{"package", name, "--output", target})
	require.NoError(t, cmd.Execute())
	return target
}

func TestNewValidateCmd(t *testing.T) {
	cmd := NewValidateCmd()

	assert.Equal(t, "validate [path]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("strict"))
	assert.NotNil(t, cmd.Flags().Lookup("fix"))
}

func TestValidate_FreshProject(t *testing.T) {
	resetValidateFlags()
	target := createTestPackage(t, "my_utils")

	cmd := NewValidateCmd()
	cmd.SetArgs([]string{target})

	assert.NoError(t, cmd.Execute())
}

func TestValidate_BrokenTreeStillSucceeds(t *testing.T) {
	resetValidateFlags()

	// An empty directory fails every rule yet the command succeeds:
	// findings are report data, not command failures.
	cmd := NewValidateCmd()
	cmd.SetArgs([]string{t.TempDir()})

	assert.NoError(t, cmd.Execute())
}

func TestValidate_Fix(t *testing.T) {
	resetValidateFlags()
	target := createTestPackage(t, "my_utils")
	require.NoError(t, os.Remove(filepath.Join(target, "LICENSE")))

	cmd := NewValidateCmd()
	cmd.SetArgs([]string{target, "--fix"})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(target, "LICENSE"))
}

func TestValidate_NonexistentPath(t *testing.T) {
	resetValidateFlags()

	cmd := NewValidateCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent")})

	assert.NoError(t, cmd.Execute())
}
