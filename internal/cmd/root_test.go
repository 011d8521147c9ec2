package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pubforge/cli/internal/errors"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "pubforge", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "version")
}

func TestRoot_ExplicitConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)

	exitErr, ok := oerrors.AsExitError(err)
	require.True(t, ok)
	assert.Equal(t, ExitConfigurationError, exitErr.Code)
}

func TestRoot_Version(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.NoError(t, cmd.Execute())
}
