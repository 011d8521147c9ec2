package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/pubforge/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "configuration error",
			err:      oerrors.ErrConfiguration,
			wantCode: ExitConfigurationError,
		},
		{
			name:     "wrapped configuration error",
			err:      oerrors.NewConfigurationError("bad name", "My_App", ""),
			wantCode: ExitConfigurationError,
		},
		{
			name:     "already exists error",
			err:      oerrors.NewAlreadyExistsError("directory not empty", "my_app", ""),
			wantCode: ExitAlreadyExists,
		},
		{
			name:     "i/o error",
			err:      oerrors.NewIOError("writing file", "my_app/pubspec.yaml", errors.New("disk full")),
			wantCode: ExitIOError,
		},
		{
			name:     "unknown error falls back to general",
			err:      errors.New("something else"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestWrapExit(t *testing.T) {
	assert.NoError(t, wrapExit(nil))

	err := wrapExit(oerrors.NewAlreadyExistsError("exists", "p", ""))
	exitErr, ok := oerrors.AsExitError(err)
	assert.True(t, ok)
	assert.Equal(t, ExitAlreadyExists, exitErr.Code)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Already Exists", ExitCodeName(ExitAlreadyExists))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
