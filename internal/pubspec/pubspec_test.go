package pubspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pubforge/cli/internal/errors"
)

const valid = `name: geo_sensor
description: Reads the geo sensor.
version: 0.1.0+1
publish_to: none

environment:
  sdk: ^3.5.0
`

func TestParse_Valid(t *testing.T) {
	p, err := Parse([]byte(valid))
	require.NoError(t, err)

	assert.Equal(t, "geo_sensor", p.Name)
	assert.Equal(t, "0.1.0+1", p.Version)
	assert.True(t, p.HasPublishGuard())

	assert.True(t, p.Has(KeyName))
	assert.True(t, p.Has(KeyEnvironment))
	assert.False(t, p.Has(KeyHomepage))
}

func TestParse_MissingKeys(t *testing.T) {
	p, err := Parse([]byte("name: x\n"))
	require.NoError(t, err)

	assert.False(t, p.Has(KeyVersion))
	assert.Empty(t, p.Version)
	assert.False(t, p.HasPublishGuard())
}

func TestParse_QuotedVersion(t *testing.T) {
	p, err := Parse([]byte("name: x\nversion: \"1.2.3\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", p.Version)
}

func TestParse_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"not yaml":      "\t{{{:::",
		"scalar doc":    "just a string",
		"sequence doc":  "- a\n- b\n",
		"empty":         "",
		"only comments": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrParse))
		})
	}
}
