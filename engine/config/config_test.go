package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vista.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "desk"
width = 1280

[camera]
zoom = 45.0

[store]
path = "custom.db"
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "desk", s.Window.Title)
	assert.Equal(t, 1280, s.Window.Width)
	// untouched keys keep their defaults
	assert.Equal(t, 800, s.Window.Height)
	assert.InDelta(t, 45.0, float64(s.Camera.Zoom), 1e-6)
	assert.Equal(t, [3]float32{0, 5, 12}, s.Camera.Position)
	assert.Equal(t, "custom.db", s.Store.Path)
}

func TestLoadInvalidTOMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
