package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LGK-Productions/LgkProductions.Geo/geo"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 0, s.MinZoom)
	assert.Equal(t, 19, s.MaxZoom)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"defaults", DefaultSettings(), false},
		{"narrow range", Settings{MinZoom: 5, MaxZoom: 5}, false},
		{"full range", Settings{MinZoom: 0, MaxZoom: MaxPyramidZoom}, false},
		{"negative min", Settings{MinZoom: -1, MaxZoom: 10}, true},
		{"too deep", Settings{MinZoom: 0, MaxZoom: MaxPyramidZoom + 1}, true},
		{"inverted", Settings{MinZoom: 10, MaxZoom: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestZoomBounds(t *testing.T) {
	s := Settings{MinZoom: 3, MaxZoom: 12}
	assert.Equal(t, geo.NewBounds(3, 12), s.ZoomBounds())
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEO_MIN_ZOOM", "2")
	t.Setenv("GEO_MAX_ZOOM", "12")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, s.MinZoom)
	assert.Equal(t, 12, s.MaxZoom)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	err := os.WriteFile(filepath.Join(dir, "geo.yaml"), []byte("min_zoom: 4\nmax_zoom: 16\n"), 0o644)
	require.NoError(t, err)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{MinZoom: 4, MaxZoom: 16}, s)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEO_MAX_ZOOM", "99")

	_, err := Load()
	assert.Error(t, err)
}

// chdirTemp moves the test into an empty directory so a stray geo.yaml in
// the working tree cannot leak into Load.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}
