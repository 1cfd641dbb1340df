// Package config loads the zoom-range settings the tile math consumes.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/LGK-Productions/LgkProductions.Geo/geo"
)

// MaxPyramidZoom caps the configurable zoom depth. Deeper pyramids exceed
// what the tile services in the wild serve and what int tile coordinates
// address comfortably.
const MaxPyramidZoom = 30

// Settings carries the persisted zoom-range configuration.
type Settings struct {
	MinZoom int `mapstructure:"min_zoom" json:"minZoom"`
	MaxZoom int `mapstructure:"max_zoom" json:"maxZoom"`
}

// DefaultSettings returns the zoom range used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{MinZoom: 0, MaxZoom: 19}
}

// Load reads settings from an optional geo.yaml config file in the working
// directory and from GEO_-prefixed environment variables, falling back to
// defaults. The result is validated before being returned.
func Load() (Settings, error) {
	v := viper.New()

	def := DefaultSettings()
	v.SetDefault("min_zoom", def.MinZoom)
	v.SetDefault("max_zoom", def.MaxZoom)

	// Config file is optional.
	v.SetConfigName("geo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err == nil {
		slog.Debug("loaded settings file", "path", v.ConfigFileUsed())
	}

	// Environment overrides: GEO_MIN_ZOOM, GEO_MAX_ZOOM.
	v.SetEnvPrefix("GEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the zoom range is usable.
func (s Settings) Validate() error {
	if s.MinZoom < 0 {
		return fmt.Errorf("min_zoom must not be negative, got %d", s.MinZoom)
	}
	if s.MaxZoom > MaxPyramidZoom {
		return fmt.Errorf("max_zoom %d exceeds maximum %d", s.MaxZoom, MaxPyramidZoom)
	}
	if s.MinZoom > s.MaxZoom {
		return fmt.Errorf("min_zoom %d exceeds max_zoom %d", s.MinZoom, s.MaxZoom)
	}
	return nil
}

// ZoomBounds returns the configured range as bounds for the zoom search.
func (s Settings) ZoomBounds() geo.Bounds[int] {
	return geo.NewBounds(s.MinZoom, s.MaxZoom)
}
