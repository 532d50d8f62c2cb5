package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"splat-racer/internal/chasecam"
	"splat-racer/internal/vehicle"
)

// DefaultPath is the config file path relative to the process working directory.
const DefaultPath = "config/game.yaml"

// Window holds window and frame-rate settings.
type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Debug holds overlay preferences.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowHelp     bool `yaml:"show_help"`
}

// Config is everything tunable about a session: window, drive feel, camera
// follow, overlays, and whether the editor grid shows on the default plane.
type Config struct {
	Window      Window          `yaml:"window"`
	Vehicle     vehicle.Tuning  `yaml:"vehicle"`
	Camera      chasecam.Follow `yaml:"camera"`
	Debug       Debug           `yaml:"debug"`
	GridVisible bool            `yaml:"grid_visible"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Splat Racer",
			TargetFPS: 60,
		},
		Vehicle:     vehicle.DefaultTuning(),
		Camera:      chasecam.DefaultFollow(),
		Debug:       Debug{ShowHelp: true},
		GridVisible: true,
	}
}

// Load reads the config from path. A missing or invalid file yields Default()
// and no error, so the game always starts.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default()
	}
	return c
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
