// Package config loads the optional pdffig.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFile is looked for in the working directory when no explicit
// config path is given.
const DefaultFile = "pdffig.yaml"

// Config holds viewer and extraction settings.
type Config struct {
	// ImagesDir is the folder extracted images are written to and the
	// viewer reads from.
	ImagesDir string `yaml:"images_dir"`

	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.ImagesDir = "images"
	c.Window.Width = 1024
	c.Window.Height = 768
	return c
}

// Load reads the config file at path, applying defaults for fields the
// file omits. A missing file is an error; use LoadOrDefault for the
// optional lookup.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}

	if c.ImagesDir == "" {
		c.ImagesDir = Default().ImagesDir
	}
	if c.Window.Width <= 0 {
		c.Window.Width = Default().Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = Default().Window.Height
	}
	return c, nil
}

// LoadOrDefault reads DefaultFile if it exists, otherwise returns the
// defaults.
func LoadOrDefault() (Config, error) {
	if _, err := os.Stat(DefaultFile); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultFile)
}
