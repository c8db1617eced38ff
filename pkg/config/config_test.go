package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.ImagesDir != "images" {
		t.Errorf("Expected images dir %q, got %q", "images", c.ImagesDir)
	}
	if c.Window.Width != 1024 || c.Window.Height != 768 {
		t.Errorf("Unexpected default window size: %dx%d", c.Window.Width, c.Window.Height)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdffig.yaml")
	data := "images_dir: figures\nwindow:\n  width: 800\n  height: 600\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if c.ImagesDir != "figures" {
		t.Errorf("Expected images dir %q, got %q", "figures", c.ImagesDir)
	}
	if c.Window.Width != 800 || c.Window.Height != 600 {
		t.Errorf("Unexpected window size: %dx%d", c.Window.Width, c.Window.Height)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdffig.yaml")
	if err := os.WriteFile(path, []byte("images_dir: figures\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if c.ImagesDir != "figures" {
		t.Errorf("Expected images dir %q, got %q", "figures", c.ImagesDir)
	}
	if c.Window.Width != 1024 || c.Window.Height != 768 {
		t.Errorf("Expected default window size, got %dx%d", c.Window.Width, c.Window.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdffig.yaml")
	if err := os.WriteFile(path, []byte("window: [not a map"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}
