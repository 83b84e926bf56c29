package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesOriginalDefaults(t *testing.T) {
	d := Default()
	if d.LayerHeight != 0.4 {
		t.Fatalf("expected default layer height 0.4, got %v", d.LayerHeight)
	}
	if d.WidthRatio != 1.6 {
		t.Fatalf("expected default width ratio 1.6, got %v", d.WidthRatio)
	}
	if d.AnchorLoops != 4 {
		t.Fatalf("expected default anchor loops 4, got %v", d.AnchorLoops)
	}
}

func TestLoadFileOverlaysOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slicer.toml")
	content := "layer_height = 0.3\nskins = 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config file: %v", err)
	}

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile returned an error: %v", err)
	}
	if cfg.LayerHeight != 0.3 {
		t.Fatalf("expected overridden layer height 0.3, got %v", cfg.LayerHeight)
	}
	if cfg.Skins != 3 {
		t.Fatalf("expected overridden skins 3, got %v", cfg.Skins)
	}
	if cfg.WidthRatio != 1.6 {
		t.Fatalf("expected untouched width ratio to keep its default, got %v", cfg.WidthRatio)
	}
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), Default())
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
