package core

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".foresightrc.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SearchThreshold != DefaultSearchThreshold {
		t.Errorf("SearchThreshold = %v, want %v", cfg.SearchThreshold, DefaultSearchThreshold)
	}
	if cfg.VerySimilarThreshold != DefaultVerySimilarThreshold {
		t.Errorf("VerySimilarThreshold = %v, want %v", cfg.VerySimilarThreshold, DefaultVerySimilarThreshold)
	}
	if cfg.DefaultPathColor != defaultPathColor {
		t.Errorf("DefaultPathColor = %s, want %s", cfg.DefaultPathColor, defaultPathColor)
	}
	if !reflect.DeepEqual(cfg.BranchPalette, defaultBranchPalette) {
		t.Errorf("BranchPalette = %v, want the default palette", cfg.BranchPalette)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
data_dir: /var/lib/foresight
thresholds:
  search: 0.6
  very_similar: 0.9
chart:
  default_path_color: "#123456"
  palette:
    - "#ff0000"
    - "#00ff00"
`)

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DataDir != "/var/lib/foresight" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.SearchThreshold != 0.6 || cfg.VerySimilarThreshold != 0.9 {
		t.Errorf("thresholds = %v / %v, want 0.6 / 0.9", cfg.SearchThreshold, cfg.VerySimilarThreshold)
	}
	if cfg.DefaultPathColor != "#123456" {
		t.Errorf("DefaultPathColor = %s", cfg.DefaultPathColor)
	}
	if !reflect.DeepEqual(cfg.BranchPalette, []string{"#ff0000", "#00ff00"}) {
		t.Errorf("BranchPalette = %v", cfg.BranchPalette)
	}
}

func TestLoadConfig_PartialFileKeepsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "thresholds:\n  search: 0.75\n")

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SearchThreshold != 0.75 {
		t.Errorf("SearchThreshold = %v, want 0.75", cfg.SearchThreshold)
	}
	if cfg.VerySimilarThreshold != DefaultVerySimilarThreshold {
		t.Errorf("VerySimilarThreshold = %v, want default", cfg.VerySimilarThreshold)
	}
	if !reflect.DeepEqual(cfg.BranchPalette, defaultBranchPalette) {
		t.Errorf("BranchPalette = %v, want untouched default", cfg.BranchPalette)
	}
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "threshold above one", content: "thresholds:\n  search: 1.5\n"},
		{name: "very similar below search", content: "thresholds:\n  search: 0.9\n  very_similar: 0.7\n"},
		{name: "bad palette color", content: "chart:\n  palette:\n    - \"red\"\n"},
		{name: "bad default color", content: "chart:\n  default_path_color: \"#12345\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, tt.content)
			if _, err := NewConfigurationManager(dir).LoadConfig(); err == nil {
				t.Fatal("LoadConfig() expected validation error")
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	tests := []struct {
		name    string
		cfg     models.Config
		wantErr bool
	}{
		{name: "defaults are valid", cfg: *DefaultConfig(), wantErr: false},
		{name: "negative threshold", cfg: models.Config{SearchThreshold: -0.1, VerySimilarThreshold: 0.9}, wantErr: true},
		{name: "very similar below search", cfg: models.Config{SearchThreshold: 0.8, VerySimilarThreshold: 0.5}, wantErr: true},
		{name: "uppercase hex accepted", cfg: models.Config{SearchThreshold: 0.5, VerySimilarThreshold: 0.9, DefaultPathColor: "#ABCDEF"}, wantErr: false},
		{name: "missing hash", cfg: models.Config{SearchThreshold: 0.5, VerySimilarThreshold: 0.9, DefaultPathColor: "abcdef1"}, wantErr: true},
		{name: "empty default color allowed", cfg: models.Config{SearchThreshold: 0.5, VerySimilarThreshold: 0.9}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cm.ValidateConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
