package core

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// defaultBranchPalette colors branch paths by position when neither the path
// nor the config declares a color.
var defaultBranchPalette = []string{"#ef4444", "#22c55e", "#3b82f6", "#f59e0b", "#a855f7"}

// ConfigurationManager defines the interface for loading and validating the
// optional .foresightrc file.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .foresightrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads the
// configuration file from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with working defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		DataDir:              "",
		SearchThreshold:      DefaultSearchThreshold,
		VerySimilarThreshold: DefaultVerySimilarThreshold,
		BranchPalette:        append([]string(nil), defaultBranchPalette...),
		DefaultPathColor:     defaultPathColor,
	}
}

// LoadConfig reads .foresightrc from the base path using Viper. If the file
// does not exist, defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".foresightrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("thresholds.search", cfg.SearchThreshold)
	v.SetDefault("thresholds.very_similar", cfg.VerySimilarThreshold)
	v.SetDefault("chart.default_path_color", cfg.DefaultPathColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .foresightrc: %w", err)
	}

	cfg.DataDir = v.GetString("data_dir")
	cfg.SearchThreshold = v.GetFloat64("thresholds.search")
	cfg.VerySimilarThreshold = v.GetFloat64("thresholds.very_similar")
	cfg.DefaultPathColor = v.GetString("chart.default_path_color")
	if v.IsSet("chart.palette") {
		cfg.BranchPalette = v.GetStringSlice("chart.palette")
	}

	if err := cm.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateConfig checks threshold ranges and color formats.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg.SearchThreshold < 0 || cfg.SearchThreshold > 1 {
		return fmt.Errorf("validating config: search threshold %v outside [0, 1]", cfg.SearchThreshold)
	}
	if cfg.VerySimilarThreshold < 0 || cfg.VerySimilarThreshold > 1 {
		return fmt.Errorf("validating config: very similar threshold %v outside [0, 1]", cfg.VerySimilarThreshold)
	}
	if cfg.VerySimilarThreshold < cfg.SearchThreshold {
		return fmt.Errorf("validating config: very similar threshold %v below search threshold %v",
			cfg.VerySimilarThreshold, cfg.SearchThreshold)
	}
	for _, color := range cfg.BranchPalette {
		if !validHexColor(color) {
			return fmt.Errorf("validating config: invalid palette color %q", color)
		}
	}
	if cfg.DefaultPathColor != "" && !validHexColor(cfg.DefaultPathColor) {
		return fmt.Errorf("validating config: invalid default path color %q", cfg.DefaultPathColor)
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
