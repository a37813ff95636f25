package models

// Config holds the tool-level settings read from .foresightrc. All fields
// have working defaults; the file is optional.
type Config struct {
	// DataDir is the directory holding repository/ and scenarios/. Empty
	// means the built-in seed data is used.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// SearchThreshold is the minimum similarity score for search results.
	SearchThreshold float64 `yaml:"search_threshold" mapstructure:"search_threshold"`

	// VerySimilarThreshold is the score at or above which a candidate is
	// treated as a near-duplicate of an existing definition.
	VerySimilarThreshold float64 `yaml:"very_similar_threshold" mapstructure:"very_similar_threshold"`

	// BranchPalette assigns colors to branch paths by path position when a
	// path does not declare its own color.
	BranchPalette []string `yaml:"branch_palette" mapstructure:"branch_palette"`

	// DefaultPathColor is used when the palette is exhausted.
	DefaultPathColor string `yaml:"default_path_color" mapstructure:"default_path_color"`
}
