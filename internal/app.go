// Package internal provides the App struct that wires all components of the
// foresight system together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/foresight/internal/cli"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/internal/storage"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// App holds all service dependencies for the foresight system.
type App struct {
	BasePath string
	Config   models.Config

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	CatalogMgr storage.CatalogManager
	Scenarios  storage.ScenarioLoader

	// Core services
	Store      core.Store
	Resolver   core.Resolver
	Normalizer core.Normalizer
	Registry   *core.Registry
	Expander   *core.Expander
	Factory    *core.Factory
}

// NewApp creates and wires all components of the foresight system. basePath
// is the root directory holding the data tree (typically the directory
// containing .foresightrc).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Config = *cfg

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = basePath
	} else if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(basePath, dataDir)
	}

	// --- Storage layer ---
	app.CatalogMgr = storage.NewCatalogManager(dataDir)
	if err := app.CatalogMgr.Load(); err != nil {
		return nil, fmt.Errorf("loading definition catalog: %w", err)
	}
	app.Scenarios = storage.NewScenarioLoader(dataDir)
	if err := app.Scenarios.Load(); err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}

	// --- Core services ---
	app.Store = core.NewStore(app.CatalogMgr.Parameters(), app.CatalogMgr.Milestones(), app.CatalogMgr.Assumptions())
	app.Resolver = core.NewResolver(app.Store)
	app.Normalizer = core.NewNormalizer(app.Resolver)

	app.Registry, err = core.NewRegistry(app.Normalizer, app.Scenarios.Scenarios())
	if err != nil {
		return nil, fmt.Errorf("building scenario registry: %w", err)
	}

	app.Expander = core.NewExpander(cfg.BranchPalette, cfg.DefaultPathColor)
	app.Factory = core.NewFactory(app.Store, core.FindOrCreateOptions{
		SearchThreshold:      cfg.SearchThreshold,
		VerySimilarThreshold: cfg.VerySimilarThreshold,
	})

	// --- Wire CLI package-level variables ---
	cli.BasePath = dataDir
	cli.Config = app.Config
	cli.Store = app.Store
	cli.Registry = app.Registry
	cli.Expander = app.Expander
	cli.Factory = app.Factory
	cli.CatalogMgr = app.CatalogMgr

	return app, nil
}

// ResolveBasePath determines the base path for the foresight data directory.
// It checks the FORESIGHT_HOME env var, then walks up from the current
// directory looking for a .foresightrc file.
func ResolveBasePath() string {
	if home := os.Getenv("FORESIGHT_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".foresightrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
