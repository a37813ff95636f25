package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
	"gopkg.in/yaml.v3"
)

// CatalogManager defines the interface for loading and persisting the
// definition catalog under <base>/repository/. Each definition kind lives in
// its own YAML file; a missing file falls back to the built-in seed catalog
// so the tool works out of the box.
type CatalogManager interface {
	Load() error
	Save() error

	Parameters() []models.ParameterDefinition
	Milestones() []models.MilestoneDefinition
	Assumptions() []models.AssumptionDefinition
}

type fileCatalog struct {
	basePath    string
	parameters  []models.ParameterDefinition
	milestones  []models.MilestoneDefinition
	assumptions []models.AssumptionDefinition
}

// NewCatalogManager creates a CatalogManager backed by YAML files under
// repository/ in the given base directory.
func NewCatalogManager(basePath string) CatalogManager {
	return &fileCatalog{basePath: basePath}
}

func (c *fileCatalog) repositoryDir() string {
	return filepath.Join(c.basePath, "repository")
}

func (c *fileCatalog) parametersPath() string {
	return filepath.Join(c.repositoryDir(), "parameters.yaml")
}

func (c *fileCatalog) milestonesPath() string {
	return filepath.Join(c.repositoryDir(), "milestones.yaml")
}

func (c *fileCatalog) assumptionsPath() string {
	return filepath.Join(c.repositoryDir(), "assumptions.yaml")
}

type parameterFile struct {
	Parameters []models.ParameterDefinition `yaml:"parameters"`
}

type milestoneFile struct {
	Milestones []models.MilestoneDefinition `yaml:"milestones"`
}

type assumptionFile struct {
	Assumptions []models.AssumptionDefinition `yaml:"assumptions"`
}

func (c *fileCatalog) Load() error {
	var pf parameterFile
	found, err := loadYAML(c.parametersPath(), &pf)
	if err != nil {
		return fmt.Errorf("loading parameter catalog: %w", err)
	}
	if found {
		c.parameters = pf.Parameters
	} else {
		c.parameters = SeedParameters()
	}

	var mf milestoneFile
	found, err = loadYAML(c.milestonesPath(), &mf)
	if err != nil {
		return fmt.Errorf("loading milestone catalog: %w", err)
	}
	if found {
		c.milestones = mf.Milestones
	} else {
		c.milestones = SeedMilestones()
	}

	var af assumptionFile
	found, err = loadYAML(c.assumptionsPath(), &af)
	if err != nil {
		return fmt.Errorf("loading assumption catalog: %w", err)
	}
	if found {
		c.assumptions = af.Assumptions
	} else {
		c.assumptions = SeedAssumptions()
	}

	return c.validate()
}

// validate rejects duplicate IDs within each kind and assumption categories
// outside the fixed table. Definition IDs are referenced by scenarios, so a
// duplicate would make resolution ambiguous.
func (c *fileCatalog) validate() error {
	seen := make(map[string]struct{}, len(c.parameters))
	for _, p := range c.parameters {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("validating catalog: duplicate parameter ID %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.milestones))
	for _, m := range c.milestones {
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("validating catalog: duplicate milestone ID %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.assumptions))
	for _, a := range c.assumptions {
		if _, ok := seen[a.ID]; ok {
			return fmt.Errorf("validating catalog: duplicate assumption ID %q", a.ID)
		}
		seen[a.ID] = struct{}{}
		if !core.ValidCategory(a.Category) {
			return fmt.Errorf("validating catalog: assumption %q has unknown category %q", a.ID, a.Category)
		}
	}
	return nil
}

func (c *fileCatalog) Save() error {
	if err := os.MkdirAll(c.repositoryDir(), 0o755); err != nil {
		return fmt.Errorf("saving catalog: creating directory: %w", err)
	}
	if err := saveYAML(c.parametersPath(), parameterFile{Parameters: c.parameters}); err != nil {
		return fmt.Errorf("saving parameter catalog: %w", err)
	}
	if err := saveYAML(c.milestonesPath(), milestoneFile{Milestones: c.milestones}); err != nil {
		return fmt.Errorf("saving milestone catalog: %w", err)
	}
	if err := saveYAML(c.assumptionsPath(), assumptionFile{Assumptions: c.assumptions}); err != nil {
		return fmt.Errorf("saving assumption catalog: %w", err)
	}
	return nil
}

func (c *fileCatalog) Parameters() []models.ParameterDefinition {
	return c.parameters
}

func (c *fileCatalog) Milestones() []models.MilestoneDefinition {
	return c.milestones
}

func (c *fileCatalog) Assumptions() []models.AssumptionDefinition {
	return c.assumptions
}

// loadYAML reads and unmarshals a YAML file. The boolean reports whether the
// file existed.
func loadYAML(path string, target interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func saveYAML(path string, source interface{}) error {
	data, err := yaml.Marshal(source)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
