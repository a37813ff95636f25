package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/valter-silva-au/foresight/pkg/models"
	"gopkg.in/yaml.v3"
)

// ScenarioLoader defines the interface for loading authored scenario files
// from <base>/scenarios/. Each file holds one scenario in either the inline
// or the repository-referencing shape; the shape is detected once at load
// time and carried on the returned tagged value.
type ScenarioLoader interface {
	Load() error
	Scenarios() []models.Scenario
}

type fileScenarioStore struct {
	basePath  string
	scenarios []models.Scenario
}

// NewScenarioLoader creates a ScenarioLoader reading YAML files under
// scenarios/ in the given base directory. A missing directory falls back to
// the built-in seed scenarios.
func NewScenarioLoader(basePath string) ScenarioLoader {
	return &fileScenarioStore{basePath: basePath}
}

func (s *fileScenarioStore) scenariosDir() string {
	return filepath.Join(s.basePath, "scenarios")
}

func (s *fileScenarioStore) Load() error {
	entries, err := os.ReadDir(s.scenariosDir())
	if err != nil {
		if os.IsNotExist(err) {
			s.scenarios = SeedScenarios()
			return nil
		}
		return fmt.Errorf("loading scenarios: %w", err)
	}

	var loaded []models.Scenario
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(s.scenariosDir(), name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("loading scenario %s: %w", name, err)
		}
		scenario, err := DecodeScenario(data)
		if err != nil {
			return fmt.Errorf("loading scenario %s: %w", name, err)
		}
		loaded = append(loaded, scenario)
	}

	if len(loaded) == 0 {
		s.scenarios = SeedScenarios()
		return nil
	}

	// Directory order is platform-dependent; keep a stable listing.
	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID() < loaded[j].ID()
	})
	s.scenarios = loaded
	return nil
}

func (s *fileScenarioStore) Scenarios() []models.Scenario {
	result := make([]models.Scenario, len(s.scenarios))
	copy(result, s.scenarios)
	return result
}

// shapeProbe looks only at the keys that distinguish the two authored shapes.
type shapeProbe struct {
	ParameterRefs []yaml.Node `yaml:"parameter_refs"`
	MilestoneRefs []yaml.Node `yaml:"milestone_refs"`
}

// DecodeScenario unmarshals a single scenario document, detecting its shape
// from the presence of repository reference keys.
func DecodeScenario(data []byte) (models.Scenario, error) {
	var probe shapeProbe
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return models.Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}

	if len(probe.ParameterRefs) > 0 || len(probe.MilestoneRefs) > 0 {
		var rb models.RepositoryBasedScenario
		if err := yaml.Unmarshal(data, &rb); err != nil {
			return models.Scenario{}, fmt.Errorf("parsing repository-based scenario: %w", err)
		}
		if rb.ID == "" {
			return models.Scenario{}, fmt.Errorf("parsing scenario: missing id")
		}
		return models.RepoScenario(&rb), nil
	}

	var inline models.AIScenario
	if err := yaml.Unmarshal(data, &inline); err != nil {
		return models.Scenario{}, fmt.Errorf("parsing inline scenario: %w", err)
	}
	if inline.ID == "" {
		return models.Scenario{}, fmt.Errorf("parsing scenario: missing id")
	}
	return models.InlineScenario(&inline), nil
}

// EncodeScenario marshals a scenario back to YAML in its authored shape.
func EncodeScenario(s models.Scenario) ([]byte, error) {
	if s.RepoBased != nil {
		return yaml.Marshal(s.RepoBased)
	}
	if s.Inline != nil {
		return yaml.Marshal(s.Inline)
	}
	return nil, fmt.Errorf("encoding scenario: empty scenario value")
}

// WriteScenario writes a scenario to scenarios/<id>.yaml under the base
// directory, creating the directory if needed.
func WriteScenario(basePath string, s models.Scenario) (string, error) {
	if s.ID() == "" {
		return "", fmt.Errorf("writing scenario: missing id")
	}
	data, err := EncodeScenario(s)
	if err != nil {
		return "", fmt.Errorf("writing scenario: %w", err)
	}
	dir := filepath.Join(basePath, "scenarios")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("writing scenario: creating directory: %w", err)
	}
	path := filepath.Join(dir, s.ID()+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing scenario: %w", err)
	}
	return path, nil
}
