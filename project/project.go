package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "coiil.yaml"

// Config represents the project configuration from coiil.yaml.
type Config struct {
	Name      string `yaml:"name"`
	RoomsDir  string `yaml:"rooms_dir,omitempty"`
	AssetsDir string `yaml:"assets_dir,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty"`
	// EntityTypes is the optional whitelist of entity type names the
	// game registers. When set, `coiil check` rejects placements whose
	// type is not listed.
	EntityTypes []string `yaml:"entity_types,omitempty"`
}

// FindProjectRoot walks up from the current working directory looking
// for coiil.yaml. Returns the directory containing coiil.yaml, or an
// error if not found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding coiil.yaml
			return "", fmt.Errorf("%s not found in any parent directory of %s", configFileName, cwd)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the coiil.yaml file from the given
// project root, filling in defaults for the optional directories.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("'name' field is required in %s", configFileName)
	}
	if config.RoomsDir == "" {
		config.RoomsDir = "rooms"
	}
	if config.AssetsDir == "" {
		config.AssetsDir = "assets"
	}
	if config.OutputDir == "" {
		config.OutputDir = "build"
	}

	return &config, nil
}
