package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnvironment is the space environment used when none is configured
	DefaultEnvironment = "master"

	// DefaultFolder is the destination root used when none is configured
	DefaultFolder = "."

	// DefaultLanguage is the target language used when none is configured
	DefaultLanguage = "java"
)

// FileNames lists the project config files looked up, in order of preference
var FileNames = []string{"contentful.json", "contentful.yaml", "contentful.yml"}

// ErrNotFound is returned when no config file exists in the directory tree
var ErrNotFound = errors.New("no contentful config file found")

// Config represents the contentful.json (or .yaml) project file. The
// management token is never read from it.
type Config struct {
	Space       string `json:"space" yaml:"space"`
	Environment string `json:"environment" yaml:"environment"`
	Package     string `json:"package" yaml:"package"`
	Folder      string `json:"folder" yaml:"folder"`
	Language    string `json:"language" yaml:"language"`
}

// LoadConfig loads the project config from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the project config from a specific path. The
// format follows the file extension.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.ApplyDefaults()
	return &config, nil
}

// Default returns a config holding only default values
func Default() *Config {
	config := &Config{}
	config.ApplyDefaults()
	return config
}

// ApplyDefaults fills every unset optional value
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.Folder == "" {
		c.Folder = DefaultFolder
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
}

// loadConfigFromDir searches for a config file in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				config, err := LoadConfigFromPath(configPath)
				if err != nil {
					return nil, "", err
				}
				return config, dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
}
