/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingProjectID marks a config that is valid except for the
// project id, so callers with another source for it can recover.
var ErrMissingProjectID = errors.New("config: projectId is required")

// Config carries the connection settings for Cloud Datastore.
type Config struct {
	// ProjectID is the Datastore project (tenant) identifier.
	ProjectID string `yaml:"projectId"`
	// KeyFilename is the path to a service-account credential file.
	// Empty means application default credentials.
	KeyFilename string `yaml:"keyFilename"`
	// Namespace optionally scopes all keys and queries.
	Namespace string `yaml:"namespace"`
}

// Environment variables consulted for settings missing from the file.
const (
	EnvProjectID = "DATASTORE_PROJECT_ID"
	EnvKeyFile   = "DATASTORE_KEY_FILE"
	EnvNamespace = "DATASTORE_NAMESPACE"
)

// LoadConfig reads a YAML config file and fills missing settings from
// the environment. An empty path skips the file and uses environment
// settings only.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.ProjectID == "" {
		cfg.ProjectID = os.Getenv(EnvProjectID)
	}
	if cfg.KeyFilename == "" {
		cfg.KeyFilename = os.Getenv(EnvKeyFile)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = os.Getenv(EnvNamespace)
	}

	if err := cfg.Validate(); err != nil {
		// The partially-loaded config still travels back so a caller
		// holding the project id elsewhere keeps the file's settings.
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings the client cannot start without.
func (c Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("%w (or set %s)", ErrMissingProjectID, EnvProjectID)
	}
	return nil
}
