/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/keygen"
	"github.com/suparena/memrepo/registry"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the path of the
// identifier configuration file.
const EnvConfigPath = "MEMREPO_CONFIG"

// Config selects an identifier strategy per named entity type.
//
//	strict: true
//	identifiers:
//	  Product: sequence
//	  Order: uuid
type Config struct {
	// Identifiers maps entity names, as registered with registry.RegisterType,
	// to strategy names understood by keygen.ByName.
	Identifiers map[string]string `yaml:"identifiers"`

	// Strict requires every registered type without an entry to be served by
	// the default strategy of its identifier type.
	Strict bool `yaml:"strict"`
}

// Parse decodes a YAML configuration and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigurationError("config", "invalid YAML", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads the given dotenv files, ".env" when none is given, and then
// loads the configuration file named by MEMREPO_CONFIG. Missing dotenv files
// are skipped. Without MEMREPO_CONFIG an empty configuration is returned.
func LoadEnv(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return &Config{Identifiers: map[string]string{}}, nil
	}
	return Load(path)
}

// Validate checks entity and strategy names.
func (c *Config) Validate() error {
	for name, strategy := range c.Identifiers {
		if name == "" {
			return errors.NewValidationError("identifiers", "entity name must not be empty")
		}
		if !keygen.IsStrategy(strategy) {
			return errors.NewConfigurationError(name,
				fmt.Sprintf("unknown strategy %q, want one of %v", strategy, keygen.Strategies()), nil)
		}
	}
	return nil
}

// Entities returns the configured entity names in sorted order.
func (c *Config) Entities() []string {
	return slices.Sorted(maps.Keys(c.Identifiers))
}

// Apply registers the configured strategies into r, resolving entity names
// through types.
func (c *Config) Apply(types *registry.Types, r *registry.IdentifierRegistry) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, name := range c.Entities() {
		if err := types.Configure(r, name, c.Identifiers[name]); err != nil {
			return err
		}
	}

	if !c.Strict {
		return nil
	}
	for _, name := range types.Names() {
		if _, configured := c.Identifiers[name]; configured {
			continue
		}
		entry, err := types.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := entry.Generator(keygen.StrategyDefault); err != nil {
			return fmt.Errorf("entity %s has no configured strategy: %w", name, err)
		}
	}
	return nil
}

// Configurer returns c as a Configurer resolving names through types.
func (c *Config) Configurer(types *registry.Types) Configurer {
	return ConfigurerFunc(func(r *registry.IdentifierRegistry) error {
		return c.Apply(types, r)
	})
}
