// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
)

// Load reads the TOML configuration file at path on top of the
// default configuration, and validates the result.
func Load(path string) (*Config, error) {
	fp, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Export writes the configuration as TOML to the file at path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}

	fp, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if err = os.WriteFile(fp, raw, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
