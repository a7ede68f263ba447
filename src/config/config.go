// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/validate"
	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/chain"
)

// EnvConfigFile names the environment variable consulted when no path is given.
const EnvConfigFile = "X509_PEER_TRUST_CONFIG"

var (
	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoPinnedCertificates indicates a pinned root file without any
	// decodable certificate.
	ErrNoPinnedCertificates = errors.New("config: no certificates in pinned root file")
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// TrustConfig selects how peer chains are anchored.
type TrustConfig struct {
	// Mode: "default" trusts any fully built path, "pinned" only paths ending
	// in one of PinnedRoots. A pinned mode without roots trusts nothing.
	Mode string `json:"mode" yaml:"mode" validate:"oneof=default pinned"`
	// PinnedRoots: PEM files holding the pinned root certificates
	PinnedRoots []string `json:"pinnedRoots,omitempty" yaml:"pinnedRoots,omitempty" validate:"dive,file_exists"`
}

// IdentityConfig names the module whose SAN URI identity is expected.
// Either all fields are set or none.
type IdentityConfig struct {
	Hub    string `json:"hub,omitempty" yaml:"hub,omitempty" validate:"required_with=Device Module"`
	Device string `json:"device,omitempty" yaml:"device,omitempty" validate:"required_with=Hub Module"`
	Module string `json:"module,omitempty" yaml:"module,omitempty" validate:"required_with=Hub Device"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Format: path rendering, one of table, tree, json or pem
	Format string `json:"format" yaml:"format" validate:"oneof=table tree json pem"`
	// LogFormat: diagnostic log lines, text or json
	LogFormat string `json:"logFormat" yaml:"logFormat" validate:"oneof=text json"`
}

// Config is the tool configuration.
type Config struct {
	Trust    TrustConfig    `json:"trust" yaml:"trust"`
	Identity IdentityConfig `json:"identity" yaml:"identity"`
	Output   OutputConfig   `json:"output" yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Trust:  TrustConfig{Mode: x509chain.TrustModeDefault.String()},
		Output: OutputConfig{Format: "table", LogFormat: "text"},
	}
}

// detectConfigFormat determines the configuration file format based on file
// extension, case-insensitively. Unknown extensions are read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration at configPath, or at $X509_PEER_TRUST_CONFIG
// when configPath is empty, on top of [Default].
//
// Parameters:
//   - configPath: Path to a .json, .yaml or .yml file; may be empty
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Read or parse failure, or [ErrInvalidConfig]
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_PEER_TRUST_CONFIG is checked if configPath is empty
//  3. Config file values override defaults
//  4. Empty values left by the file are reset to their defaults
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
		config.applyDefaults()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Trust.Mode == "" {
		c.Trust.Mode = def.Trust.Mode
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Output.LogFormat == "" {
		c.Output.LogFormat = def.Output.LogFormat
	}
}

// Validate checks c against its field constraints.
func (c *Config) Validate() error {
	c.Trust.Mode = strings.ToLower(strings.TrimSpace(c.Trust.Mode))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// HasIdentity reports whether an expected module identity is configured.
func (c *Config) HasIdentity() bool {
	return c.Identity.Hub != "" && c.Identity.Device != "" && c.Identity.Module != ""
}

// TrustAnchors builds the trust policy described by c. In pinned mode every
// certificate of every pinned root file is pinned.
//
// Returns:
//   - x509chain.TrustAnchors: Default or pinned anchors
//   - error: Unknown mode, unreadable file, or [ErrNoPinnedCertificates]
func (c *Config) TrustAnchors() (x509chain.TrustAnchors, error) {
	mode, err := x509chain.ParseTrustMode(c.Trust.Mode)
	if err != nil {
		return x509chain.TrustAnchors{}, err
	}
	if mode == x509chain.TrustModeDefault {
		return x509chain.DefaultTrust(), nil
	}

	var roots []*x509.Certificate
	for _, path := range c.Trust.PinnedRoots {
		certs, err := readCertificates(path)
		if err != nil {
			return x509chain.TrustAnchors{}, err
		}
		roots = append(roots, certs...)
	}
	return x509chain.PinnedTrust(roots...), nil
}

func readCertificates(path string) ([]*x509.Certificate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pinned root file: %w", err)
	}
	defer f.Close()

	data, err := gc.ReadAll(gc.Default, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read pinned root file: %w", err)
	}

	certs := x509certs.ParseCertificates(string(data))
	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPinnedCertificates, path)
	}
	return certs, nil
}
