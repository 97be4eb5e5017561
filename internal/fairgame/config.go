package fairgame

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ProtocolTag is the fixed prefix of every binding string
const ProtocolTag = "MiacatPoker"

// ProtocolVersion identifies the commitment-formula version in effect
const ProtocolVersion = "0.0.8"

// Config is the immutable protocol configuration passed to
// constructors. There are no package-level mutable settings.
type Config struct {
	// Version is the protocol version written into new records
	Version string

	// MaxPlayers caps participant commitments (seat numbers 1..MaxPlayers)
	MaxPlayers int

	// MaxSeedBytes caps the UTF-8 byte length of a private seed
	MaxSeedBytes int

	// SupportedVersions lists the record versions the verifier accepts
	SupportedVersions []string
}

// DefaultConfig returns the reference protocol configuration
func DefaultConfig() Config {
	return Config{
		Version:           ProtocolVersion,
		MaxPlayers:        9,
		MaxSeedBytes:      64,
		SupportedVersions: []string{"0.0.1", "0.0.8"},
	}
}

// Validate checks the configuration invariants. The burn/deal sequence
// consumes 2N+9 cards, so capacity is re-validated against the deck
// size rather than trusting the seat cap alone.
func (c Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("protocol version must not be empty")
	}
	if c.MaxPlayers < 1 || c.MaxPlayers > 9 {
		return fmt.Errorf("max players must be between 1 and 9, got %d", c.MaxPlayers)
	}
	if cardsDealt(c.MaxPlayers) > 52 {
		return fmt.Errorf("deal sequence for %d players exceeds 52 cards", c.MaxPlayers)
	}
	if c.MaxSeedBytes < 1 {
		return fmt.Errorf("max seed bytes must be positive, got %d", c.MaxSeedBytes)
	}
	if len(c.SupportedVersions) == 0 {
		return fmt.Errorf("at least one supported version must be configured")
	}
	return nil
}

// VersionSupported reports whether the verifier accepts a record version
func (c Config) VersionSupported(version string) bool {
	for _, v := range c.SupportedVersions {
		if v == version {
			return true
		}
	}
	return false
}

// hclConfig is the file representation of Config
type hclConfig struct {
	Protocol *hclProtocol `hcl:"protocol,block"`
	Verifier *hclVerifier `hcl:"verifier,block"`
}

type hclProtocol struct {
	Version      string `hcl:"version,optional"`
	MaxPlayers   int    `hcl:"max_players,optional"`
	MaxSeedBytes int    `hcl:"max_seed_bytes,optional"`
}

type hclVerifier struct {
	SupportedVersions []string `hcl:"supported_versions,optional"`
}

// LoadConfig loads configuration from an HCL file, falling back to
// DefaultConfig when the file does not exist. Missing fields keep
// their defaults; the result is validated before being returned.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var fc hclConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if fc.Protocol != nil {
		if fc.Protocol.Version != "" {
			cfg.Version = fc.Protocol.Version
		}
		if fc.Protocol.MaxPlayers != 0 {
			cfg.MaxPlayers = fc.Protocol.MaxPlayers
		}
		if fc.Protocol.MaxSeedBytes != 0 {
			cfg.MaxSeedBytes = fc.Protocol.MaxSeedBytes
		}
	}
	if fc.Verifier != nil && len(fc.Verifier.SupportedVersions) > 0 {
		cfg.SupportedVersions = fc.Verifier.SupportedVersions
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
