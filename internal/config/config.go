package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the config file. Set RECON_CONFIG to point
// the server at an alternate config file.
const (
	EnvERPFile    = "RECON_ERP_FILE"
	EnvBankFile   = "RECON_BANK_FILE"
	EnvListenAddr = "RECON_LISTEN_ADDR"
	EnvTolerance  = "RECON_TOLERANCE"
)

const (
	defaultListenAddr = ":8080"
	defaultTolerance  = "0.01"
)

// Config carries everything the engine's collaborators need: where the two
// ledger files live, where the tool server listens, and the amount tolerance.
// Paths are explicit configuration, never hardcoded by the engine.
type Config struct {
	ERPFile    string `yaml:"erp_file"`
	BankFile   string `yaml:"bank_file"`
	ListenAddr string `yaml:"listen_addr"`
	Tolerance  string `yaml:"tolerance"`
}

// Load reads the YAML config at path (skipped when path is empty or the file
// does not exist), applies environment overrides, fills defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvERPFile); v != "" {
		cfg.ERPFile = v
	}
	if v := os.Getenv(EnvBankFile); v != "" {
		cfg.BankFile = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv(EnvTolerance); v != "" {
		cfg.Tolerance = v
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.Tolerance == "" {
		cfg.Tolerance = defaultTolerance
	}

	if cfg.ERPFile == "" {
		return nil, fmt.Errorf("erp_file is required (config file or %s)", EnvERPFile)
	}
	if cfg.BankFile == "" {
		return nil, fmt.Errorf("bank_file is required (config file or %s)", EnvBankFile)
	}
	if _, err := cfg.ToleranceDecimal(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToleranceDecimal parses and validates the configured tolerance.
func (c *Config) ToleranceDecimal() (decimal.Decimal, error) {
	tol, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid tolerance %q: %w", c.Tolerance, err)
	}
	if tol.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("tolerance must not be negative, got %s", tol)
	}
	return tol, nil
}
