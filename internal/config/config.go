// Package config reads and writes the bankist.yaml demo profile.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bankist-dev/bankist/internal/model"
)

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Bank     BankConfig    `yaml:"bank"`
	Audit    AuditConfig   `yaml:"audit"`
	Accounts []AccountSeed `yaml:"accounts,omitempty"`
}

// BankConfig identifies the demo bank and its display currency.
type BankConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // suffix appended to rendered amounts
}

// AuditConfig controls the session audit log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// AccountSeed defines one account in the profile. When the accounts
// list is empty, the built-in demo accounts are used instead.
type AccountSeed struct {
	Owner        string    `yaml:"owner"`
	Movements    []float64 `yaml:"movements"`
	InterestRate float64   `yaml:"interest_rate"`
	PIN          int       `yaml:"pin"`
	Tier         string    `yaml:"tier"`
}

// Load reads a bankist.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new profile.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name:     bankName,
			Currency: "€",
		},
		Audit: AuditConfig{
			Enabled: false,
			Path:    "logs/audit-log.csv",
		},
	}
}

// Seeds converts the configured account seeds into model accounts.
func (c *Config) Seeds() []*model.Account {
	out := make([]*model.Account, len(c.Accounts))
	for i, seed := range c.Accounts {
		movements := make([]decimal.Decimal, len(seed.Movements))
		for j, m := range seed.Movements {
			movements[j] = decimal.NewFromFloat(m)
		}
		out[i] = &model.Account{
			Owner:        seed.Owner,
			Movements:    movements,
			InterestRate: decimal.NewFromFloat(seed.InterestRate),
			PIN:          seed.PIN,
			Tier:         model.AccountTier(seed.Tier),
		}
	}
	return out
}
