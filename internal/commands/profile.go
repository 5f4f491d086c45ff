package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/store"
)

// loadProfile builds the config and seeded store for a command run.
// A missing config file falls back to defaults; the store then resets
// to the built-in demo accounts, matching the no-persistence model.
func loadProfile(configPath string) (*config.Config, *store.Store, error) {
	cfg := config.Default("Bankist")
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("checking config: %w", err)
	}

	seeds := cfg.Seeds()
	if len(seeds) == 0 {
		seeds = store.DefaultAccounts()
	}
	s, err := store.New(seeds)
	if err != nil {
		return nil, nil, fmt.Errorf("seeding accounts: %w", err)
	}
	return cfg, s, nil
}
