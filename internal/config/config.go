package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// VenueConfig overrides a venue's deployment addresses (devnet forks).
// Empty fields mean mainnet defaults.
type VenueConfig struct {
	Program      string `yaml:"program"`
	FeeRecipient string `yaml:"fee_recipient"`
}

type Config struct {
	RPCURL      string `yaml:"rpc_url"`
	KeypairPath string `yaml:"keypair_path"`
	StateDB     string `yaml:"state_db"`
	JournalDB   string `yaml:"journal_db"`

	Venues struct {
		PumpFun VenueConfig `yaml:"pumpfun"`
	} `yaml:"venues"`
}

func defaults() *Config {
	return &Config{
		RPCURL:    "https://api.mainnet-beta.solana.com",
		StateDB:   "data/router_state.db",
		JournalDB: "data/journal.db",
	}
}

// Load reads the yaml config (path may be empty), then lets env vars win:
// SOLANA_RPC_URL, ROUTER_KEYPAIR, ROUTER_STATE_DB, ROUTER_JOURNAL_DB.
// A .env file is honored the same way the rest of the tooling does it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("SOLANA_RPC_URL"); v != "" {
		cfg.RPCURL = v
	}
	if v := os.Getenv("ROUTER_KEYPAIR"); v != "" {
		cfg.KeypairPath = v
	}
	if v := os.Getenv("ROUTER_STATE_DB"); v != "" {
		cfg.StateDB = v
	}
	if v := os.Getenv("ROUTER_JOURNAL_DB"); v != "" {
		cfg.JournalDB = v
	}

	return cfg, nil
}

// Keypair returns the configured keypair path, erroring for commands that
// must sign (export-style tooling never calls this).
func (c *Config) Keypair() (string, error) {
	if c.KeypairPath == "" {
		return "", fmt.Errorf("keypair path not set (config keypair_path or ROUTER_KEYPAIR)")
	}
	return c.KeypairPath, nil
}
