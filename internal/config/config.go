package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the full run configuration. Values resolve in the usual viper
// order: flag > environment (SHOPGEN_*) > config file > default.
type Config struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`

	OutDir    string `json:"outdir" mapstructure:"outdir"`
	Customers int    `json:"customers" mapstructure:"customers"`
	Products  int    `json:"products" mapstructure:"products"`
	Orders    int    `json:"orders" mapstructure:"orders"`

	// ItemsAvg is accepted for compatibility but the item count per order
	// comes from a fixed discrete distribution, not this value.
	ItemsAvg float64 `json:"items_avg" mapstructure:"items_avg"`

	Seed          uint64 `json:"seed" mapstructure:"seed"`
	ProgressEvery int64  `json:"progress_every" mapstructure:"progress_every"`
}

// SetDefaults registers every config default with viper. Call before Load.
func SetDefaults() {
	viper.SetDefault("host", "127.0.0.1")
	viper.SetDefault("port", 3306)
	viper.SetDefault("user", "root")
	viper.SetDefault("password", "")
	viper.SetDefault("database", "ecommerce_synth")
	viper.SetDefault("outdir", "data")
	viper.SetDefault("customers", 1_200_000)
	viper.SetDefault("products", 1_200_000)
	viper.SetDefault("orders", 2_000_000)
	viper.SetDefault("items_avg", 3.0)
	viper.SetDefault("seed", 42)
	viper.SetDefault("progress_every", 100_000)
}

// Load resolves the effective configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Customers < 0 || c.Products < 0 || c.Orders < 0 {
		return fmt.Errorf("row counts must not be negative")
	}
	if c.Seed == 0 {
		// gofakeit treats seed 0 as "use crypto/rand", which would break
		// reproducibility guarantees.
		return fmt.Errorf("seed must be non-zero")
	}
	if c.Database == "" {
		return fmt.Errorf("database name must not be empty")
	}
	return nil
}
