package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("host = %q, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 3306 {
		t.Errorf("port = %d, want 3306", cfg.Port)
	}
	if cfg.Database != "ecommerce_synth" {
		t.Errorf("database = %q, want ecommerce_synth", cfg.Database)
	}
	if cfg.OutDir != "data" {
		t.Errorf("outdir = %q, want data", cfg.OutDir)
	}
	if cfg.Customers != 1_200_000 || cfg.Products != 1_200_000 || cfg.Orders != 2_000_000 {
		t.Errorf("row counts = %d/%d/%d, want 1200000/1200000/2000000", cfg.Customers, cfg.Products, cfg.Orders)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.ProgressEvery != 100_000 {
		t.Errorf("progress_every = %d, want 100000", cfg.ProgressEvery)
	}
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("customers", 10)
	viper.Set("seed", 7)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Customers != 10 {
		t.Errorf("customers = %d, want 10", cfg.Customers)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Database: "db", Seed: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"negative customers", Config{Database: "db", Seed: 1, Customers: -1}},
		{"negative orders", Config{Database: "db", Seed: 1, Orders: -5}},
		{"zero seed", Config{Database: "db", Seed: 0}},
		{"empty database", Config{Database: "", Seed: 1}},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
