package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"railfounding/internal/domain"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// VariantConfig holds the tunable numbers of the founding auction and its data files.
type VariantConfig struct {
	MinBid             int    `yaml:"min_bid"`
	MaxBid             int    `yaml:"max_bid"`
	MinIncrement       int    `yaml:"min_increment"`
	BaseMinIncrement   int    `yaml:"base_min_increment"`
	MaxParPrice        int    `yaml:"max_par_price" env:"USA_MAX_PAR_PRICE"`
	CorporationSizes   []int  `yaml:"corporation_sizes"`
	MetroConversionHex string `yaml:"metro_conversion_hex"`

	// MetroDenver enables the deferred track placement for a corporation founded in the conversion hex.
	MetroDenver bool   `yaml:"metro_denver" env:"USA_METRO_DENVER"`
	CatalogPath string `yaml:"catalog_path" env:"USA_CATALOG_PATH"`
	Locale      string `yaml:"locale" env:"USA_LOCALE"`
}

// Defaults returns the standard values.
func Defaults() VariantConfig {
	return VariantConfig{
		MinBid:             100,
		MaxBid:             100000,
		MinIncrement:       1,
		BaseMinIncrement:   5,
		MaxParPrice:        200,
		CorporationSizes:   slices.Clone(domain.DefaultCorporationSizes),
		MetroConversionHex: "E11",
		CatalogPath:        "data/g18usa.yaml",
		Locale:             "en-US",
	}
}

var (
	cfg      *VariantConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadVariantConfig loads the variant configuration from the given path once, then
// applies environment overrides.
func LoadVariantConfig(path string) error {
	loadOnce.Do(func() {
		c, err := loadOrDefaults(path)
		cfg = &c
		loadErr = err
	})
	return loadErr
}

// loadOrDefaults reads path. When the file cannot be used it returns the defaults with the
// environment overrides applied, together with the error.
func loadOrDefaults(path string) (VariantConfig, error) {
	c, err := Load(path)
	if err == nil {
		return c, nil
	}
	fallback, envErr := envDefaults()
	if envErr != nil {
		return fallback, errors.Join(err, envErr)
	}
	return fallback, err
}

func envDefaults() (VariantConfig, error) {
	c := Defaults()
	if err := ApplyEnv(&c); err != nil {
		return Defaults(), err
	}
	return c, nil
}

// Load reads a config file without touching the process-wide copy.
func Load(path string) (VariantConfig, error) {
	c := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read variant config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to unmarshal variant config: %w", err)
	}
	if err := ApplyEnv(&c); err != nil {
		return c, err
	}
	return c, nil
}

// ApplyEnv overrides fields from the environment.
func ApplyEnv(c *VariantConfig) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GetVariantConfig returns the loaded configuration, or the defaults with environment
// overrides if nothing was loaded.
func GetVariantConfig() VariantConfig {
	if cfg == nil {
		c, _ := envDefaults()
		return c
	}
	return *cfg
}
