// Package config loads the shop configuration: company identity, default
// shop rates and the display timezone used on claim documents.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	CompanyName string `yaml:"company_name" env:"AUTOSHIELD_COMPANY_NAME" env-default:"AutoShield Insurance Companies"`
	WrittenBy   string `yaml:"written_by" env:"AUTOSHIELD_WRITTEN_BY" env-default:"AutoShield Claims"`

	DefaultLaborRate float64 `yaml:"default_labor_rate" env:"AUTOSHIELD_DEFAULT_LABOR_RATE" env-default:"80.00"`
	DefaultPaintRate float64 `yaml:"default_paint_rate" env:"AUTOSHIELD_DEFAULT_PAINT_RATE" env-default:"80.00"`
	SalesTaxRate     float64 `yaml:"sales_tax_rate" env:"AUTOSHIELD_SALES_TAX_RATE" env-default:"0.1075"`

	Timezone string `yaml:"timezone" env:"AUTOSHIELD_TIMEZONE" env-default:"America/Los_Angeles"`
}

// MustLoad reads the configuration from ./config/local.yaml when present,
// otherwise from environment variables with the documented defaults. It exits
// on a malformed config file.
func MustLoad() *Config {
	var cfg Config

	if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := cleanenv.ReadConfig(defaultConfigPath, &cfg); err != nil {
			log.Fatalf("cannot read config %s: %v", defaultConfigPath, err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %v", err)
	}
	return &cfg
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown to the host tzdata.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("config: unknown timezone %q, falling back to UTC", c.Timezone)
		return time.UTC
	}
	return loc
}
