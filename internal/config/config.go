// Package config loads server configuration from DESTINY_* environment
// variables. Command-line flags override individual values.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// Config is the server configuration
type Config struct {
	Port           int      `env:"DESTINY_PORT" envDefault:"50051"`
	RedisEndpoints []string `env:"DESTINY_REDIS_ENDPOINTS" envSeparator:"," envDefault:"localhost:6379"`
	RedisPassword  string   `env:"DESTINY_REDIS_PASSWORD"`
	RedisDB        int      `env:"DESTINY_REDIS_DB" envDefault:"0"`

	CatalogPath  string `env:"DESTINY_CATALOG_PATH" envDefault:"data/items.json"`
	TaxonomyPath string `env:"DESTINY_TAXONOMY_PATH" envDefault:"data/destiny_board.yaml"`
	QualityPath  string `env:"DESTINY_QUALITY_PATH"`
	TablesOut    string `env:"DESTINY_TABLES_OUT" envDefault:"progression_tables.json"`

	// MasteryModifierBonusRate scales the mastery level into an extra item
	// power term. Zero disables it.
	MasteryModifierBonusRate float64 `env:"DESTINY_MASTERY_MODIFIER_BONUS_RATE" envDefault:"0"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Validate checks the values the server needs to start
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	if len(c.RedisEndpoints) == 0 {
		vb.RequiredField("redis_endpoints")
	}
	errors.ValidateRequired("catalog_path", c.CatalogPath, vb)
	errors.ValidateRequired("taxonomy_path", c.TaxonomyPath, vb)
	if c.MasteryModifierBonusRate < 0 {
		vb.Field("mastery_modifier_bonus_rate", "must not be negative")
	}

	return vb.Build()
}
