package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/config"
	"github.com/KirkDiggler/destiny-api/internal/engine/specs"
	"github.com/KirkDiggler/destiny-api/internal/engine/taxonomy"
	"github.com/KirkDiggler/destiny-api/internal/redis"
)

// configFlags are the flags shared by commands that need runtime config.
// A flag only overrides the environment when it is set explicitly.
type configFlags struct {
	port         int
	redis        []string
	catalogPath  string
	taxonomyPath string
	qualityPath  string
	masteryRate  float64
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.port, "port", 50051, "gRPC server port (DESTINY_PORT)")
	cmd.Flags().StringSliceVar(&f.redis, "redis", nil, "Redis endpoints (DESTINY_REDIS_ENDPOINTS)")
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "Item catalog JSON (DESTINY_CATALOG_PATH)")
	cmd.Flags().StringVar(&f.taxonomyPath, "taxonomy", "", "Destiny board taxonomy YAML (DESTINY_TAXONOMY_PATH)")
	cmd.Flags().StringVar(&f.qualityPath, "quality", "", "Quality bonus schedule YAML (DESTINY_QUALITY_PATH)")
	cmd.Flags().Float64Var(&f.masteryRate, "mastery-rate", 0, "Mastery modifier bonus rate (DESTINY_MASTERY_MODIFIER_BONUS_RATE)")
}

func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = f.port
	}
	if flags.Changed("redis") {
		cfg.RedisEndpoints = f.redis
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = f.catalogPath
	}
	if flags.Changed("taxonomy") {
		cfg.TaxonomyPath = f.taxonomyPath
	}
	if flags.Changed("quality") {
		cfg.QualityPath = f.qualityPath
	}
	if flags.Changed("mastery-rate") {
		cfg.MasteryModifierBonusRate = f.masteryRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSchema(path string) (*specs.Schema, error) {
	root, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	resolver := taxonomy.NewResolver(root)
	slog.Info("taxonomy loaded", "path", path, "tables", resolver.Len())

	return specs.NewSchema(resolver), nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	client, err := redis.Connect(cfg.RedisEndpoints, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %v: %w", cfg.RedisEndpoints, err)
	}

	return client, nil
}
