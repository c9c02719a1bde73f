package config

import (
	"time"

	"github.com/andrescamacho/settlement-go/pkg/utils"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "settlement.db"
	}

	pg := &cfg.Database.Postgres
	if pg.Host == "" {
		pg.Host = "localhost"
	}
	if pg.Port == 0 {
		pg.Port = 5432
	}
	if pg.User == "" {
		pg.User = "settlement"
	}
	if pg.Name == "" {
		pg.Name = "settlement"
	}
	if pg.SSLMode == "" {
		pg.SSLMode = "disable"
	}
	if pg.MaxOpenConns == 0 {
		pg.MaxOpenConns = 10
	}
	if pg.MaxIdleConns == 0 {
		pg.MaxIdleConns = 2
	}
	if pg.ConnMaxLifetime == 0 {
		pg.ConnMaxLifetime = 5 * time.Minute
	}

	// Simulation defaults
	if cfg.Simulation.Steps == 0 {
		cfg.Simulation.Steps = 100
	}
	if cfg.Simulation.DefaultCapacity == 0 {
		cfg.Simulation.DefaultCapacity = 10
	}
	if cfg.Simulation.PIDFile == "" {
		cfg.Simulation.PIDFile = "/tmp/settlement-simulate.pid"
	}
	if len(cfg.Simulation.Sites) == 0 {
		cfg.Simulation.Sites = defaultSites()
	}
	if len(cfg.Simulation.Collectors) == 0 {
		cfg.Simulation.Collectors = []CollectorConfig{
			{ID: "hauler-1"},
			{ID: "hauler-2", X: 12, Z: 6},
		}
	}
	for i := range cfg.Simulation.Collectors {
		if cfg.Simulation.Collectors[i].ID == "" {
			cfg.Simulation.Collectors[i].ID = utils.GenerateID("hauler", "")
		}
	}
	for i := range cfg.Simulation.Sites {
		if cfg.Simulation.Sites[i].Capacity == 0 {
			cfg.Simulation.Sites[i].Capacity = cfg.Simulation.DefaultCapacity
		}
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// defaultSites is a small starter settlement
func defaultSites() []SiteConfig {
	return []SiteConfig{
		{Name: "lumber-camp", Kind: "WOOD", X: 4, Z: 2, RatePerStep: 0.75},
		{Name: "quarry", Kind: "STONE", X: -6, Z: 3, RatePerStep: 0.5},
		{Name: "farm", Kind: "FOOD", X: 10, Z: -4, RatePerStep: 1},
		{Name: "sawmill", Kind: "PLANKS", X: 2, Z: 8, Capacity: 20, RatePerStep: 0.25},
	}
}
