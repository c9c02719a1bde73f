package cli

import (
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	logisticsApp "github.com/andrescamacho/settlement-go/internal/application/logistics"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/config"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/logging"
)

// loadConfig loads the configuration named by --config
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the process logger from config
func newLogger(cfg *config.Config) (*logging.SlogLogger, error) {
	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// layoutFromConfig converts the configured settlement into a simulation layout
func layoutFromConfig(cfg *config.SimulationConfig) logisticsApp.Layout {
	layout := logisticsApp.Layout{
		Sites:      make([]logisticsApp.SiteSpec, 0, len(cfg.Sites)),
		Collectors: make([]logisticsApp.CollectorSpec, 0, len(cfg.Collectors)),
	}

	for _, site := range cfg.Sites {
		capacity := site.Capacity
		if capacity == 0 {
			capacity = cfg.DefaultCapacity
		}
		layout.Sites = append(layout.Sites, logisticsApp.SiteSpec{
			Name:        site.Name,
			Kind:        site.Kind,
			X:           site.X,
			Y:           site.Y,
			Z:           site.Z,
			Capacity:    capacity,
			RatePerStep: site.RatePerStep,
		})
	}

	for _, collector := range cfg.Collectors {
		layout.Collectors = append(layout.Collectors, logisticsApp.CollectorSpec{
			ID: collector.ID,
			X:  collector.X,
			Y:  collector.Y,
			Z:  collector.Z,
		})
	}

	return layout
}

// setupMetrics initializes the registry and installs the global collectors.
// It returns the command collector for the mediator middleware.
func setupMetrics() (*metrics.CommandMetricsCollector, error) {
	metrics.InitRegistry()

	construction := metrics.NewConstructionMetricsCollector()
	if err := construction.Register(); err != nil {
		return nil, fmt.Errorf("failed to register construction metrics: %w", err)
	}
	metrics.SetGlobalConstructionCollector(construction)

	logistics := metrics.NewLogisticsMetricsCollector()
	if err := logistics.Register(); err != nil {
		return nil, fmt.Errorf("failed to register logistics metrics: %w", err)
	}
	metrics.SetGlobalLogisticsCollector(logistics)

	commands := metrics.NewCommandMetricsCollector()
	if err := commands.Register(); err != nil {
		return nil, fmt.Errorf("failed to register command metrics: %w", err)
	}

	return commands, nil
}
