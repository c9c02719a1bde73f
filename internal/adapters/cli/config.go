package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/settlement-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect the effective configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SETTLEMENT_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Example:
  settlement config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "Warning: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			printConfig(out, cfg)
			return nil
		},
	}
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Settlement Configuration")
	fmt.Fprintln(out, "========================")

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type: %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Fprintln(out, "  URL: (set)")
	case cfg.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path: %s\n", cfg.Database.Path)
	default:
		fmt.Fprintf(out, "  Host: %s:%d\n", cfg.Database.Postgres.Host, cfg.Database.Postgres.Port)
		fmt.Fprintf(out, "  Name: %s\n", cfg.Database.Postgres.Name)
		fmt.Fprintf(out, "  User: %s\n", cfg.Database.Postgres.User)
	}

	fmt.Fprintln(out, "\nSimulation:")
	fmt.Fprintf(out, "  Steps: %d\n", cfg.Simulation.Steps)
	fmt.Fprintf(out, "  Tick interval: %s\n", cfg.Simulation.TickInterval)
	fmt.Fprintf(out, "  Default capacity: %.2f\n", cfg.Simulation.DefaultCapacity)
	fmt.Fprintf(out, "  Record collections: %t\n", cfg.Simulation.RecordCollections)
	fmt.Fprintf(out, "  PID file: %s\n", cfg.Simulation.PIDFile)
	fmt.Fprintf(out, "  Sites: %d\n", len(cfg.Simulation.Sites))
	for _, site := range cfg.Simulation.Sites {
		fmt.Fprintf(out, "    - %s %s at (%.1f, %.1f, %.1f) cap %.2f rate %.2f\n",
			site.Name, site.Kind, site.X, site.Y, site.Z, site.Capacity, site.RatePerStep)
	}
	fmt.Fprintf(out, "  Collectors: %d\n", len(cfg.Simulation.Collectors))
	for _, entry := range cfg.Simulation.ModeScript {
		fmt.Fprintf(out, "  Mode: %s\n", entry)
	}

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format: %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output: %s\n", cfg.Logging.Output)

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled: %t\n", cfg.Metrics.Enabled)
	if cfg.Metrics.Enabled {
		fmt.Fprintf(out, "  Endpoint: %s%s\n", cfg.Metrics.Addr(), cfg.Metrics.Path)
	}
}
