package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "settlement",
		Short: "Settlement simulator - construction modes and resource logistics",
		Long: `Settlement runs a headless settlement: production sites fill their
warehouse buffers, collectors haul from the nearest stocked warehouse, and a
scripted timeline of build modes is replayed through the mode coordinator.

Examples:
  settlement simulate --steps 50
  settlement simulate --tick 200ms --mode 5:GROUP_MOVING:farm --mode 12:IDLE
  settlement modes
  settlement ledger totals
  settlement config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/settlement)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewModesCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
