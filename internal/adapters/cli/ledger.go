package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/settlement-go/internal/adapters/persistence"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/database"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Collection ledger queries",
		Long: `Inspect the collection ledger written by 'settlement simulate --record'.

The ledger is an append-only history of pickups. It never restores
buffer contents or build modes.

Examples:
  settlement ledger totals
  settlement ledger node 3f0c6a3e-6d43-4c1b-9d53-4b6f2c1a9e10`,
	}

	cmd.AddCommand(newLedgerTotalsCommand())
	cmd.AddCommand(newLedgerNodeCommand())

	return cmd
}

func newLedgerTotalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show collected amount per resource kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openLedger()
			if err != nil {
				return err
			}
			defer closeDB()

			totals, err := repo.TotalsByKind(cmd.Context())
			if err != nil {
				return err
			}
			return printTotals(cmd.OutOrStdout(), totals)
		},
	}
}

func newLedgerNodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "node <node-id>",
		Short: "List pickups made at one warehouse node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := logistics.ParseNodeID(args[0])
			if err != nil {
				return err
			}

			repo, closeDB, err := openLedger()
			if err != nil {
				return err
			}
			defer closeDB()

			collections, err := repo.FindByNode(cmd.Context(), nodeID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(collections) == 0 {
				fmt.Fprintln(out, "No collections recorded for this node")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COLLECTED AT\tNODE\tKIND\tAMOUNT\tCOLLECTOR")
			for _, c := range collections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
					c.CollectedAt().Format(time.RFC3339), c.NodeName(), c.Kind(), c.Amount(), c.CollectorID())
			}
			return w.Flush()
		},
	}
}

// openLedger connects to the configured database and migrates the ledger tables
func openLedger() (logistics.CollectionRepository, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return persistence.NewGormCollectionRepository(db), func() { database.Close(db) }, nil
}

func printTotals(out io.Writer, totals map[logistics.ResourceKind]float64) error {
	if len(totals) == 0 {
		fmt.Fprintln(out, "No collections recorded")
		return nil
	}

	kinds := make([]string, 0, len(totals))
	for kind := range totals {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tCOLLECTED")
	for _, kind := range kinds {
		fmt.Fprintf(w, "%s\t%.2f\n", kind, totals[logistics.ResourceKind(kind)])
	}
	return w.Flush()
}

