package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/adapters/persistence"
	"github.com/andrescamacho/settlement-go/internal/application/common"
	"github.com/andrescamacho/settlement-go/internal/application/construction/commands"
	"github.com/andrescamacho/settlement-go/internal/application/construction/queries"
	logisticsApp "github.com/andrescamacho/settlement-go/internal/application/logistics"
	"github.com/andrescamacho/settlement-go/internal/application/setup"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/config"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/database"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/pidfile"
	"github.com/andrescamacho/settlement-go/pkg/utils"
)

type simulateOptions struct {
	steps        int
	tick         time.Duration
	modes        []string
	record       bool
	serveMetrics bool
	cancelAtEnd  bool
	pauseSites   []string
}

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the settlement simulation",
		Long: `Run the configured settlement for a number of steps.

Each step replays any scripted mode change, lets every enabled producer
add its output, then sends every collector to the nearest warehouse
holding at least one unit. Entering a group mode pauses production at the
selected sites until the next mode change. Several entries may share a step;
they are applied in order.

Mode script entries have the form STEP:MODE[:SITE,SITE]. Entries given
with --mode replace the config file's mode_script.

Examples:
  settlement simulate --steps 20
  settlement simulate --mode 3:GROUP_MOVING:farm,quarry --mode 9:IDLE
  settlement simulate --tick 500ms --metrics --record`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applySimulateFlags(cmd, cfg, opts)
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().IntVar(&opts.steps, "steps", 0, "Number of steps (default from config)")
	cmd.Flags().DurationVar(&opts.tick, "tick", 0, "Wall-clock time between steps (default from config)")
	cmd.Flags().StringArrayVar(&opts.modes, "mode", nil, "Scripted mode change STEP:MODE[:SITE,SITE] (repeatable)")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Record pickups in the collection ledger")
	cmd.Flags().BoolVar(&opts.serveMetrics, "metrics", false, "Serve Prometheus metrics while running")
	cmd.Flags().BoolVar(&opts.cancelAtEnd, "cancel-at-end", false, "Run the cancel-all protocol after the last step")
	cmd.Flags().StringSliceVar(&opts.pauseSites, "pause", nil, "Sites whose production is paused from the start")

	return cmd
}

// applySimulateFlags lets explicitly set flags override config values
func applySimulateFlags(cmd *cobra.Command, cfg *config.Config, opts *simulateOptions) {
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Simulation.Steps = opts.steps
	}
	if flags.Changed("tick") {
		cfg.Simulation.TickInterval = opts.tick
	}
	if flags.Changed("mode") {
		cfg.Simulation.ModeScript = opts.modes
	}
	if flags.Changed("record") {
		cfg.Simulation.RecordCollections = opts.record
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = opts.serveMetrics
	}
}

func runSimulate(ctx context.Context, out io.Writer, cfg *config.Config, opts *simulateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Simulation.Steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	pf := pidfile.New(cfg.Simulation.PIDFile)
	if err := pf.Acquire(); err != nil {
		return fmt.Errorf("failed to acquire PID file lock: %w", err)
	}
	defer pf.Release()

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runID := utils.GenerateID("simulate", "")
	ctx = common.WithLogger(ctx, logger)

	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		commandMetrics, err = setupMetrics()
		if err != nil {
			return err
		}
		server, err := metrics.NewServer(cfg.Metrics.Addr(), cfg.Metrics.Path)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		server.Start(func(err error) {
			logger.Log(common.LevelError, "Metrics server stopped", map[string]interface{}{"error": err.Error()})
		})
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
		logger.Log(common.LevelInfo, "Metrics server started", map[string]interface{}{
			"addr": cfg.Metrics.Addr() + cfg.Metrics.Path,
		})
	}

	var repo logistics.CollectionRepository
	if cfg.Simulation.RecordCollections {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		repo = persistence.NewGormCollectionRepository(db)
	}

	script, err := logisticsApp.ParseModeScript(cfg.Simulation.ModeScript)
	if err != nil {
		return err
	}

	sim, err := logisticsApp.NewSimulation(layoutFromConfig(&cfg.Simulation), script, logisticsApp.SimulationOptions{
		TickInterval: cfg.Simulation.TickInterval,
		Repository:   repo,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	mediator, err := setup.NewHandlerRegistry(sim.Coordinator(), sim).
		NewMediator(metrics.PrometheusMiddleware(commandMetrics))
	if err != nil {
		return err
	}

	for _, site := range opts.pauseSites {
		resp, err := mediator.Send(ctx, &commands.PauseProductionCommand{SiteID: site, Pause: true})
		if err != nil {
			return err
		}
		if !resp.(*commands.PauseProductionResponse).SiteFound {
			return fmt.Errorf("unknown site: %s", site)
		}
	}

	logger.Log(common.LevelInfo, "Simulation started", map[string]interface{}{
		"run_id":     runID,
		"steps":      cfg.Simulation.Steps,
		"sites":      len(sim.Sites()),
		"collectors": len(sim.Collectors()),
	})

	report, runErr := sim.Run(ctx, cfg.Simulation.Steps)
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	if opts.cancelAtEnd {
		if _, err := mediator.Send(ctx, &commands.CancelAllCommand{}); err != nil {
			return err
		}
	}

	resp, err := mediator.Send(ctx, &queries.GetModeQuery{})
	if err != nil {
		return err
	}
	printSimulationReport(out, sim, report, resp.(*queries.GetModeResponse))

	if runErr != nil {
		fmt.Fprintf(out, "\nInterrupted after %d steps\n", report.Steps)
	}
	return nil
}

func printSimulationReport(out io.Writer, sim *logisticsApp.Simulation, report logisticsApp.RunReport, state *queries.GetModeResponse) {
	fmt.Fprintf(out, "Simulation finished after %d steps\n", report.Steps)
	fmt.Fprintf(out, "Final mode: %s (grid %s)\n\n", state.Mode, visibility(state.GridVisible, state.GridKnown))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tKIND\tBUFFERED\tCAPACITY\tPRODUCING")
	for _, site := range sim.Sites() {
		buffer := site.Buffer()
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%t\n",
			site.Name(), buffer.Kind(), buffer.Amount(), buffer.Capacity(), site.ResourceProducer().Enabled())
	}
	w.Flush()

	kinds := make([]string, 0, len(report.Collected))
	for kind := range report.Collected {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	fmt.Fprintln(out, "\nCollected:")
	if len(kinds) == 0 {
		fmt.Fprintln(out, "  nothing")
	}
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-8s %.2f\n", kind, report.Collected[logistics.ResourceKind(kind)])
	}

	if report.RecordFailures > 0 {
		fmt.Fprintf(out, "\nWarning: %d pickups could not be recorded\n", report.RecordFailures)
	}
}

func visibility(visible, known bool) string {
	switch {
	case !known:
		return "untouched"
	case visible:
		return "shown"
	default:
		return "hidden"
	}
}
