package logistics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// SimulationOptions configures a Simulation. Every field is optional.
type SimulationOptions struct {
	// TickInterval paces Run; zero runs steps back to back
	TickInterval time.Duration

	Collaborators constructionApp.Collaborators
	Repository    logistics.CollectionRepository
	Clock         shared.Clock
	Logger        common.Logger
}

// StepReport summarizes one simulation step
type StepReport struct {
	Step           int
	Produced       int
	Collected      float64
	RecordFailures int
	Mode           construction.BuildMode
}

// RunReport summarizes a Run
type RunReport struct {
	Steps          int
	Collected      map[logistics.ResourceKind]float64
	RecordFailures int
	FinalMode      construction.BuildMode
}

// Simulation drives a settlement: producers fill buffers, collectors drain
// the nearest stocked warehouse, and a scripted mode timeline is replayed
// through the mode coordinator.
//
// A Simulation is single-threaded; Step and Run must not be called concurrently.
type Simulation struct {
	registry    *InMemoryWarehouseRegistry
	coordinator *constructionApp.ModeCoordinator
	logger      common.Logger

	sites      []*logistics.ProductionSite
	siteByName map[string]*logistics.ProductionSite
	collectors []*Collector

	script  map[int][]ModeChange
	paused  []*logistics.ProductionSite
	limiter *rate.Limiter
	step    int
}

// NewSimulation validates layout and builds the world.
// Every site's warehouse node is registered before the first step.
func NewSimulation(layout Layout, script ModeScript, opts SimulationOptions) (*Simulation, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = common.NoOpLogger()
	}

	sim := &Simulation{
		registry:    NewInMemoryWarehouseRegistry(),
		coordinator: constructionApp.NewModeCoordinator(opts.Collaborators, logger),
		logger:      logger,
		siteByName:  make(map[string]*logistics.ProductionSite, len(layout.Sites)),
		script:      make(map[int][]ModeChange, len(script)),
	}

	for _, spec := range layout.Sites {
		kind, _ := logistics.ParseResourceKind(spec.Kind)
		site, err := logistics.NewProductionSite(spec.Name, spec.Position(), kind, spec.Capacity, spec.RatePerStep)
		if err != nil {
			return nil, fmt.Errorf("failed to create site: %w", err)
		}
		sim.sites = append(sim.sites, site)
		sim.siteByName[site.Name()] = site
		sim.registry.Register(site.Node())
	}

	for _, spec := range layout.Collectors {
		collector, err := NewCollector(spec.ID, spec.Position(), opts.Repository, opts.Clock)
		if err != nil {
			return nil, fmt.Errorf("failed to create collector: %w", err)
		}
		sim.collectors = append(sim.collectors, collector)
	}

	for _, change := range script {
		for _, name := range change.Sites {
			if _, ok := sim.siteByName[name]; !ok {
				return nil, fmt.Errorf("mode script step %d selects unknown site %q", change.Step, name)
			}
		}
		sim.script[change.Step] = append(sim.script[change.Step], change)
	}

	if opts.TickInterval > 0 {
		sim.limiter = rate.NewLimiter(rate.Every(opts.TickInterval), 1)
	}

	return sim, nil
}

func (s *Simulation) Registry() *InMemoryWarehouseRegistry          { return s.registry }
func (s *Simulation) Coordinator() *constructionApp.ModeCoordinator { return s.coordinator }
func (s *Simulation) Sites() []*logistics.ProductionSite            { return s.sites }
func (s *Simulation) Collectors() []*Collector                      { return s.collectors }
func (s *Simulation) CurrentStep() int                              { return s.step }

// FindSite implements construction.SiteLookup, by site name or node ID
func (s *Simulation) FindSite(siteID string) (construction.ProductionSite, bool) {
	if site, ok := s.siteByName[siteID]; ok {
		return site, true
	}
	for _, site := range s.sites {
		if site.ID().String() == siteID {
			return site, true
		}
	}
	return nil, false
}

// Demolish removes a site from the world. Its node leaves the registry so
// collectors stop targeting it; buffered output is lost with it.
func (s *Simulation) Demolish(name string) bool {
	site, ok := s.siteByName[name]
	if !ok {
		return false
	}

	s.registry.Unregister(site.Node())
	delete(s.siteByName, name)
	for i, candidate := range s.sites {
		if candidate == site {
			s.sites = append(s.sites[:i], s.sites[i+1:]...)
			break
		}
	}
	for i, candidate := range s.paused {
		if candidate == site {
			s.paused = append(s.paused[:i], s.paused[i+1:]...)
			break
		}
	}
	return true
}

// Step advances the world by one step: scripted mode change, production, collection
func (s *Simulation) Step(ctx context.Context) StepReport {
	ctx = common.WithLogger(ctx, s.logger)

	for _, change := range s.script[s.step] {
		s.applyModeChange(change)
	}

	report := StepReport{Step: s.step}

	for _, site := range s.sites {
		producer := site.ResourceProducer()
		stored := producer.Produce(1)
		if producer.Enabled() {
			metrics.RecordBufferAdd(site.Buffer().Kind(), stored)
		}
		if stored {
			report.Produced++
		}
		buffer := site.Buffer()
		metrics.RecordBufferLevel(site.Name(), buffer.Kind(), buffer.Amount(), buffer.Capacity())
	}

	for _, collector := range s.collectors {
		node, ok := collector.ChooseDestination(s.registry)
		if !ok {
			continue
		}

		collector.MoveTo(node.Position())
		amount, err := collector.Collect(ctx, node)
		report.Collected += amount
		if err != nil {
			report.RecordFailures++
			s.logger.Log(common.LevelWarn, "Collection not recorded", map[string]interface{}{
				"collector": collector.ID(),
				"error":     err.Error(),
			})
		}
	}

	report.Mode = s.coordinator.CurrentMode()
	s.step++
	return report
}

// Run executes steps, pacing them with the tick interval.
// It stops early when ctx is cancelled and returns ctx's error.
func (s *Simulation) Run(ctx context.Context, steps int) (RunReport, error) {
	report := RunReport{Collected: make(map[logistics.ResourceKind]float64)}

	for i := 0; i < steps; i++ {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				report.FinalMode = s.coordinator.CurrentMode()
				return report, err
			}
		} else if err := ctx.Err(); err != nil {
			report.FinalMode = s.coordinator.CurrentMode()
			return report, err
		}

		before := s.cargoTotals()
		step := s.Step(ctx)
		after := s.cargoTotals()
		for kind, amount := range after {
			if delta := amount - before[kind]; delta > 0 {
				report.Collected[kind] += delta
			}
		}

		report.Steps++
		report.RecordFailures += step.RecordFailures
	}

	report.FinalMode = s.coordinator.CurrentMode()
	s.logger.Log(common.LevelInfo, "Simulation finished", map[string]interface{}{
		"steps":      report.Steps,
		"final_mode": report.FinalMode.String(),
	})
	return report, nil
}

// applyModeChange forwards a scripted transition to the coordinator. Every
// transition resumes the sites paused by the previous group operation; a
// group mode then pauses its own selection.
func (s *Simulation) applyModeChange(change ModeChange) {
	s.coordinator.OnModeChanged(change.Mode)

	for _, site := range s.paused {
		s.coordinator.PauseProduction(site, false)
	}
	s.paused = nil

	if !change.Mode.IsGroupOperation() {
		return
	}

	for _, name := range change.Sites {
		site, ok := s.siteByName[name]
		if !ok || s.isPaused(site) {
			continue
		}
		s.coordinator.PauseProduction(site, true)
		s.paused = append(s.paused, site)
	}
}

func (s *Simulation) isPaused(site *logistics.ProductionSite) bool {
	for _, p := range s.paused {
		if p == site {
			return true
		}
	}
	return false
}

func (s *Simulation) cargoTotals() map[logistics.ResourceKind]float64 {
	totals := make(map[logistics.ResourceKind]float64)
	for _, collector := range s.collectors {
		for kind, amount := range collector.Cargo() {
			totals[kind] += amount
		}
	}
	return totals
}

var _ construction.SiteLookup = (*Simulation)(nil)
