package setup

import (
	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	constructionCommands "github.com/andrescamacho/settlement-go/internal/application/construction/commands"
	constructionQueries "github.com/andrescamacho/settlement-go/internal/application/construction/queries"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// HandlerRegistry holds the dependencies needed to build mediator handlers
type HandlerRegistry struct {
	coordinator *constructionApp.ModeCoordinator
	sites       construction.SiteLookup
}

// NewHandlerRegistry creates a new handler registry. sites may be nil, in
// which case every PauseProductionCommand reports an unknown site.
func NewHandlerRegistry(coordinator *constructionApp.ModeCoordinator, sites construction.SiteLookup) *HandlerRegistry {
	return &HandlerRegistry{
		coordinator: coordinator,
		sites:       sites,
	}
}

// RegisterConstructionHandlers registers all construction command and query handlers with the mediator
//
// This method registers:
//   - ChangeModeCommand → ChangeModeHandler
//   - CancelAllCommand → CancelAllHandler
//   - PauseProductionCommand → PauseProductionHandler
//   - GetModeQuery → GetModeHandler
func (r *HandlerRegistry) RegisterConstructionHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*constructionCommands.ChangeModeCommand](m,
		constructionCommands.NewChangeModeHandler(r.coordinator)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*constructionCommands.CancelAllCommand](m,
		constructionCommands.NewCancelAllHandler(r.coordinator)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*constructionCommands.PauseProductionCommand](m,
		constructionCommands.NewPauseProductionHandler(r.coordinator, r.sites)); err != nil {
		return err
	}

	return common.RegisterHandler[*constructionQueries.GetModeQuery](m,
		constructionQueries.NewGetModeHandler(r.coordinator))
}

// NewMediator builds a mediator with the given middlewares and every handler registered
func (r *HandlerRegistry) NewMediator(middlewares ...common.Middleware) (common.Mediator, error) {
	m := common.NewMediator()
	for _, mw := range middlewares {
		m.Use(mw)
	}

	if err := r.RegisterConstructionHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
