package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// PauseProductionCommand suspends or resumes output at one site,
// typically around a group move
type PauseProductionCommand struct {
	SiteID string
	Pause  bool
}

// PauseProductionResponse reports whether a site was found
type PauseProductionResponse struct {
	SiteFound bool
}

// PauseProductionHandler resolves the site and toggles its producer
type PauseProductionHandler struct {
	coordinator *constructionApp.ModeCoordinator
	sites       construction.SiteLookup
}

// NewPauseProductionHandler creates a new PauseProductionHandler
func NewPauseProductionHandler(
	coordinator *constructionApp.ModeCoordinator,
	sites construction.SiteLookup,
) *PauseProductionHandler {
	return &PauseProductionHandler{
		coordinator: coordinator,
		sites:       sites,
	}
}

// Handle executes the PauseProduction command. An unknown site is a no-op.
func (h *PauseProductionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PauseProductionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PauseProductionCommand")
	}

	var site construction.ProductionSite
	found := false
	if h.sites != nil {
		site, found = h.sites.FindSite(cmd.SiteID)
	}

	if !found {
		common.LoggerFromContext(ctx).Log(common.LevelDebug, "Pause requested for unknown site", map[string]interface{}{
			"site_id": cmd.SiteID,
		})
	}

	h.coordinator.PauseProduction(site, cmd.Pause)
	return &PauseProductionResponse{SiteFound: found}, nil
}
