package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// ChangeModeCommand reports a user-driven build mode transition
type ChangeModeCommand struct {
	Mode string
}

// ChangeModeResponse carries the coordinator state after the transition
type ChangeModeResponse struct {
	Mode        construction.BuildMode
	GridVisible bool
}

// ChangeModeHandler forwards mode transitions to the coordinator
type ChangeModeHandler struct {
	coordinator *constructionApp.ModeCoordinator
}

// NewChangeModeHandler creates a new ChangeModeHandler
func NewChangeModeHandler(coordinator *constructionApp.ModeCoordinator) *ChangeModeHandler {
	return &ChangeModeHandler{coordinator: coordinator}
}

// Handle executes the ChangeMode command.
// Only an unparseable mode name is an error; the transition itself never fails.
func (h *ChangeModeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ChangeModeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ChangeModeCommand")
	}

	mode, err := construction.ParseBuildMode(cmd.Mode)
	if err != nil {
		return nil, err
	}

	h.coordinator.OnModeChanged(mode)

	visible, _ := h.coordinator.GridVisible()
	return &ChangeModeResponse{Mode: h.coordinator.CurrentMode(), GridVisible: visible}, nil
}
