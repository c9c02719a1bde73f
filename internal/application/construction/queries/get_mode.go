package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// GetModeQuery reads the coordinator state
type GetModeQuery struct{}

// GetModeResponse is the coordinator state snapshot
type GetModeResponse struct {
	Mode        construction.BuildMode
	GridVisible bool
	GridKnown   bool
}

// GetModeHandler answers GetModeQuery
type GetModeHandler struct {
	coordinator *constructionApp.ModeCoordinator
}

// NewGetModeHandler creates a new GetModeHandler
func NewGetModeHandler(coordinator *constructionApp.ModeCoordinator) *GetModeHandler {
	return &GetModeHandler{coordinator: coordinator}
}

// Handle executes the query
func (h *GetModeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetModeQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetModeQuery")
	}

	visible, known := h.coordinator.GridVisible()
	return &GetModeResponse{
		Mode:        h.coordinator.CurrentMode(),
		GridVisible: visible,
		GridKnown:   known,
	}, nil
}
