package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
)

// CancelAllCommand is the emergency abort: clear every transient build state
// without changing mode
type CancelAllCommand struct{}

// CancelAllHandler runs the cancellation protocol
type CancelAllHandler struct {
	coordinator *constructionApp.ModeCoordinator
}

// NewCancelAllHandler creates a new CancelAllHandler
func NewCancelAllHandler(coordinator *constructionApp.ModeCoordinator) *CancelAllHandler {
	return &CancelAllHandler{coordinator: coordinator}
}

// Handle executes the CancelAll command
func (h *CancelAllHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CancelAllCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *CancelAllCommand")
	}

	h.coordinator.CancelAll()
	return nil, nil
}
