package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/application/construction/commands"
	"github.com/andrescamacho/settlement-go/internal/application/construction/queries"
	"github.com/andrescamacho/settlement-go/internal/application/setup"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

func TestHandlerRegistry_NewMediator(t *testing.T) {
	coordinator := constructionApp.NewModeCoordinator(constructionApp.Collaborators{}, nil)
	registry := setup.NewHandlerRegistry(coordinator, nil)

	var seen []string
	recorder := func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		seen = append(seen, "request")
		return next(ctx, request)
	}

	m, err := registry.NewMediator(recorder)
	require.NoError(t, err)

	_, err = m.Send(context.Background(), &commands.ChangeModeCommand{Mode: "copying"})
	require.NoError(t, err)

	resp, err := m.Send(context.Background(), &queries.GetModeQuery{})
	require.NoError(t, err)
	assert.Equal(t, construction.BuildModeCopying, resp.(*queries.GetModeResponse).Mode)

	resp, err = m.Send(context.Background(), &commands.PauseProductionCommand{SiteID: "farm", Pause: true})
	require.NoError(t, err)
	assert.False(t, resp.(*commands.PauseProductionResponse).SiteFound)

	assert.Len(t, seen, 3)
}

func TestHandlerRegistry_RegisterTwiceFails(t *testing.T) {
	coordinator := constructionApp.NewModeCoordinator(constructionApp.Collaborators{}, nil)
	registry := setup.NewHandlerRegistry(coordinator, nil)
	m := common.NewMediator()

	require.NoError(t, registry.RegisterConstructionHandlers(m))
	assert.Error(t, registry.RegisterConstructionHandlers(m))
}
