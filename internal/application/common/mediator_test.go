package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/application/common"
)

type pingCommand struct{ Value int }

type pingHandler struct{ calls int }

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	h.calls++
	cmd, ok := request.(*pingCommand)
	if !ok {
		return nil, errors.New("unexpected request")
	}
	return cmd.Value * 2, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	m := common.NewMediator()
	handler := &pingHandler{}
	require.NoError(t, common.RegisterHandler[*pingCommand](m, handler))

	resp, err := m.Send(context.Background(), &pingCommand{Value: 21})

	require.NoError(t, err)
	assert.Equal(t, 42, resp)
	assert.Equal(t, 1, handler.calls)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))

	assert.Error(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))

	_, err := m.Send(context.Background(), "not registered")
	assert.Error(t, err)

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))

	var order []string
	trace := func(name string) common.Middleware {
		return func(ctx context.Context, req common.Request, next common.HandlerFunc) (common.Response, error) {
			order = append(order, name+":before")
			resp, err := next(ctx, req)
			order = append(order, name+":after")
			return resp, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	_, err := m.Send(context.Background(), &pingCommand{Value: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
}

func TestLoggerFromContext_FallsBackToNoOp(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())
	require.NotNil(t, logger)
	logger.Log(common.LevelInfo, "ignored", nil)
}
