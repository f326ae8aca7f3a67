package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
)

type pingCommand struct{ Value string }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(*pingCommand)
	if cmd.Value == "" {
		return nil, errors.New("empty ping")
	}
	return "pong:" + cmd.Value, nil
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	// Act
	resp, err := m.Send(context.Background(), &pingCommand{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestMediator_UnregisteredRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), &pingCommand{Value: "a"})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	err := mediator.RegisterHandler[*pingCommand](m, &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, request)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	m.RegisterMiddleware(trace("outer"))
	m.RegisterMiddleware(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingCommand{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "pingCommand", mediator.RequestName(&pingCommand{}))
	assert.Equal(t, "UnknownRequest", mediator.RequestName(nil))
}
