package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
	"github.com/braydenokley13-ux/T101-M1-L2/test/helpers"
)

func TestLoggerFromContext_FallsBackToNoOp(t *testing.T) {
	logger := logging.LoggerFromContext(context.Background())

	require.NotNil(t, logger)
	logger.Log(logging.LevelInfo, "ignored", nil)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	// Arrange
	logger := helpers.NewMockLogger()
	mw := logging.RequestLoggingMiddleware(logger)

	var seen logging.Logger
	next := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		seen = logging.LoggerFromContext(ctx)
		return nil, errors.New("boom")
	}

	// Act
	_, err := mw(context.Background(), &struct{}{}, next)

	// Assert
	assert.EqualError(t, err, "boom")
	assert.Same(t, logger, seen)
	require.Len(t, logger.Entries(), 1)
	entry := logger.Entries()[0]
	assert.Equal(t, logging.LevelWarn, entry.Level)
	assert.Equal(t, "boom", entry.Metadata["error"])
}
