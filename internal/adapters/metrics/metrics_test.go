package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/metrics"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
)

type pingCommand struct{}

func setup(t *testing.T) *metrics.Collectors {
	t.Helper()
	collectors, err := metrics.Setup()
	require.NoError(t, err)
	t.Cleanup(metrics.Reset)
	return collectors
}

func TestRecordFunctions_NoopWhenDisabled(t *testing.T) {
	metrics.Reset()

	assert.False(t, metrics.IsEnabled())
	assert.NotPanics(t, func() {
		metrics.RecordGameStarted("spurs")
		metrics.RecordChoice("spurs", "star", 133_000_000, 0)
		metrics.RecordEnding("spurs", "savvy_gm", "B", 47)
	})
	assert.NoError(t, metrics.WriteToTextfile(filepath.Join(t.TempDir(), "taxgame.prom")))
}

func TestGameMetrics(t *testing.T) {
	setup(t)

	metrics.RecordGameStarted("spurs")
	metrics.RecordGameStarted("spurs")
	metrics.RecordChoice("spurs", "star", 133_000_000, 0)
	metrics.RecordChoice("spurs", "depth", 137_000_000, 1_500_000)
	metrics.RecordEnding("spurs", "championship_run", "A", 50)

	expected := `
# HELP taxgame_game_games_started_total Games started per team
# TYPE taxgame_game_games_started_total counter
taxgame_game_games_started_total{team="spurs"} 2
# HELP taxgame_game_luxury_tax_dollars Luxury tax owed after the latest choice
# TYPE taxgame_game_luxury_tax_dollars gauge
taxgame_game_luxury_tax_dollars{team="spurs"} 1.5e+06
# HELP taxgame_game_endings_total Finished seasons per team and ending
# TYPE taxgame_game_endings_total counter
taxgame_game_endings_total{ending="championship_run",team="spurs"} 1
`
	err := testutil.GatherAndCompare(metrics.GetRegistry(), strings.NewReader(expected),
		"taxgame_game_games_started_total",
		"taxgame_game_luxury_tax_dollars",
		"taxgame_game_endings_total",
	)
	assert.NoError(t, err)
}

func TestPrometheusMiddleware(t *testing.T) {
	// Arrange
	collectors := setup(t)
	mw := metrics.PrometheusMiddleware(collectors.Commands)
	ok := func(ctx context.Context, request mediator.Request) (mediator.Response, error) { return "pong", nil }
	fail := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	}

	// Act
	resp, err := mw(context.Background(), &pingCommand{}, ok)
	require.NoError(t, err)
	_, err = mw(context.Background(), &pingCommand{}, fail)

	// Assert
	assert.Equal(t, "pong", resp)
	assert.EqualError(t, err, "boom")

	expected := `
# HELP taxgame_mediator_requests_total Total number of commands and queries by type and status
# TYPE taxgame_mediator_requests_total counter
taxgame_mediator_requests_total{request="pingCommand",status="error"} 1
taxgame_mediator_requests_total{request="pingCommand",status="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.GetRegistry(), strings.NewReader(expected), "taxgame_mediator_requests_total"))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)

	resp, err := mw(context.Background(), &pingCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestWriteToTextfile(t *testing.T) {
	setup(t)
	metrics.RecordGameStarted("bucks")
	path := filepath.Join(t.TempDir(), "taxgame.prom")

	require.NoError(t, metrics.WriteToTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `taxgame_game_games_started_total{team="bucks"} 1`)
}
