package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/content"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/metrics"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/persistence"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/setup"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/config"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/database"
	infraLogging "github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/logging"
)

// App is one composed game session: content, engine, storage and the mediator
// every command goes through
type App struct {
	cfg      *config.Config
	db       *gorm.DB
	engine   *game.Engine
	mediator mediator.Mediator
	logger   *slog.Logger
	closers  []io.Closer

	// saveWarned is set once the player has been told progress is not being saved
	saveWarned bool
}

// NewApp wires a session from configuration. Close must be called when done.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	logger, logCloser, err := infraLogging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	app.logger = logger
	app.closers = append(app.closers, logCloser)

	catalog, err := loadCatalog(cfg.Game)
	if err != nil {
		app.Close()
		return nil, err
	}

	calc, err := tax.NewCalculator(cfg.Game.SalaryCap, tax.DefaultBrackets())
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("invalid tax configuration: %w", err)
	}

	rules := game.Rules{
		BudgetLimit: cfg.Game.BudgetLimit,
		PlayoffWins: cfg.Game.PlayoffWins,
		TotalRounds: cfg.Game.TotalRounds,
	}
	if err := rules.Validate(); err != nil {
		app.Close()
		return nil, fmt.Errorf("invalid game rules: %w", err)
	}

	var (
		saves    game.SaveSlotRepository
		settings game.SettingsRepository
	)
	if db, err := openDatabase(&cfg.Database); err != nil {
		logger.Warn("playing without saves", "error", err)
	} else {
		app.db = db
		saves = persistence.NewGormSaveSlotRepository(db)
		settings = persistence.NewGormSettingsRepository(db)
	}

	app.engine = game.NewEngine(catalog, calc, rules)

	middlewares := []mediator.Middleware{
		logging.RequestLoggingMiddleware(infraLogging.NewSlogAdapter(logger)),
	}
	if cfg.Metrics.Enabled {
		collectors, err := metrics.Setup()
		if err != nil {
			app.Close()
			return nil, err
		}
		middlewares = append(middlewares, metrics.PrometheusMiddleware(collectors.Commands))
	}

	registry := setup.NewHandlerRegistry(
		app.engine,
		saves,
		settings,
		nil,
		cfg.Game.SaveSlot,
	)
	m, err := registry.CreateConfiguredMediator(middlewares...)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to configure mediator: %w", err)
	}
	app.mediator = m

	return app, nil
}

// openDatabase connects and migrates. Any failure leaves the session without storage.
func openDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func loadCatalog(cfg config.GameConfig) (*roster.Catalog, error) {
	if cfg.ContentDir != "" {
		return content.LoadDir(cfg.ContentDir)
	}
	return content.LoadEmbedded()
}

// Engine exposes the session engine
func (a *App) Engine() *game.Engine {
	return a.engine
}

// Context returns ctx carrying the session logger for handlers
func (a *App) Context(ctx context.Context) context.Context {
	return common.WithLogger(ctx, infraLogging.NewSlogAdapter(a.logger))
}

// Send dispatches a request through the mediator
func (a *App) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return a.mediator.Send(a.Context(ctx), request)
}

// Autoload restores the saved game, if any. An empty or unreadable slot leaves
// the engine without a game.
func (a *App) Autoload(ctx context.Context) error {
	_, err := a.Send(ctx, &gameCommands.LoadGameCommand{})
	return err
}

// Autosave writes the current game to the slot when one is active and reports
// whether it did. Unavailable storage is not an error: the game goes on, the
// first failure is shown on w and later ones are only logged.
func (a *App) Autosave(ctx context.Context, w io.Writer) (bool, error) {
	if !a.engine.HasActiveGame() {
		return false, nil
	}
	_, err := a.Send(ctx, &gameCommands.SaveGameCommand{})
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, shared.ErrPersistenceUnavailable) {
		return false, err
	}

	a.logger.Warn("autosave failed", "error", err)
	if !a.saveWarned {
		a.saveWarned = true
		fmt.Fprintln(w, warnStyle.Render("Progress is not being saved: "+err.Error()))
	}
	return false, nil
}

// Close exports metrics and releases the database and log file
func (a *App) Close() error {
	var errs []error
	if a.cfg.Metrics.Enabled {
		if err := metrics.WriteToTextfile(a.cfg.Metrics.TextfilePath); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		a.db = nil
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
