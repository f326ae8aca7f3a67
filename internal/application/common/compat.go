package common

// Re-exports so handlers can depend on a single application package.

import (
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
)

// Mediator types
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

// Logging types
type Logger = logging.Logger

// Mediator functions
var (
	NewMediator = mediator.NewMediator
)

// Logging functions
var (
	WithLogger        = logging.WithLogger
	LoggerFromContext = logging.LoggerFromContext
)
