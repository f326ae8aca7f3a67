package shared

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a GameError so callers can branch without string matching
type ErrorCode string

const (
	CodeInvalidTeam            ErrorCode = "INVALID_TEAM"
	CodeDataNotLoaded          ErrorCode = "DATA_NOT_LOADED"
	CodeNoActiveScenario       ErrorCode = "NO_ACTIVE_SCENARIO"
	CodeInvalidChoice          ErrorCode = "INVALID_CHOICE"
	CodePersistenceUnavailable ErrorCode = "PERSISTENCE_UNAVAILABLE"
	CodeNoActiveGame           ErrorCode = "NO_ACTIVE_GAME"
	CodeInvalidSave            ErrorCode = "INVALID_SAVE"
)

// Sentinels for errors.Is. Matching compares codes only.
var (
	ErrInvalidTeam            = &GameError{Code: CodeInvalidTeam, Message: "invalid team"}
	ErrDataNotLoaded          = &GameError{Code: CodeDataNotLoaded, Message: "game data not loaded"}
	ErrNoActiveScenario       = &GameError{Code: CodeNoActiveScenario, Message: "no active scenario"}
	ErrInvalidChoice          = &GameError{Code: CodeInvalidChoice, Message: "invalid choice"}
	ErrPersistenceUnavailable = &GameError{Code: CodePersistenceUnavailable, Message: "persistence unavailable"}
	ErrNoActiveGame           = &GameError{Code: CodeNoActiveGame, Message: "no active game"}
	ErrInvalidSave            = &GameError{Code: CodeInvalidSave, Message: "invalid saved game"}
)

// GameError is returned by every engine and persistence operation that can fail.
// None of them are fatal: the caller reports the error and keeps the previous state.
type GameError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *GameError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GameError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a GameError with the same code
func (e *GameError) Is(target error) bool {
	var other *GameError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

func NewInvalidTeamError(teamID string) *GameError {
	return &GameError{Code: CodeInvalidTeam, Message: fmt.Sprintf("invalid team: %q", teamID)}
}

func NewDataNotLoadedError(message string) *GameError {
	return &GameError{Code: CodeDataNotLoaded, Message: fmt.Sprintf("game data not loaded: %s", message)}
}

func NewNoActiveScenarioError(message string) *GameError {
	return &GameError{Code: CodeNoActiveScenario, Message: fmt.Sprintf("no active scenario: %s", message)}
}

func NewInvalidChoiceError(choiceID, scenarioID string) *GameError {
	return &GameError{
		Code:    CodeInvalidChoice,
		Message: fmt.Sprintf("invalid choice %q for scenario %q", choiceID, scenarioID),
	}
}

func NewPersistenceUnavailableError(operation string, cause error) *GameError {
	return &GameError{
		Code:    CodePersistenceUnavailable,
		Message: fmt.Sprintf("persistence unavailable during %s", operation),
		Cause:   cause,
	}
}

func NewNoActiveGameError() *GameError {
	return &GameError{Code: CodeNoActiveGame, Message: "no active game: start a game first"}
}

func NewInvalidSaveError(reason string) *GameError {
	return &GameError{Code: CodeInvalidSave, Message: fmt.Sprintf("invalid saved game: %s", reason)}
}

// ValidationError names the content field or query filter that failed a check
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
