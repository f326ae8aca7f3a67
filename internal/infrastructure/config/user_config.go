package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.taxgame/preferences.json.
// Game progress lives in the save slot, not here.
type UserConfig struct {
	// Team picked when start or play is run without one
	DefaultTeam string `json:"default_team,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for the file in the user's home directory
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".taxgame"))
}

// NewUserConfigHandlerAt creates a handler storing preferences.json under dir
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &UserConfigHandler{
		configPath: filepath.Join(dir, "preferences.json"),
	}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	// If file doesn't exist, return empty config
	if _, err := os.Stat(h.configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultTeam stores the team used when none is given
func (h *UserConfigHandler) SetDefaultTeam(team string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultTeam = team
	return h.Save(config)
}

// ClearDefaultTeam removes the default team setting
func (h *UserConfigHandler) ClearDefaultTeam() error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultTeam = ""
	return h.Save(config)
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
