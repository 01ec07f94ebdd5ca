// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"github.com/ersonp/timetable-sync/internal/infrastructure/config"
)

// InitHandler handles project initialization.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath    string
	BaseURL       string
	StorageDriver string
}

// Handle writes a default config into basePath.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("ttsync already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath:    config.ConfigFilePath(basePath),
		BaseURL:       cfg.API.BaseURL,
		StorageDriver: cfg.Storage.Driver,
	}, nil
}
