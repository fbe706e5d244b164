package app

import (
	"go.trai.ch/nexon/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Settings  *config.Settings
	Store     ports.DocumentStore
	Telemetry ports.Telemetry
}

// Close releases the document store and flushes telemetry.
func (c *Components) Close() error {
	var err error
	if c.Telemetry != nil {
		err = c.Telemetry.Close()
	}
	if c.Store != nil {
		if cerr := c.Store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// SetJSONLogs switches the logger between text and JSON output when it supports it.
func (c *Components) SetJSONLogs(enabled bool) {
	if l, ok := c.Logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}
