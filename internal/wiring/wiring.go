// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nexon/internal/adapters/config"
	_ "go.trai.ch/nexon/internal/adapters/logger"
	_ "go.trai.ch/nexon/internal/adapters/repository"
	_ "go.trai.ch/nexon/internal/adapters/shell"
	_ "go.trai.ch/nexon/internal/adapters/store"
	_ "go.trai.ch/nexon/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/nexon/internal/app"
	_ "go.trai.ch/nexon/internal/engine/builder"
	_ "go.trai.ch/nexon/internal/engine/envvars"
	_ "go.trai.ch/nexon/internal/engine/hooks"
	_ "go.trai.ch/nexon/internal/engine/layers"
	_ "go.trai.ch/nexon/internal/engine/registry"
	_ "go.trai.ch/nexon/internal/engine/resolver"
)
