// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/buildforge/forge/internal/adapters/config"
	_ "github.com/buildforge/forge/internal/adapters/editor"
	_ "github.com/buildforge/forge/internal/adapters/logger"
	_ "github.com/buildforge/forge/internal/adapters/scenes"
	_ "github.com/buildforge/forge/internal/adapters/settings"
	_ "github.com/buildforge/forge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/buildforge/forge/internal/app"
	_ "github.com/buildforge/forge/internal/engine/dispatch"
)
