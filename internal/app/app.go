// Package app implements the application layer for forge.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/core/ports"
	"github.com/buildforge/forge/internal/engine/dispatch"
	"github.com/buildforge/forge/internal/engine/resolver"
)

// App represents the main application logic: one invocation resolves one
// configuration and performs one build.
type App struct {
	scenes     ports.SceneEnumerator
	dispatcher *dispatch.Dispatcher
	telemetry  ports.Telemetry
}

// New creates a new App instance.
func New(scenes ports.SceneEnumerator, dispatcher *dispatch.Dispatcher, telemetry ports.Telemetry) *App {
	return &App{
		scenes:     scenes,
		dispatcher: dispatcher,
		telemetry:  telemetry,
	}
}

// Run resolves the raw tokens into a build configuration and dispatches
// exactly one build.
func (a *App) Run(ctx context.Context, tokens []string) error {
	cfg, err := resolver.Resolve(tokens)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve build arguments")
	}

	inputs, err := a.scenes.Scenes(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate scenes")
	}

	ctx, vtx := a.telemetry.Record(ctx, "build "+cfg.Target.String())
	err = a.dispatcher.Dispatch(ctx, cfg, inputs)
	vtx.Complete(err)
	return err
}
