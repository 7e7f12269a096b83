// Package dispatch converts a build configuration into backend options and
// drives one backend invocation.
package dispatch

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

// Dispatcher owns the translation from a BuildConfiguration to one backend
// call, including the scoped override of the backend's global stripping
// level for debug builds.
type Dispatcher struct {
	backend  ports.Backend
	settings ports.SettingsStore
	logger   ports.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(backend ports.Backend, settings ports.SettingsStore, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		backend:  backend,
		settings: settings,
		logger:   logger,
	}
}

// Compose translates a configuration into the backend option set.
//
// Folder-producing targets always symlink supporting libraries, and accept
// external modifications only when the operator asked to append to an
// existing output folder. Debug maps to the development option.
func Compose(cfg domain.BuildConfiguration) domain.BuildOptions {
	opts := domain.BuildOptions{
		Development: cfg.Debug,
	}
	if cfg.Target.FolderProducing() {
		opts.SymlinkLibraries = true
		opts.AcceptExternalModifications = cfg.AppendExisting
	}
	return opts
}

// Dispatch runs exactly one build for cfg with the given trusted input list.
//
// For debug builds the stripping level is disabled for the duration of the
// call and restored on every exit path. A non-empty backend error text is
// surfaced as ErrBuildFailed carrying that text; there is no retry and no
// partial-success state.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg domain.BuildConfiguration, inputs []string) error {
	opts := Compose(cfg)

	if cfg.Debug {
		previous, err := d.settings.StrippingLevel()
		if err != nil {
			return zerr.Wrap(err, "failed to read stripping level")
		}
		if err := d.settings.SetStrippingLevel(domain.StrippingDisabled); err != nil {
			return zerr.Wrap(err, "failed to disable stripping")
		}
		defer func() {
			// The build outcome must not be masked by a restore failure.
			if rerr := d.settings.SetStrippingLevel(previous); rerr != nil {
				d.logger.Error(zerr.Wrap(rerr, "failed to restore stripping level"))
			}
		}()
	}

	d.logger.Info(fmt.Sprintf("building target %s to %s", cfg.Target, cfg.OutputPath))

	message, err := d.backend.Build(ctx, inputs, cfg.OutputPath, cfg.Target, opts)
	if err != nil {
		return zerr.Wrap(err, "backend invocation failed")
	}
	if message != "" {
		// The backend's text is the message so headless logs show it
		// verbatim; the sentinel stays matchable via errors.Is.
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, message), "backend_error", message)
	}

	return nil
}
