// Package editor runs the engine editor headless as the build backend.
package editor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

// Backend implements ports.Backend by invoking the editor binary in batch
// mode via os/exec.
type Backend struct {
	project *domain.Project
	logger  ports.Logger
}

// NewBackend creates a new editor Backend for the given project.
func NewBackend(project *domain.Project, logger ports.Logger) *Backend {
	return &Backend{
		project: project,
		logger:  logger,
	}
}

// Build runs one player build and blocks until the editor exits.
//
// The editor's stdout is streamed line by line to the logger. On a non-zero
// exit the trimmed stderr is returned as the backend's error text; an error
// is returned only when the editor could not be invoked at all.
func (b *Backend) Build(ctx context.Context, inputs []string, outputPath string, target domain.Target, opts domain.BuildOptions) (string, error) {
	args := b.composeArgs(inputs, outputPath, target, opts)

	cmd := exec.CommandContext(ctx, b.project.EditorBinary, args...) //nolint:gosec // binary comes from the project config
	cmd.Dir = b.project.ProjectPath

	var stderr bytes.Buffer
	cmd.Stdout = &logWriter{logger: b.logger}
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The editor ran and reported failure; its stderr is the
			// authoritative error text.
			message := strings.TrimSpace(stderr.String())
			if message == "" {
				message = err.Error()
			}
			return message, nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to invoke editor"), "binary", b.project.EditorBinary)
	}

	return "", nil
}

func (b *Backend) composeArgs(inputs []string, outputPath string, target domain.Target, opts domain.BuildOptions) []string {
	args := []string{
		"-batchmode",
		"-nographics",
		"-quit",
		"-buildTarget", target.String(),
		"-output", outputPath,
	}
	if opts.Development {
		args = append(args, "-development")
	}
	if opts.SymlinkLibraries {
		args = append(args, "-symlinkLibraries")
	}
	if opts.AcceptExternalModifications {
		args = append(args, "-acceptExternalModifications")
	}
	args = append(args, b.project.ExtraArgs...)
	for _, scene := range inputs {
		args = append(args, "-scene", scene)
	}
	return args
}

// logWriter streams the editor's stdout to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		w.logger.Info(line)
	}
	return len(p), nil
}
