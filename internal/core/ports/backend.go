// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/buildforge/forge/internal/core/domain"
)

// Backend invokes the external build pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Build runs one player build for the given inputs, output path, target
	// and composed options.
	//
	// It returns the backend's error text, which is empty when the build
	// succeeded, or a non-nil error when the backend could not be invoked
	// at all.
	Build(ctx context.Context, inputs []string, outputPath string, target domain.Target, opts domain.BuildOptions) (string, error)
}
