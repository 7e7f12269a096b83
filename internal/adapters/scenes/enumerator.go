// Package scenes enumerates the project's buildable scene list.
package scenes

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/buildforge/forge/internal/core/domain"
)

// statConcurrency bounds the parallel existence checks; scene lists can be
// large and live on network filesystems.
const statConcurrency = 8

// Enumerator implements ports.SceneEnumerator from a YAML scene manifest.
type Enumerator struct {
	projectPath  string
	manifestPath string
}

// NewEnumerator creates an Enumerator for the given project.
func NewEnumerator(project *domain.Project) *Enumerator {
	manifest := project.SceneManifest
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(project.ProjectPath, manifest)
	}
	return &Enumerator{
		projectPath:  project.ProjectPath,
		manifestPath: manifest,
	}
}

// manifest represents the structure of the scene manifest file.
type manifest struct {
	Scenes []sceneDTO `yaml:"scenes"`
}

// sceneDTO represents one scene entry in the manifest.
type sceneDTO struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// Scenes returns the enabled scenes that exist on disk, in manifest order.
// Paths are returned as written in the manifest; relative paths are checked
// against the project root.
func (e *Enumerator) Scenes(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(e.manifestPath) //nolint:gosec // path comes from the project config
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read scene manifest")
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse scene manifest")
	}

	enabled := make([]string, 0, len(m.Scenes))
	for _, s := range m.Scenes {
		if s.Enabled {
			enabled = append(enabled, s.Path)
		}
	}

	exists := make([]bool, len(enabled))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)
	for i, path := range enabled {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			exists[i] = e.exists(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "scene existence check aborted")
	}

	out := make([]string, 0, len(enabled))
	for i, path := range enabled {
		if exists[i] {
			out = append(out, path)
		}
	}
	return out, nil
}

func (e *Enumerator) exists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.projectPath, path)
	}
	_, err := os.Stat(path)
	return err == nil
}
