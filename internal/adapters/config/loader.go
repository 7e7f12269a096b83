// Package config provides the forge.yaml project configuration loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/buildforge/forge/internal/core/domain"
)

// DefaultFilename is the configuration file forge looks for in the working
// directory.
const DefaultFilename = "forge.yaml"

const (
	defaultProjectPath   = "."
	defaultSceneManifest = "scenes.yaml"
	defaultSettingsFile  = "ProjectSettings/forge_settings.json"
)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct {
	Filename string
}

// NewLoader creates a FileLoader for the default configuration file.
func NewLoader() *FileLoader {
	return &FileLoader{Filename: DefaultFilename}
}

// forgefile represents the structure of the forge.yaml configuration file.
type forgefile struct {
	Version  string    `yaml:"version"`
	Editor   editorDTO `yaml:"editor"`
	Scenes   string    `yaml:"scenes"`
	Settings string    `yaml:"settings"`
}

// editorDTO represents the editor section of the configuration.
type editorDTO struct {
	Binary      string   `yaml:"binary"`
	ProjectPath string   `yaml:"projectPath"`
	ExtraArgs   []string `yaml:"extraArgs"`
}

// Load reads the project configuration from the given working directory.
func (l *FileLoader) Load(cwd string) (*domain.Project, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project config")
	}

	var f forgefile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project config")
	}

	if f.Editor.Binary == "" {
		return nil, zerr.With(zerr.New("missing required config field"), "field", "editor.binary")
	}

	project := &domain.Project{
		EditorBinary:  f.Editor.Binary,
		ProjectPath:   f.Editor.ProjectPath,
		SceneManifest: f.Scenes,
		SettingsFile:  f.Settings,
		ExtraArgs:     f.Editor.ExtraArgs,
	}
	if project.ProjectPath == "" {
		project.ProjectPath = defaultProjectPath
	}
	if project.SceneManifest == "" {
		project.SceneManifest = defaultSceneManifest
	}
	if project.SettingsFile == "" {
		project.SettingsFile = defaultSettingsFile
	}

	return project, nil
}
