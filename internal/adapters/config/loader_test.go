package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildforge/forge/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
version: "1"
editor:
  binary: /opt/editor/editor
  projectPath: game
  extraArgs: ["-nographics"]
scenes: config/scenes.yaml
settings: config/settings.json
`)

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/editor/editor", project.EditorBinary)
	assert.Equal(t, "game", project.ProjectPath)
	assert.Equal(t, "config/scenes.yaml", project.SceneManifest)
	assert.Equal(t, "config/settings.json", project.SettingsFile)
	assert.Equal(t, []string{"-nographics"}, project.ExtraArgs)
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, `
editor:
  binary: /opt/editor/editor
`)

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ".", project.ProjectPath)
	assert.Equal(t, "scenes.yaml", project.SceneManifest)
	assert.Equal(t, "ProjectSettings/forge_settings.json", project.SettingsFile)
	assert.Empty(t, project.ExtraArgs)
}

func TestLoad_MissingBinary(t *testing.T) {
	dir := writeConfig(t, `
editor:
  projectPath: game
`)

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config field")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "editor: [not: a: mapping")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
}
