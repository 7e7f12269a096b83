package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildforge/forge/internal/core/domain"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(msg string) { l.lines = append(l.lines, msg) }
func (l *recordingLogger) Warn(string)     {}
func (l *recordingLogger) Error(error)     {}

func fakeEditor(t *testing.T, script string) *domain.Project {
	t.Helper()
	dir := t.TempDir()
	binary := filepath.Join(dir, "editor.sh")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"+script), 0o755))
	return &domain.Project{
		EditorBinary: binary,
		ProjectPath:  dir,
	}
}

func TestBuild_Success(t *testing.T) {
	log := &recordingLogger{}
	project := fakeEditor(t, "echo compiling\necho packaging\nexit 0\n")

	b := NewBackend(project, log)
	message, err := b.Build(context.Background(), nil, "out", domain.TargetWindowsDesktop, domain.BuildOptions{})
	require.NoError(t, err)
	assert.Empty(t, message)
	assert.Contains(t, log.lines, "compiling")
	assert.Contains(t, log.lines, "packaging")
}

func TestBuild_FailureReturnsStderrText(t *testing.T) {
	log := &recordingLogger{}
	project := fakeEditor(t, "echo 'disk full' >&2\nexit 1\n")

	b := NewBackend(project, log)
	message, err := b.Build(context.Background(), nil, "out", domain.TargetAndroid, domain.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "disk full", message)
}

func TestBuild_FailureWithoutStderrFallsBackToExitError(t *testing.T) {
	log := &recordingLogger{}
	project := fakeEditor(t, "exit 3\n")

	b := NewBackend(project, log)
	message, err := b.Build(context.Background(), nil, "out", domain.TargetAndroid, domain.BuildOptions{})
	require.NoError(t, err)
	assert.Contains(t, message, "exit status 3")
}

func TestBuild_MissingBinaryIsInvocationError(t *testing.T) {
	log := &recordingLogger{}
	project := &domain.Project{
		EditorBinary: filepath.Join(t.TempDir(), "does-not-exist"),
		ProjectPath:  ".",
	}

	b := NewBackend(project, log)
	_, err := b.Build(context.Background(), nil, "out", domain.TargetAndroid, domain.BuildOptions{})
	require.Error(t, err)
}

func TestComposeArgs(t *testing.T) {
	project := &domain.Project{
		EditorBinary: "editor",
		ProjectPath:  ".",
		ExtraArgs:    []string{"-logFile", "-"},
	}
	b := NewBackend(project, &recordingLogger{})

	args := b.composeArgs(
		[]string{"Assets/Main.scene", "Assets/Menu.scene"},
		"build/ios",
		domain.TargetIOS,
		domain.BuildOptions{
			Development:                 true,
			SymlinkLibraries:            true,
			AcceptExternalModifications: true,
		},
	)

	assert.Equal(t, []string{
		"-batchmode", "-nographics", "-quit",
		"-buildTarget", "ios",
		"-output", "build/ios",
		"-development",
		"-symlinkLibraries",
		"-acceptExternalModifications",
		"-logFile", "-",
		"-scene", "Assets/Main.scene",
		"-scene", "Assets/Menu.scene",
	}, args)
}

func TestComposeArgs_ReleaseOmitsOptionalFlags(t *testing.T) {
	b := NewBackend(&domain.Project{EditorBinary: "editor", ProjectPath: "."}, &recordingLogger{})

	args := b.composeArgs(nil, "out.exe", domain.TargetWindowsDesktop, domain.BuildOptions{})

	assert.NotContains(t, args, "-development")
	assert.NotContains(t, args, "-symlinkLibraries")
	assert.NotContains(t, args, "-acceptExternalModifications")
}
