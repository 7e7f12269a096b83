package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/buildforge/forge/internal/adapters/logger"
	"github.com/buildforge/forge/internal/adapters/telemetry"
	"github.com/buildforge/forge/internal/app"
	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports/mocks"
	"github.com/buildforge/forge/internal/engine/dispatch"
)

func testProvider(t *testing.T, setup func(backend *mocks.MockBackend, scenes *mocks.MockSceneEnumerator)) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	backend := mocks.NewMockBackend(ctrl)
	settings := mocks.NewMockSettingsStore(ctrl)
	scenes := mocks.NewMockSceneEnumerator(ctrl)
	log := logger.New()
	log.SetOutput(&bytes.Buffer{})

	if setup != nil {
		setup(backend, scenes)
	}

	dispatcher := dispatch.NewDispatcher(backend, settings, log)
	a := app.New(scenes, dispatcher, telemetry.Noop{})

	return func(context.Context) (*app.Components, error) {
		return &app.Components{
			App:       a,
			Logger:    log,
			Telemetry: telemetry.Noop{},
		}, nil
	}
}

func TestRun_Version(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"version"}, stderr, testProvider(t, nil))
	assert.Equal(t, 0, code)
}

func TestRun_BuildSuccess(t *testing.T) {
	provider := testProvider(t, func(backend *mocks.MockBackend, scenes *mocks.MockSceneEnumerator) {
		scenes.EXPECT().Scenes(gomock.Any()).Return(nil, nil)
		backend.EXPECT().
			Build(gomock.Any(), gomock.Any(), "dist/game", domain.TargetLinuxDesktop, domain.BuildOptions{}).
			Return("", nil)
	})

	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"build", "-target", "linuxdesktop", "-output", "dist/game"}, stderr, provider)
	assert.Equal(t, 0, code)
}

func TestRun_BuildFailureExitsNonZero(t *testing.T) {
	provider := testProvider(t, func(backend *mocks.MockBackend, scenes *mocks.MockSceneEnumerator) {
		scenes.EXPECT().Scenes(gomock.Any()).Return(nil, nil)
		backend.EXPECT().
			Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("disk full", nil)
	})

	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"build", "-target", "android", "-output", "out.apk"}, stderr, provider)
	assert.Equal(t, 1, code)
}

func TestRun_ResolutionFailureExitsNonZero(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"build", "-output", "out.apk"}, stderr, testProvider(t, nil))
	assert.Equal(t, 1, code)
}

func TestRun_BareBuildExitsNonZero(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"build"}, stderr, testProvider(t, nil))
	assert.Equal(t, 1, code)
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := &bytes.Buffer{}
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("failed to read project config")
	}

	code := run(context.Background(), nil, stderr, provider)
	require.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to read project config")
}
