package ports

import "context"

// SceneEnumerator supplies the ordered list of build inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=scenes.go -destination=mocks/mock_scenes.go -package=mocks
type SceneEnumerator interface {
	// Scenes returns the scene paths that are enabled and exist on disk, in
	// manifest order. The dispatcher trusts this list as-is.
	Scenes(ctx context.Context) ([]string, error)
}
