// Package domain holds the core types for build resolution and dispatch.
package domain

// BuildConfiguration is the resolved, validated intent of one build
// invocation. The resolver either produces a fully valid configuration or
// fails; nothing partially resolved ever reaches the dispatcher.
type BuildConfiguration struct {
	Target         Target
	OutputPath     string
	Debug          bool
	AppendExisting bool
}

// Project describes the engine project forge operates on, as loaded from
// forge.yaml.
type Project struct {
	// EditorBinary is the path to the engine editor executable.
	EditorBinary string
	// ProjectPath is the root of the engine project. Relative manifest and
	// settings paths are resolved against it.
	ProjectPath string
	// SceneManifest is the path to the scene list manifest.
	SceneManifest string
	// SettingsFile is the path to the persisted backend settings file.
	SettingsFile string
	// ExtraArgs are engine-specific switches appended to every backend
	// invocation.
	ExtraArgs []string
}
