// Package settings persists backend-global build settings.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/core/domain"
)

// defaultStrippingLevel applies when no settings file exists yet.
const defaultStrippingLevel = domain.StrippingLow

// Store implements ports.SettingsStore using a flat JSON file.
type Store struct {
	path   string
	mu     sync.RWMutex
	cached fileSettings
}

// fileSettings is the on-disk shape of the settings file.
type fileSettings struct {
	StrippingLevel string `json:"strippingLevel"`
}

// NewStore creates a SettingsStore backed by the project's settings file.
func NewStore(project *domain.Project) (*Store, error) {
	path := project.SettingsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(project.ProjectPath, path)
	}

	s := &Store{
		path:   filepath.Clean(path),
		cached: fileSettings{StrippingLevel: defaultStrippingLevel.String()},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read settings file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cached); err != nil {
		return zerr.Wrap(err, "failed to unmarshal settings file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cached, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal settings file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for settings file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write settings file")
	}

	return nil
}

// StrippingLevel returns the current code-stripping level.
func (s *Store) StrippingLevel() (domain.StrippingLevel, error) {
	s.mu.RLock()
	name := s.cached.StrippingLevel
	s.mu.RUnlock()

	level, ok := domain.ParseStrippingLevel(name)
	if !ok {
		return 0, zerr.With(zerr.New("invalid stripping level in settings file"), "value", name)
	}
	return level, nil
}

// SetStrippingLevel persists a new code-stripping level.
func (s *Store) SetStrippingLevel(level domain.StrippingLevel) error {
	s.mu.Lock()
	s.cached.StrippingLevel = level.String()
	s.mu.Unlock()

	return s.save()
}
