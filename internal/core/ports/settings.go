package ports

import "github.com/buildforge/forge/internal/core/domain"

// SettingsStore exposes the backend-global settings the dispatcher may
// temporarily override.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// StrippingLevel returns the current code-stripping level.
	StrippingLevel() (domain.StrippingLevel, error)
	// SetStrippingLevel persists a new code-stripping level.
	SetStrippingLevel(level domain.StrippingLevel) error
}
