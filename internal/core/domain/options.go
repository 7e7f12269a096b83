package domain

import "strings"

// BuildOptions is the backend-facing option set composed from a
// BuildConfiguration by the dispatcher.
type BuildOptions struct {
	// Development enables the backend's development/diagnostic build mode.
	Development bool
	// SymlinkLibraries makes folder-producing builds symlink supporting
	// libraries into the output folder instead of copying them.
	SymlinkLibraries bool
	// AcceptExternalModifications makes folder-producing builds reuse an
	// existing output folder without overwriting manual edits.
	AcceptExternalModifications bool
}

// StrippingLevel controls how aggressively the backend strips dead code and
// debug symbols during a build.
type StrippingLevel int

const (
	StrippingDisabled StrippingLevel = iota
	StrippingLow
	StrippingMedium
	StrippingHigh
)

var strippingNames = map[StrippingLevel]string{
	StrippingDisabled: "disabled",
	StrippingLow:      "low",
	StrippingMedium:   "medium",
	StrippingHigh:     "high",
}

var strippingByName = func() map[string]StrippingLevel {
	m := make(map[string]StrippingLevel, len(strippingNames))
	for l, name := range strippingNames {
		m[name] = l
	}
	return m
}()

// ParseStrippingLevel resolves a stripping level by case-insensitive name.
func ParseStrippingLevel(name string) (StrippingLevel, bool) {
	l, ok := strippingByName[strings.ToLower(name)]
	return l, ok
}

func (l StrippingLevel) String() string {
	if name, ok := strippingNames[l]; ok {
		return name
	}
	return "unknown"
}
