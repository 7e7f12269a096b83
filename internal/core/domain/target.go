package domain

import "strings"

// Target identifies the platform a player build is produced for.
type Target int

const (
	// TargetActive is the sentinel for whatever platform the editor
	// currently has selected.
	TargetActive Target = iota
	TargetWindowsDesktop
	TargetMacOSDesktop
	TargetLinuxDesktop
	TargetAndroid
	TargetIOS
	TargetWebGL
)

// targetOrder fixes the listing order for operator-facing output.
var targetOrder = []Target{
	TargetActive,
	TargetWindowsDesktop,
	TargetMacOSDesktop,
	TargetLinuxDesktop,
	TargetAndroid,
	TargetIOS,
	TargetWebGL,
}

var targetNames = map[Target]string{
	TargetActive:         "active",
	TargetWindowsDesktop: "windowsdesktop",
	TargetMacOSDesktop:   "macosdesktop",
	TargetLinuxDesktop:   "linuxdesktop",
	TargetAndroid:        "android",
	TargetIOS:            "ios",
	TargetWebGL:          "webgl",
}

// targetsByName is the case-folded lookup table, built once so resolution
// never depends on reflection.
var targetsByName = func() map[string]Target {
	m := make(map[string]Target, len(targetNames))
	for t, name := range targetNames {
		m[name] = t
	}
	return m
}()

// ParseTarget resolves a target by case-insensitive name.
func ParseTarget(name string) (Target, bool) {
	t, ok := targetsByName[strings.ToLower(name)]
	return t, ok
}

// TargetNames returns all known target names in a stable order.
func TargetNames() []string {
	names := make([]string, 0, len(targetOrder))
	for _, t := range targetOrder {
		names = append(names, targetNames[t])
	}
	return names
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "unknown"
}

// FolderProducing reports whether builds for t emit a project folder that a
// secondary toolchain finishes, rather than a runnable binary.
func (t Target) FolderProducing() bool {
	return t == TargetIOS
}
