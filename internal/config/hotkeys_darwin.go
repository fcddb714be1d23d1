//go:build darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for macOS
// Uses Cmd instead of Alt for navigation (macOS convention)
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewFolder:  "Cmd+Shift+N",
		Open:       "Enter",
		Up:         "Cmd+Up",
		Root:       "Cmd+Shift+H",
		ToggleView: "Cmd+L",
		Escape:     "Escape",
	}
}
