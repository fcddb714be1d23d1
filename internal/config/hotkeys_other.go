//go:build !darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for Windows/Linux
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewFolder:  "Ctrl+Shift+N",
		Open:       "Enter",
		Up:         "Alt+Up",
		Root:       "Alt+Home",
		ToggleView: "Ctrl+L",
		Escape:     "Escape",
	}
}
