//go:build !debug

// Package debug provides categorised debug logging.
// This is the no-op version for release builds.
package debug

import "io"

// Enabled indicates whether debug logging is active
const Enabled = false

// Category represents a debug logging category
type Category string

const (
	APP      Category = "APP"
	TREE     Category = "TREE"
	FS       Category = "FS"
	STORE    Category = "STORE"
	UI       Category = "UI"
	CONFIG   Category = "CONFIG"
	FS_ENTRY Category = "FS_ENTRY"
	UI_EVENT Category = "UI_EVENT"
)

func Log(cat Category, format string, args ...interface{}) {}
func SetOutput(w io.Writer) {}
func Enable(cat Category) {}
func Disable(cat Category) {}
func IsEnabled(cat Category) bool { return false }
func EnableAll() {}
func DisableAll() {}
func SetCategories(cats map[Category]bool) {}
func ListEnabled() []Category { return nil }
