//go:build debug

// Package debug provides categorised debug logging.
// Build with -tags debug to compile it in; release builds get no-op stubs.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// Enabled indicates whether debug logging is active
const Enabled = true

// Category represents a debug logging category
type Category string

const (
	APP    Category = "APP"    // Orchestration, event dispatch, seeding
	TREE   Category = "TREE"   // Folder tree mutations and navigation
	FS     Category = "FS"     // Directory scans used for seeding
	STORE  Category = "STORE"  // Settings database
	UI     Category = "UI"     // UI events, layout, rendering
	CONFIG Category = "CONFIG" // Config file load/save

	// Detailed subcategories
	FS_ENTRY Category = "FS_ENTRY" // Individual scanned entries (very verbose)
	UI_EVENT Category = "UI_EVENT" // Raw input handling
)

// defaults lists every known category and whether it starts enabled.
var defaults = map[Category]bool{
	APP:      true,
	TREE:     true,
	FS:       true,
	STORE:    true,
	UI:       true,
	CONFIG:   true,
	FS_ENTRY: false,
	UI_EVENT: false,
}

var (
	categoryMu sync.RWMutex
	enabled    = parseCategories(os.Getenv("ARBOR_DEBUG"))
	logger     = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
)

// parseCategories turns an ARBOR_DEBUG value into the enabled set.
// "" keeps the defaults, "all" and "none" switch everything, otherwise the
// value is a comma separated list of categories to enable.
func parseCategories(env string) map[Category]bool {
	out := make(map[Category]bool, len(defaults))
	env = strings.ToUpper(strings.TrimSpace(env))

	switch env {
	case "":
		for cat, on := range defaults {
			out[cat] = on
		}
	case "ALL", "NONE":
		for cat := range defaults {
			out[cat] = env == "ALL"
		}
	default:
		for cat := range defaults {
			out[cat] = false
		}
		for _, name := range strings.Split(env, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out[Category(name)] = true
			}
		}
	}
	return out
}

// Log logs a debug message for the specified category
func Log(cat Category, format string, args ...interface{}) {
	if !IsEnabled(cat) {
		return
	}
	logger.Printf("[%s] %s", cat, fmt.Sprintf(format, args...))
}

// SetOutput redirects debug output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Enable enables a debug category
func Enable(cat Category) {
	categoryMu.Lock()
	enabled[cat] = true
	categoryMu.Unlock()
}

// Disable disables a debug category
func Disable(cat Category) {
	categoryMu.Lock()
	enabled[cat] = false
	categoryMu.Unlock()
}

// IsEnabled returns whether a category is enabled
func IsEnabled(cat Category) bool {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return enabled[cat]
}

// EnableAll enables all debug categories including verbose ones
func EnableAll() {
	SetCategories(parseCategories("all"))
}

// DisableAll disables all debug categories
func DisableAll() {
	SetCategories(parseCategories("none"))
}

// SetCategories sets the enabled state for multiple categories
func SetCategories(cats map[Category]bool) {
	categoryMu.Lock()
	for cat, on := range cats {
		enabled[cat] = on
	}
	categoryMu.Unlock()
}

// ListEnabled returns the enabled categories, sorted
func ListEnabled() []Category {
	categoryMu.RLock()
	defer categoryMu.RUnlock()

	var out []Category
	for cat, on := range enabled {
		if on {
			out = append(out, cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
