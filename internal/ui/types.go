package ui

import (
	"time"

	"gioui.org/widget"
)

type UIAction int

const (
	ActionNone UIAction = iota
	ActionNavigate        // Open a folder (uses ID)
	ActionBreadcrumb      // Jump to a breadcrumb segment (uses Index)
	ActionUp              // Go to the parent folder
	ActionRoot            // Go to the root folder
	ActionCreateFolder    // Create a folder in the current location (uses Name)
	ActionSelect          // Change selection (uses Index, -1 clears)
	ActionToggleView      // Switch between grid and list
)

// UIEvent is what a frame asks the orchestrator to do
type UIEvent struct {
	Action UIAction
	ID     string
	Index  int
	Name   string
}

// ViewMode selects how the current folder's items are laid out
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

// ParseViewMode maps a config/settings string to a ViewMode
func ParseViewMode(s string) ViewMode {
	if s == "list" {
		return ViewList
	}
	return ViewGrid
}

func (v ViewMode) String() string {
	if v == ViewList {
		return "list"
	}
	return "grid"
}

// UIItem is one entry of the current folder as the renderer sees it
type UIItem struct {
	ID        string
	Name      string
	IsDir     bool
	Clickable widget.Clickable
	LastClick time.Time
}

// State is everything the renderer needs to draw a frame
type State struct {
	Breadcrumbs   []string // Names from root to the current folder
	Items         []UIItem
	SelectedIndex int
	CanUp         bool
	ViewMode      ViewMode
	ItemTotal     int // Items in the whole tree, for the status bar
}

// Crumb is a rendered breadcrumb segment. Index points back into
// State.Breadcrumbs; the ellipsis placeholder has Index -1.
type Crumb struct {
	Name       string
	Index      int
	IsEllipsis bool
}

// collapseBreadcrumbs keeps the root, the first folder below it and the last
// two segments, replacing the middle with "..." once maxSegments is exceeded.
func collapseBreadcrumbs(names []string, maxSegments int) []Crumb {
	all := make([]Crumb, len(names))
	for i, n := range names {
		all[i] = Crumb{Name: n, Index: i}
	}

	const keepStart, keepEnd = 2, 2
	if len(all) <= maxSegments || len(all) <= keepStart+keepEnd {
		return all
	}

	out := make([]Crumb, 0, keepStart+keepEnd+1)
	out = append(out, all[:keepStart]...)
	out = append(out, Crumb{Name: "...", Index: -1, IsEllipsis: true})
	out = append(out, all[len(all)-keepEnd:]...)
	return out
}

// gridRows splits n items into rows of cols, returning [start, end) pairs
func gridRows(n, cols int) [][2]int {
	if cols < 1 {
		cols = 1
	}
	var rows [][2]int
	for start := 0; start < n; start += cols {
		end := start + cols
		if end > n {
			end = n
		}
		rows = append(rows, [2]int{start, end})
	}
	return rows
}

// moveSelection returns the new selected index after an arrow key press.
// step is ±1 for left/right and ±cols for up/down in grid mode.
func moveSelection(current, step, n int) int {
	if n == 0 {
		return -1
	}
	if current < 0 {
		if step < 0 {
			return n - 1
		}
		return 0
	}
	next := current + step
	if next < 0 || next >= n {
		return current
	}
	return next
}
