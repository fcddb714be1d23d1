// Package tree holds the in-memory folder tree the browser displays.
// Items are append-only and live for the lifetime of one session.
package tree

import "errors"

// Kind distinguishes folders (which hold children) from file placeholders.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// RootID is the fixed ID of the root folder.
const RootID = "root"

// DefaultRootName is used when no root name is configured.
const DefaultRootName = "Root"

// Item is a single node in the tree. ParentID is empty only for the root.
type Item struct {
	ID       string
	Name     string
	Kind     Kind
	ParentID string
}

// IsFolder reports whether the item can hold children.
func (i Item) IsFolder() bool {
	return i.Kind == KindFolder
}

// IsRoot reports whether the item is the tree root.
func (i Item) IsRoot() bool {
	return i.ParentID == ""
}

// BreadcrumbMode selects how NavigateByPathIndex resolves a breadcrumb segment.
type BreadcrumbMode int

const (
	// ByID follows the ancestor ID chain recorded alongside the path.
	ByID BreadcrumbMode = iota
	// ByName jumps to the first item (in insertion order) whose name matches
	// the segment. Ambiguous when names repeat across the tree.
	ByName
)

// ParseBreadcrumbMode maps a config string to a mode. Unknown values fall back to ByID.
func ParseBreadcrumbMode(s string) BreadcrumbMode {
	if s == "name" {
		return ByName
	}
	return ByID
}

func (m BreadcrumbMode) String() string {
	if m == ByName {
		return "name"
	}
	return "id"
}

var (
	ErrEmptyName       = errors.New("tree: name is empty")
	ErrNotFound        = errors.New("tree: item not found")
	ErrNotFolder       = errors.New("tree: item is not a folder")
	ErrBrokenChain     = errors.New("tree: parent chain is broken")
	ErrIndexOutOfRange = errors.New("tree: breadcrumb index out of range")
	ErrAtRoot          = errors.New("tree: already at root")
)
