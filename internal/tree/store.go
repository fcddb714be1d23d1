package tree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/justyntemme/arbor/internal/debug"
)

// Store owns the flat item list and the current location.
//
// All mutations hold the mutex. Slices handed out by accessors are copies so
// callers can't alter the store behind its back.
type Store struct {
	mu sync.RWMutex

	items []Item
	index map[string]int // ID -> position in items

	currentID   string
	currentPath []string
	currentIDs  []string

	mode  BreadcrumbMode
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithBreadcrumbMode sets how breadcrumb clicks are resolved.
func WithBreadcrumbMode(m BreadcrumbMode) Option {
	return func(s *Store) { s.mode = m }
}

// WithIDFunc replaces the UUID generator (tests use a counter).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates a store holding a single root folder and positioned on it.
func NewStore(rootName string, opts ...Option) *Store {
	rootName = strings.TrimSpace(rootName)
	if rootName == "" {
		rootName = DefaultRootName
	}

	s := &Store{
		items: []Item{{ID: RootID, Name: rootName, Kind: KindFolder}},
		index: map[string]int{RootID: 0},
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.currentID = RootID
	s.currentPath = []string{rootName}
	s.currentIDs = []string{RootID}
	return s
}

// CreateFolder adds a folder named name (trimmed) under the current folder.
// Sibling names may repeat. The current location does not change.
func (s *Store) CreateFolder(name string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(s.currentID, name, KindFolder)
}

// AddFolder adds a folder under an explicit parent.
func (s *Store) AddFolder(parentID, name string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(parentID, name, KindFolder)
}

// AddFile adds a name-only file placeholder under an explicit parent.
func (s *Store) AddFile(parentID, name string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(parentID, name, KindFile)
}

// ResolvePath returns the names from the root down to the item with id.
func (s *Store) ResolvePath(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain, err := s.chainLocked(id)
	if err != nil {
		return nil, err
	}
	return s.namesLocked(chain), nil
}

// ResolveIDs returns the IDs from the root down to the item with id.
func (s *Store) ResolveIDs(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chainLocked(id)
}

// Navigate makes the folder with id the current location. On error the
// location is left untouched.
func (s *Store) Navigate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigateLocked(id)
}

// NavigateByPathIndex jumps to the breadcrumb segment at index.
func (s *Store) NavigateByPathIndex(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.currentPath) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.currentPath))
	}

	if s.mode == ByID {
		return s.navigateLocked(s.currentIDs[index])
	}

	name := s.currentPath[index]
	for _, it := range s.items {
		if it.Name == name {
			return s.navigateLocked(it.ID)
		}
	}
	return fmt.Errorf("%w: no item named %q", ErrNotFound, name)
}

// NavigateUp moves to the parent of the current folder.
func (s *Store) NavigateUp() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.items[s.index[s.currentID]]
	if cur.IsRoot() {
		return ErrAtRoot
	}
	return s.navigateLocked(cur.ParentID)
}

// ListChildren returns the items directly inside the current folder in
// insertion order.
func (s *Store) ListChildren() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childrenLocked(s.currentID)
}

// Children returns the items directly inside the folder with id.
func (s *Store) Children(id string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childrenLocked(id)
}

// Root returns the root folder.
func (s *Store) Root() Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[0]
}

// Current returns the folder being viewed.
func (s *Store) Current() Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[s.index[s.currentID]]
}

// CurrentPath returns the breadcrumb names, root first.
func (s *Store) CurrentPath() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.currentPath...)
}

// CurrentIDs returns the breadcrumb IDs, root first.
func (s *Store) CurrentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.currentIDs...)
}

// Get looks up an item by ID.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Len returns the number of items, root included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns every item in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

// Mode returns the breadcrumb resolution mode.
func (s *Store) Mode() BreadcrumbMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// --- Internal methods (must be called with lock held) ---

func (s *Store) addLocked(parentID, name string, kind Kind) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}

	pi, ok := s.index[parentID]
	if !ok {
		return Item{}, fmt.Errorf("%w: parent %q", ErrNotFound, parentID)
	}
	if !s.items[pi].IsFolder() {
		return Item{}, fmt.Errorf("%w: parent %q", ErrNotFolder, parentID)
	}

	it := Item{ID: s.newID(), Name: name, Kind: kind, ParentID: parentID}
	if _, dup := s.index[it.ID]; dup {
		return Item{}, fmt.Errorf("tree: duplicate id %q", it.ID)
	}
	s.index[it.ID] = len(s.items)
	s.items = append(s.items, it)

	debug.Log(debug.TREE, "add %s %q id=%s parent=%s", kind, name, it.ID, parentID)
	return it, nil
}

func (s *Store) navigateLocked(id string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if !s.items[i].IsFolder() {
		return fmt.Errorf("%w: %q", ErrNotFolder, id)
	}

	chain, err := s.chainLocked(id)
	if err != nil {
		return err
	}

	s.currentID = id
	s.currentIDs = chain
	s.currentPath = s.namesLocked(chain)

	debug.Log(debug.TREE, "navigate %s path=%v", id, s.currentPath)
	return nil
}

// chainLocked walks parent links up to the root and returns the IDs root first.
// A parent that doesn't resolve, or a walk longer than the item count, means the
// tree invariant has been violated.
func (s *Store) chainLocked(id string) ([]string, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	chain := []string{id}
	parent := s.items[i].ParentID
	for parent != "" {
		if len(chain) > len(s.items) {
			return nil, fmt.Errorf("%w: cycle at %q", ErrBrokenChain, parent)
		}
		pi, ok := s.index[parent]
		if !ok {
			return nil, fmt.Errorf("%w: missing parent %q", ErrBrokenChain, parent)
		}
		chain = append(chain, parent)
		parent = s.items[pi].ParentID
	}

	// Reverse to root-first order
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain, nil
}

func (s *Store) namesLocked(chain []string) []string {
	names := make([]string, len(chain))
	for i, id := range chain {
		names[i] = s.items[s.index[id]].Name
	}
	return names
}

func (s *Store) childrenLocked(id string) []Item {
	var children []Item
	for _, it := range s.items {
		if it.ParentID == id && it.ID != RootID {
			children = append(children, it)
		}
	}
	return children
}
