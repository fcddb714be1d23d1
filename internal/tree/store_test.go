package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterIDs returns predictable IDs: id-1, id-2, ...
func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	return NewStore("Root", append([]Option{WithIDFunc(counterIDs())}, opts...)...)
}

func TestNewStore(t *testing.T) {
	s := NewStore("")

	assert.Equal(t, 1, s.Len())
	root := s.Root()
	assert.Equal(t, RootID, root.ID)
	assert.Equal(t, DefaultRootName, root.Name)
	assert.Equal(t, KindFolder, root.Kind)
	assert.True(t, root.IsRoot())
	assert.Equal(t, []string{"Root"}, s.CurrentPath())
	assert.Equal(t, []string{RootID}, s.CurrentIDs())
	assert.Empty(t, s.ListChildren())
}

func TestNewStore_GeneratesUUIDs(t *testing.T) {
	s := NewStore("Root")
	a, err := s.CreateFolder("a")
	require.NoError(t, err)
	b, err := s.CreateFolder("b")
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateFolder(t *testing.T) {
	s := newTestStore()
	before := s.Len()
	parent := s.Current().ID

	it, err := s.CreateFolder("  Docs  ")
	require.NoError(t, err)

	assert.Equal(t, before+1, s.Len())
	assert.Equal(t, parent, it.ParentID)
	assert.Equal(t, "Docs", it.Name)
	assert.Equal(t, KindFolder, it.Kind)
	assert.Equal(t, RootID, s.Current().ID, "creating must not move the location")
}

func TestCreateFolder_EmptyName(t *testing.T) {
	s := newTestStore()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.CreateFolder(name)
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
	}
	assert.Equal(t, 1, s.Len())
}

func TestCreateFolder_DuplicateSiblings(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateFolder("same")
	require.NoError(t, err)
	_, err = s.CreateFolder("same")
	require.NoError(t, err)

	assert.Len(t, s.ListChildren(), 2)
}

func TestResolvePath(t *testing.T) {
	s := newTestStore()

	path, err := s.ResolvePath(RootID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Root"}, path)

	docs, err := s.CreateFolder("Docs")
	require.NoError(t, err)
	require.NoError(t, s.Navigate(docs.ID))
	photos, err := s.CreateFolder("Photos")
	require.NoError(t, err)

	parentPath, err := s.ResolvePath(docs.ID)
	require.NoError(t, err)
	path, err = s.ResolvePath(photos.ID)
	require.NoError(t, err)
	assert.Equal(t, append(parentPath, "Photos"), path)

	ids, err := s.ResolveIDs(photos.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{RootID, docs.ID, photos.ID}, ids)
}

func TestResolvePath_Unknown(t *testing.T) {
	s := newTestStore()
	_, err := s.ResolvePath("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePath_BrokenChain(t *testing.T) {
	s := newTestStore()
	s.index["orphan"] = len(s.items)
	s.items = append(s.items, Item{ID: "orphan", Name: "Orphan", Kind: KindFolder, ParentID: "ghost"})

	_, err := s.ResolvePath("orphan")
	assert.ErrorIs(t, err, ErrBrokenChain)

	err = s.Navigate("orphan")
	assert.ErrorIs(t, err, ErrBrokenChain)
	assert.Equal(t, RootID, s.Current().ID)
}

func TestResolvePath_Cycle(t *testing.T) {
	s := newTestStore()
	s.index["a"] = len(s.items)
	s.items = append(s.items, Item{ID: "a", Name: "A", Kind: KindFolder, ParentID: "b"})
	s.index["b"] = len(s.items)
	s.items = append(s.items, Item{ID: "b", Name: "B", Kind: KindFolder, ParentID: "a"})

	_, err := s.ResolvePath("a")
	assert.ErrorIs(t, err, ErrBrokenChain)
}

func TestNavigate_ListChildren(t *testing.T) {
	s := newTestStore()
	docs, err := s.CreateFolder("Docs")
	require.NoError(t, err)
	_, err = s.CreateFolder("Music")
	require.NoError(t, err)

	require.NoError(t, s.Navigate(docs.ID))
	a, err := s.CreateFolder("b-second")
	require.NoError(t, err)
	b, err := s.CreateFolder("a-first")
	require.NoError(t, err)

	children := s.ListChildren()
	require.Len(t, children, 2)
	// insertion order, not sorted
	assert.Equal(t, a.ID, children[0].ID)
	assert.Equal(t, b.ID, children[1].ID)
	for _, c := range children {
		assert.Equal(t, docs.ID, c.ParentID)
	}
}

func TestNavigate_Unknown(t *testing.T) {
	s := newTestStore()
	docs, err := s.CreateFolder("Docs")
	require.NoError(t, err)
	require.NoError(t, s.Navigate(docs.ID))

	err = s.Navigate("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, docs.ID, s.Current().ID)
	assert.Equal(t, []string{"Root", "Docs"}, s.CurrentPath())
}

func TestNavigate_File(t *testing.T) {
	s := newTestStore()
	f, err := s.AddFile(RootID, "notes.txt")
	require.NoError(t, err)

	err = s.Navigate(f.ID)
	assert.ErrorIs(t, err, ErrNotFolder)
	assert.Equal(t, RootID, s.Current().ID)

	_, err = s.AddFolder(f.ID, "inside")
	assert.ErrorIs(t, err, ErrNotFolder)
}

func TestAddFolder_UnknownParent(t *testing.T) {
	s := newTestStore()
	_, err := s.AddFolder("missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestScenario(t *testing.T) {
	s := newTestStore()

	docs, err := s.CreateFolder("Docs")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Navigate(docs.ID))
	assert.Equal(t, []string{"Root", "Docs"}, s.CurrentPath())

	photos, err := s.CreateFolder("Photos")
	require.NoError(t, err)
	assert.Equal(t, docs.ID, photos.ParentID)

	require.NoError(t, s.NavigateByPathIndex(0))
	assert.Equal(t, []string{"Root"}, s.CurrentPath())
	assert.Equal(t, RootID, s.Current().ID)
}

// buildDuplicateNames creates Root/A/X and Root/B/X, ending inside B/X.
func buildDuplicateNames(t *testing.T, s *Store) (aX, bX Item) {
	t.Helper()
	a, err := s.CreateFolder("A")
	require.NoError(t, err)
	b, err := s.CreateFolder("B")
	require.NoError(t, err)
	aX, err = s.AddFolder(a.ID, "X")
	require.NoError(t, err)
	bX, err = s.AddFolder(b.ID, "X")
	require.NoError(t, err)
	_, err = s.AddFolder(bX.ID, "Leaf")
	require.NoError(t, err)
	return aX, bX
}

func TestNavigateByPathIndex_ByID(t *testing.T) {
	s := newTestStore()
	_, bX := buildDuplicateNames(t, s)
	leaf := s.Children(bX.ID)[0]
	require.NoError(t, s.Navigate(leaf.ID))
	assert.Equal(t, []string{"Root", "B", "X", "Leaf"}, s.CurrentPath())

	require.NoError(t, s.NavigateByPathIndex(2))
	assert.Equal(t, bX.ID, s.Current().ID)
	assert.Equal(t, []string{"Root", "B", "X"}, s.CurrentPath())
}

func TestNavigateByPathIndex_ByName(t *testing.T) {
	s := newTestStore(WithBreadcrumbMode(ByName))
	aX, bX := buildDuplicateNames(t, s)
	leaf := s.Children(bX.ID)[0]
	require.NoError(t, s.Navigate(leaf.ID))

	// first item named "X" wins, even though it sits under A
	require.NoError(t, s.NavigateByPathIndex(2))
	assert.Equal(t, aX.ID, s.Current().ID)
	assert.Equal(t, []string{"Root", "A", "X"}, s.CurrentPath())
}

func TestNavigateByPathIndex_OutOfRange(t *testing.T) {
	s := newTestStore()
	for _, idx := range []int{-1, 1, 5} {
		err := s.NavigateByPathIndex(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
	assert.Equal(t, RootID, s.Current().ID)
}

func TestNavigateUp(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.NavigateUp(), ErrAtRoot)

	docs, err := s.CreateFolder("Docs")
	require.NoError(t, err)
	require.NoError(t, s.Navigate(docs.ID))
	sub, err := s.CreateFolder("Sub")
	require.NoError(t, err)
	require.NoError(t, s.Navigate(sub.ID))

	require.NoError(t, s.NavigateUp())
	assert.Equal(t, docs.ID, s.Current().ID)
	require.NoError(t, s.NavigateUp())
	assert.Equal(t, RootID, s.Current().ID)
	assert.Equal(t, []string{"Root"}, s.CurrentPath())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateFolder("Docs")
	require.NoError(t, err)

	path := s.CurrentPath()
	path[0] = "changed"
	items := s.Items()
	items[0].Name = "changed"

	assert.Equal(t, []string{"Root"}, s.CurrentPath())
	assert.Equal(t, "Root", s.Root().Name)
}

func TestParseBreadcrumbMode(t *testing.T) {
	assert.Equal(t, ByName, ParseBreadcrumbMode("name"))
	assert.Equal(t, ByID, ParseBreadcrumbMode("id"))
	assert.Equal(t, ByID, ParseBreadcrumbMode(""))
	assert.Equal(t, "name", ByName.String())
	assert.Equal(t, "id", ByID.String())
}
