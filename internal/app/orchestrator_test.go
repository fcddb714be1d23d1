package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/arbor/internal/config"
	"github.com/justyntemme/arbor/internal/fs"
	"github.com/justyntemme/arbor/internal/store"
	"github.com/justyntemme/arbor/internal/ui"
)

func newTestOrchestrator(t *testing.T, opts Options) *Orchestrator {
	t.Helper()
	return NewOrchestrator(*config.DefaultConfig(), nil, opts)
}

func itemNames(items []ui.UIItem) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func TestCreateNavigateAndBreadcrumbs(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs)
	assert.False(t, o.state.CanUp)
	assert.Equal(t, -1, o.state.SelectedIndex)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionCreateFolder, Name: "docs"})
	require.Len(t, o.state.Items, 1)
	assert.Equal(t, 0, o.state.SelectedIndex, "new folder is selected")
	docs := o.state.Items[0]
	assert.True(t, docs.IsDir)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionCreateFolder, Name: "   "})
	assert.Len(t, o.state.Items, 1)
	assert.Equal(t, 2, o.state.ItemTotal)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: docs.ID})
	assert.Equal(t, []string{"Root", "docs"}, o.state.Breadcrumbs)
	assert.True(t, o.state.CanUp)
	assert.Empty(t, o.state.Items)
	assert.Equal(t, -1, o.state.SelectedIndex)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionCreateFolder, Name: "api"})
	api := o.state.Items[0]
	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: api.ID})
	assert.Equal(t, []string{"Root", "docs", "api"}, o.state.Breadcrumbs)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionBreadcrumb, Index: 1})
	assert.Equal(t, []string{"Root", "docs"}, o.state.Breadcrumbs)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionBreadcrumb, Index: 9})
	assert.Equal(t, []string{"Root", "docs"}, o.state.Breadcrumbs, "out of range is ignored")

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionUp})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionUp})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs, "up at root is ignored")

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: api.ID})
	o.handleUIEvent(ui.UIEvent{Action: ui.ActionRoot})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs)
	assert.Equal(t, []string{"docs"}, itemNames(o.state.Items))
}

func TestNavigateToFileIsIgnored(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	file, err := o.tree.AddFile(o.tree.Root().ID, "notes.txt")
	require.NoError(t, err)
	o.refreshState()

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionSelect, Index: 0})
	assert.Equal(t, 0, o.state.SelectedIndex)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: file.ID})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs)
	assert.Equal(t, 0, o.state.SelectedIndex, "selection survives a rejected navigation")

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: "missing"})
	assert.Equal(t, []string{"Root"}, o.state.Breadcrumbs)
}

func TestToggleViewSavesSetting(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	require.Equal(t, ui.ViewGrid, o.state.ViewMode)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionToggleView})
	assert.Equal(t, ui.ViewList, o.state.ViewMode)

	select {
	case req := <-o.store.RequestChan:
		assert.Equal(t, store.Request{Op: store.SaveSetting, Key: store.KeyViewMode, Value: "list"}, req)
	default:
		t.Fatal("expected a SaveSetting request")
	}

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionToggleView})
	assert.Equal(t, ui.ViewGrid, o.state.ViewMode)
}

func TestHandleStoreResponse(t *testing.T) {
	dir := t.TempDir()
	o := newTestOrchestrator(t, Options{Resume: true})

	o.handleStoreResponse(store.Response{Op: store.FetchSettings, Settings: map[string]string{
		store.KeyViewMode: "list",
		store.KeyLastSeed: dir,
	}})
	assert.Equal(t, ui.ViewList, o.state.ViewMode)

	select {
	case req := <-o.fs.RequestChan:
		assert.Equal(t, fs.ScanTree, req.Op)
		assert.Equal(t, dir, req.Path)
		assert.Equal(t, int64(1), req.Gen)
	default:
		t.Fatal("expected a resume scan")
	}
}

func TestHandleStoreResponse_NoResumeWithoutFlag(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	o.handleStoreResponse(store.Response{Op: store.FetchSettings, Settings: map[string]string{
		store.KeyLastSeed: t.TempDir(),
	}})
	assert.Empty(t, o.fs.RequestChan)
}

func TestImportEntries(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	entries := []fs.Entry{
		{RelPath: "a", Name: "a", IsDir: true, Depth: 1},
		{RelPath: "a/b", Name: "b", IsDir: true, Depth: 2},
		{RelPath: "a/b/c.txt", Name: "c.txt", Depth: 3},
		{RelPath: "readme.md", Name: "readme.md", Depth: 1},
		{RelPath: "x/orphan", Name: "orphan", Depth: 2},
	}

	n := importEntries(o.tree, o.tree.Root().ID, entries)
	assert.Equal(t, 4, n)
	assert.Equal(t, 5, o.tree.Len())

	var c string
	for _, it := range o.tree.Items() {
		if it.Name == "c.txt" {
			c = it.ID
		}
	}
	path, err := o.tree.ResolvePath(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Root", "a", "b", "c.txt"}, path)
}

func TestHandleFSResponse_StaleGeneration(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	o.seedGen = 2

	o.handleFSResponse(fs.Response{Op: fs.ScanTree, Gen: 1, Entries: []fs.Entry{{RelPath: "a", Name: "a", IsDir: true}}})
	assert.Equal(t, 1, o.tree.Len())

	o.handleFSResponse(fs.Response{Op: fs.ScanTree, Gen: 2, Path: "/seed", Entries: []fs.Entry{{RelPath: "a", Name: "a", IsDir: true}}})
	assert.Equal(t, 2, o.tree.Len())
	assert.Equal(t, []string{"a"}, itemNames(o.state.Items))

	req := <-o.store.RequestChan
	assert.Equal(t, store.KeyLastSeed, req.Key)
	assert.Equal(t, "/seed", req.Value)
}

func TestSeedFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), nil, 0o644))

	o := newTestOrchestrator(t, Options{})
	go o.fs.Start()
	t.Cleanup(func() { close(o.fs.RequestChan) })

	o.startSeed(dir)
	select {
	case resp := <-o.fs.ResponseChan:
		o.handleFSResponse(resp)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for scan")
	}

	assert.Equal(t, []string{"README", "src"}, itemNames(o.state.Items))
	assert.Equal(t, 5, o.state.ItemTotal)

	o.handleUIEvent(ui.UIEvent{Action: ui.ActionNavigate, ID: o.state.Items[1].ID})
	assert.Equal(t, []string{"Root", "src"}, o.state.Breadcrumbs)
	assert.Equal(t, []string{"main.go", "pkg"}, itemNames(o.state.Items))
}

func TestStartSeed_MissingDirectory(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	o.startSeed(filepath.Join(t.TempDir(), "nope"))
	o.startSeed("")
	assert.Empty(t, o.fs.RequestChan)
	assert.Zero(t, o.seedGen)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath("  "))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "src"), expandPath("~/src"))
	assert.Equal(t, filepath.Join(wd, "rel"), expandPath("rel"))
	assert.Equal(t, filepath.Clean("/tmp/x"), expandPath("/tmp/x/"))
}
