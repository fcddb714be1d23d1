package app

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/justyntemme/arbor/internal/config"
	"github.com/justyntemme/arbor/internal/debug"
	"github.com/justyntemme/arbor/internal/fs"
	"github.com/justyntemme/arbor/internal/store"
	"github.com/justyntemme/arbor/internal/tree"
	"github.com/justyntemme/arbor/internal/ui"
)

// Options are startup choices that don't belong in the config file
type Options struct {
	DBPath string // Settings database, defaults to ~/.config/arbor/arbor.db
	Resume bool   // Seed from the last seeded directory when no seed path is set
}

type Orchestrator struct {
	mu      sync.Mutex // Guards tree transitions and state between frames and worker responses
	window  *app.Window
	cfg     config.Config
	opts    Options
	tree    *tree.Store
	fs      *fs.System
	store   *store.DB
	ui      *ui.Renderer
	state   ui.State
	seedGen int64
	done    chan struct{}
}

// NewOrchestrator wires a fresh tree to the renderer and workers. window may
// be nil when no frames are drawn.
func NewOrchestrator(cfg config.Config, window *app.Window, opts Options) *Orchestrator {
	hotkeys := config.NewHotkeyMatcher(cfg.Hotkeys)
	o := &Orchestrator{
		window: window,
		cfg:    cfg,
		opts:   opts,
		tree:   tree.NewStore(cfg.Tree.RootName, tree.WithBreadcrumbMode(tree.ParseBreadcrumbMode(cfg.Tree.BreadcrumbMode))),
		fs:     fs.NewSystem(),
		store:  store.NewDB(),
		ui:     ui.NewRenderer(hotkeys, cfg.UI.GridColumns, cfg.UI.MaxBreadcrumbs, cfg.UI.Theme == "dark"),
		state:  ui.State{SelectedIndex: -1, ViewMode: ui.ParseViewMode(cfg.UI.ViewMode)},
		done:   make(chan struct{}),
	}
	o.refreshState()
	return o
}

// Tree returns the store backing the browser
func (o *Orchestrator) Tree() *tree.Store {
	return o.tree
}

func (o *Orchestrator) Run() error {
	debug.Log(debug.APP, "Starting Arbor: root=%q breadcrumbs=%s seed=%q",
		o.cfg.Tree.RootName, o.tree.Mode(), o.cfg.Tree.SeedPath)

	dbPath := o.opts.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(config.ConfigDir(), "arbor.db")
	}
	if err := o.store.Open(dbPath); err != nil {
		log.Printf("Failed to open DB: %v", err)
	}
	defer o.store.Close()
	defer close(o.done)

	// Start workers
	go o.fs.Start()
	go o.store.Start()
	go o.processEvents()

	o.store.RequestChan <- store.Request{Op: store.FetchSettings}
	o.mu.Lock()
	o.startSeed(o.cfg.Tree.SeedPath)
	o.mu.Unlock()

	// Event loop
	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			o.fs.RequestChan <- fs.Request{Op: fs.CancelScan}
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			o.mu.Lock()
			evt := o.ui.Layout(gtx, &o.state)
			o.handleUIEvent(evt)
			o.mu.Unlock()
			e.Frame(gtx.Ops)
		}
	}
}

func (o *Orchestrator) processEvents() {
	for {
		select {
		case <-o.done:
			return
		case resp := <-o.fs.ResponseChan:
			o.mu.Lock()
			o.handleFSResponse(resp)
			o.mu.Unlock()
		case resp := <-o.store.ResponseChan:
			o.mu.Lock()
			o.handleStoreResponse(resp)
			o.mu.Unlock()
		}
	}
}

func (o *Orchestrator) handleStoreResponse(resp store.Response) {
	if resp.Err != nil {
		log.Printf("Store Error: %v", resp.Err)
		return
	}

	if resp.Op != store.FetchSettings {
		return
	}
	if val, ok := resp.Settings[store.KeyViewMode]; ok {
		o.state.ViewMode = ui.ParseViewMode(val)
	}
	if last := resp.Settings[store.KeyLastSeed]; o.opts.Resume && o.cfg.Tree.SeedPath == "" && last != "" {
		debug.Log(debug.APP, "Resuming last seed %q", last)
		o.startSeed(last)
	}
	o.invalidate()
}

// saveSetting queues a settings write without ever blocking the caller
func (o *Orchestrator) saveSetting(key, value string) {
	select {
	case o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: key, Value: value}:
	default:
		log.Printf("Store: request queue full, dropping %s=%q", key, value)
	}
}

func (o *Orchestrator) invalidate() {
	if o.window != nil {
		o.window.Invalidate()
	}
}

// Main opens the window and runs the browser until it is closed
func Main(cfg config.Config, opts Options) {
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Arbor"),
			app.Size(unit.Dp(cfg.UI.Window.Width), unit.Dp(cfg.UI.Window.Height)),
		)
		o := NewOrchestrator(cfg, w, opts)
		if err := o.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
