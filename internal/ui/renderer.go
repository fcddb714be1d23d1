package ui

import (
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/arbor/internal/config"
	"github.com/justyntemme/arbor/internal/debug"
)

type Renderer struct {
	Theme     *material.Theme
	hotkeys   *config.HotkeyMatcher
	columns   int
	maxCrumbs int

	listState layout.List
	focused   bool

	// Toolbar
	newFolderBtn widget.Clickable
	upBtn        widget.Clickable
	viewBtn      widget.Clickable

	// Breadcrumb bar, rebuilt every frame from State.Breadcrumbs
	crumbs    []Crumb
	crumbBtns []widget.Clickable

	// New Folder dialog
	createDialogOpen   bool
	createDialogFocus  bool
	createDialogEditor widget.Editor
	createDialogOK     widget.Clickable
	createDialogCancel widget.Clickable
	cardClick          widget.Clickable
}

// NewRenderer builds a renderer. columns is the grid width in items and
// maxCrumbs the breadcrumb segment count before the middle collapses.
func NewRenderer(hotkeys *config.HotkeyMatcher, columns, maxCrumbs int, dark bool) *Renderer {
	applyDarkMode(dark)

	th := material.NewTheme()
	th.Palette.Bg = colWhite
	th.Palette.Fg = colBlack
	th.Palette.ContrastBg = colAccent

	r := &Renderer{
		Theme:     th,
		hotkeys:   hotkeys,
		columns:   columns,
		maxCrumbs: maxCrumbs,
	}
	r.listState.Axis = layout.Vertical
	r.createDialogEditor.SingleLine = true
	r.createDialogEditor.Submit = true
	return r
}

// OpenCreateDialog shows the New Folder dialog with an empty name field
func (r *Renderer) OpenCreateDialog() {
	r.createDialogOpen = true
	r.createDialogFocus = true
	r.createDialogEditor.SetText("")
}

// IsCreateDialogOpen reports whether the New Folder dialog is visible
func (r *Renderer) IsCreateDialogOpen() bool {
	return r.createDialogOpen
}

// Layout draws one frame and returns the action the user asked for, if any
func (r *Renderer) Layout(gtx layout.Context, state *State) UIEvent {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, colWhite)

	keyTag := &r.listState
	event.Op(gtx.Ops, keyTag)
	if !r.focused {
		gtx.Execute(key.FocusCmd{Tag: keyTag})
		r.focused = true
	}

	eventOut := r.processGlobalInput(gtx, state, keyTag)

	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutToolbar(gtx, state, &eventOut)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutBreadcrumb(gtx, state, &eventOut)
		}),
		layout.Rigid(r.divider),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if state.ViewMode == ViewList {
				return r.layoutList(gtx, state, &eventOut, keyTag)
			}
			return r.layoutGrid(gtx, state, &eventOut, keyTag)
		}),
		layout.Rigid(r.divider),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutStatusBar(gtx, state)
		}),
	)

	// Drawn last so it sits on top of the browser
	r.layoutCreateDialog(gtx, &eventOut, keyTag)

	if eventOut.Action != ActionNone {
		debug.Log(debug.UI, "event: action=%d id=%q index=%d name=%q", eventOut.Action, eventOut.ID, eventOut.Index, eventOut.Name)
	}
	return eventOut
}

// processGlobalInput handles keyboard shortcuts for the browser. The dialog
// handles its own keys while it is open.
func (r *Renderer) processGlobalInput(gtx layout.Context, state *State, keyTag *layout.List) UIEvent {
	if r.hotkeys == nil || r.createDialogOpen {
		return UIEvent{}
	}

	var eventOut UIEvent
	filters := r.keyFilters(keyTag)
	for {
		e, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		k, ok := e.(key.Event)
		if !ok || k.State != key.Press {
			continue
		}
		debug.Log(debug.UI_EVENT, "key: name=%q mods=0x%x", k.Name, k.Modifiers)

		switch r.hotkeys.Match(k) {
		case config.CmdNewFolder:
			r.OpenCreateDialog()
			continue
		case config.CmdOpen:
			eventOut = r.openSelected(state)
			continue
		case config.CmdUp:
			if state.CanUp {
				eventOut = UIEvent{Action: ActionUp}
			}
			continue
		case config.CmdRoot:
			eventOut = UIEvent{Action: ActionRoot}
			continue
		case config.CmdToggleView:
			eventOut = UIEvent{Action: ActionToggleView}
			continue
		case config.CmdEscape:
			eventOut = UIEvent{Action: ActionSelect, Index: -1}
			continue
		}

		// Unbound keys with fixed meaning
		step := 0
		cols := r.columns
		if state.ViewMode == ViewList {
			cols = 1
		}
		switch k.Name {
		case key.NameUpArrow:
			step = -cols
		case key.NameDownArrow:
			step = cols
		case key.NameLeftArrow:
			step = -1
		case key.NameRightArrow:
			step = 1
		case key.NameReturn, key.NameEnter:
			eventOut = r.openSelected(state)
		case key.NameDeleteBackward:
			if state.CanUp {
				eventOut = UIEvent{Action: ActionUp}
			}
		}
		if step != 0 {
			idx := moveSelection(state.SelectedIndex, step, len(state.Items))
			if idx != state.SelectedIndex {
				eventOut = UIEvent{Action: ActionSelect, Index: idx}
				r.listState.ScrollTo(idx / cols)
			}
		}
	}
	return eventOut
}

// keyFilters lists every key the browser reacts to
func (r *Renderer) keyFilters(keyTag *layout.List) []event.Filter {
	type filterKey struct {
		name key.Name
		mods key.Modifiers
	}
	seen := make(map[filterKey]bool)
	var filters []event.Filter

	add := func(name key.Name, mods key.Modifiers) {
		if name == "" || seen[filterKey{name, mods}] {
			return
		}
		seen[filterKey{name, mods}] = true
		filters = append(filters, key.Filter{Focus: keyTag, Name: name, Required: mods})
	}

	for _, hk := range []config.Hotkey{
		r.hotkeys.NewFolder, r.hotkeys.Open, r.hotkeys.Up,
		r.hotkeys.Root, r.hotkeys.ToggleView, r.hotkeys.Escape,
	} {
		if !hk.IsEmpty() {
			add(hk.Key, hk.Modifiers)
		}
	}
	for _, name := range []key.Name{
		key.NameUpArrow, key.NameDownArrow, key.NameLeftArrow, key.NameRightArrow,
		key.NameReturn, key.NameEnter, key.NameDeleteBackward,
	} {
		add(name, 0)
	}
	return filters
}

// openSelected turns the current selection into a navigate event when it is a folder
func (r *Renderer) openSelected(state *State) UIEvent {
	if state.SelectedIndex < 0 || state.SelectedIndex >= len(state.Items) {
		return UIEvent{}
	}
	item := &state.Items[state.SelectedIndex]
	if !item.IsDir {
		return UIEvent{}
	}
	return UIEvent{Action: ActionNavigate, ID: item.ID}
}
