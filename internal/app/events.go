package app

import (
	"github.com/justyntemme/arbor/internal/debug"
	"github.com/justyntemme/arbor/internal/store"
	"github.com/justyntemme/arbor/internal/tree"
	"github.com/justyntemme/arbor/internal/ui"
)

// handleUIEvent applies one user action to the tree. Failed transitions are
// logged and otherwise ignored; the browser keeps showing the previous state.
func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	var err error

	switch evt.Action {
	case ui.ActionNone:
		return
	case ui.ActionSelect:
		o.state.SelectedIndex = evt.Index
		o.invalidate()
		return
	case ui.ActionToggleView:
		if o.state.ViewMode == ui.ViewGrid {
			o.state.ViewMode = ui.ViewList
		} else {
			o.state.ViewMode = ui.ViewGrid
		}
		o.saveSetting(store.KeyViewMode, o.state.ViewMode.String())
		o.invalidate()
		return
	case ui.ActionCreateFolder:
		var item tree.Item
		if item, err = o.tree.CreateFolder(evt.Name); err == nil {
			o.refreshState()
			o.selectID(item.ID)
			o.invalidate()
			return
		}
	case ui.ActionNavigate:
		err = o.tree.Navigate(evt.ID)
	case ui.ActionBreadcrumb:
		err = o.tree.NavigateByPathIndex(evt.Index)
	case ui.ActionUp:
		err = o.tree.NavigateUp()
	case ui.ActionRoot:
		err = o.tree.Navigate(o.tree.Root().ID)
	}

	if err != nil {
		debug.Log(debug.APP, "Action %d ignored: %v", evt.Action, err)
		return
	}

	o.state.SelectedIndex = -1
	o.refreshState()
	o.invalidate()
}

// refreshState rebuilds what the renderer sees from the tree
func (o *Orchestrator) refreshState() {
	children := o.tree.ListChildren()
	items := make([]ui.UIItem, len(children))
	for i, c := range children {
		items[i] = ui.UIItem{ID: c.ID, Name: c.Name, IsDir: c.IsFolder()}
	}

	o.state.Items = items
	o.state.Breadcrumbs = o.tree.CurrentPath()
	o.state.CanUp = !o.tree.Current().IsRoot()
	o.state.ItemTotal = o.tree.Len()
	if o.state.SelectedIndex >= len(items) {
		o.state.SelectedIndex = -1
	}
}

// selectID selects the visible item with the given ID, if any
func (o *Orchestrator) selectID(id string) {
	for i := range o.state.Items {
		if o.state.Items[i].ID == id {
			o.state.SelectedIndex = i
			return
		}
	}
}
