package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Toolbar, breadcrumb and status bar layout

func (r *Renderer) layoutToolbar(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	if r.newFolderBtn.Clicked(gtx) {
		r.OpenCreateDialog()
	}
	if state.CanUp && r.upBtn.Clicked(gtx) {
		*eventOut = UIEvent{Action: ActionUp}
		gtx.Execute(key.FocusCmd{Tag: &r.listState})
	}
	if r.viewBtn.Clicked(gtx) {
		*eventOut = UIEvent{Action: ActionToggleView}
		gtx.Execute(key.FocusCmd{Tag: &r.listState})
	}

	return r.filledBar(gtx, colToolbar, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.toolButton(gtx, &r.upBtn, iconUp, "Up", state.CanUp)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.newFolderButton(gtx)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, 0)}
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					ic, desc := iconList, "List view"
					if state.ViewMode == ViewList {
						ic, desc = iconGrid, "Grid view"
					}
					return r.toolButton(gtx, &r.viewBtn, ic, desc, true)
				}),
			)
		})
	})
}

func (r *Renderer) newFolderButton(gtx layout.Context) layout.Dimensions {
	btn := material.ButtonLayout(r.Theme, &r.newFolderBtn)
	btn.Background = colAccent
	btn.CornerRadius = unit.Dp(4)
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(10), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					sz := gtx.Dp(18)
					gtx.Constraints = layout.Exact(image.Pt(sz, sz))
					return iconNewFolder.Layout(gtx, colOnAccent)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, "New Folder")
					lbl.Color = colOnAccent
					return lbl.Layout(gtx)
				}),
			)
		})
	})
}

// toolButton is a flat icon button that greys out when disabled
func (r *Renderer) toolButton(gtx layout.Context, btn *widget.Clickable, ic *widget.Icon, desc string, enabled bool) layout.Dimensions {
	b := material.IconButton(r.Theme, btn, ic, desc)
	b.Size = unit.Dp(20)
	b.Inset = layout.UniformInset(unit.Dp(8))
	b.Background = colToolbar
	b.Color = colAccent
	if !enabled {
		b.Color = colDisabled
		gtx = gtx.Disabled()
	}
	return b.Layout(gtx)
}

func (r *Renderer) layoutBreadcrumb(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	r.crumbs = collapseBreadcrumbs(state.Breadcrumbs, r.maxCrumbs)
	for len(r.crumbBtns) < len(r.crumbs) {
		r.crumbBtns = append(r.crumbBtns, widget.Clickable{})
	}

	for i, c := range r.crumbs {
		if !c.IsEllipsis && r.crumbBtns[i].Clicked(gtx) {
			*eventOut = UIEvent{Action: ActionBreadcrumb, Index: c.Index}
			gtx.Execute(key.FocusCmd{Tag: &r.listState})
		}
	}

	return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()

		var children []layout.FlexChild
		for i, c := range r.crumbs {
			idx := i
			crumb := c

			if i > 0 {
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, " › ")
					lbl.Color = colGray
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				}))
			}

			if crumb.IsEllipsis {
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, crumb.Name)
					lbl.Color = colGray
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				}))
				continue
			}

			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				isLast := idx == len(r.crumbs)-1
				return material.Clickable(gtx, &r.crumbBtns[idx], func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, crumb.Name)
					lbl.MaxLines = 1
					if isLast {
						lbl.Font.Weight = font.Bold
						lbl.Color = colBlack
					} else {
						lbl.Color = colAccent
					}
					return lbl.Layout(gtx)
				})
			}))
		}

		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (r *Renderer) layoutStatusBar(gtx layout.Context, state *State) layout.Dimensions {
	text := fmt.Sprintf("%d items", len(state.Items))
	if len(state.Items) == 1 {
		text = "1 item"
	}
	if state.SelectedIndex >= 0 && state.SelectedIndex < len(state.Items) {
		text += " · " + state.Items[state.SelectedIndex].Name + " selected"
	}
	text += fmt.Sprintf(" · %d in tree", state.ItemTotal)

	return r.filledBar(gtx, colToolbar, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Caption(r.Theme, text)
			lbl.Color = colGray
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		})
	})
}

// filledBar paints bg behind a full-width row
func (r *Renderer) filledBar(gtx layout.Context, bg color.NRGBA, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			size := image.Pt(gtx.Constraints.Max.X, gtx.Constraints.Min.Y)
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: size}.Op())
			return layout.Dimensions{Size: size}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return w(gtx)
		}),
	)
}

func (r *Renderer) divider(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(1))
	paint.FillShape(gtx.Ops, colLightGray, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}
