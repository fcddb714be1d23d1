package ui

import (
	"image"
	"time"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const doubleClickInterval = 500 * time.Millisecond

// Item grid and list layout for the current folder

func (r *Renderer) layoutGrid(gtx layout.Context, state *State, eventOut *UIEvent, keyTag *layout.List) layout.Dimensions {
	for i := range state.Items {
		r.handleItemClick(gtx, state, i, eventOut, keyTag)
	}
	if len(state.Items) == 0 {
		return r.layoutEmpty(gtx)
	}

	cols := r.columns
	if cols < 1 {
		cols = 1
	}
	rows := gridRows(len(state.Items), cols)

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return r.listState.Layout(gtx, len(rows), func(gtx layout.Context, row int) layout.Dimensions {
			start, end := rows[row][0], rows[row][1]
			children := make([]layout.FlexChild, 0, cols)
			for i := start; i < start+cols; i++ {
				idx := i
				children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					if idx >= end {
						return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, 0)}
					}
					return r.gridCell(gtx, state, idx)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
		})
	})
}

func (r *Renderer) gridCell(gtx layout.Context, state *State, idx int) layout.Dimensions {
	item := &state.Items[idx]
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, &item.Clickable, func(gtx layout.Context) layout.Dimensions {
			return r.selectable(gtx, idx == state.SelectedIndex, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return r.itemIcon(gtx, item.IsDir, 48)
						}),
						layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := material.Body2(r.Theme, item.Name)
							lbl.Color = colBlack
							lbl.Alignment = text.Middle
							lbl.MaxLines = 2
							return lbl.Layout(gtx)
						}),
					)
				})
			})
		})
	})
}

func (r *Renderer) layoutList(gtx layout.Context, state *State, eventOut *UIEvent, keyTag *layout.List) layout.Dimensions {
	for i := range state.Items {
		r.handleItemClick(gtx, state, i, eventOut, keyTag)
	}
	if len(state.Items) == 0 {
		return r.layoutEmpty(gtx)
	}

	return r.listState.Layout(gtx, len(state.Items), func(gtx layout.Context, i int) layout.Dimensions {
		item := &state.Items[i]
		return material.Clickable(gtx, &item.Clickable, func(gtx layout.Context) layout.Dimensions {
			return r.selectable(gtx, i == state.SelectedIndex, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return r.itemIcon(gtx, item.IsDir, 20)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							lbl := material.Body1(r.Theme, item.Name)
							lbl.Color = colBlack
							lbl.MaxLines = 1
							return lbl.Layout(gtx)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							kind := "File"
							if item.IsDir {
								kind = "Folder"
							}
							lbl := material.Caption(r.Theme, kind)
							lbl.Color = colGray
							return lbl.Layout(gtx)
						}),
					)
				})
			})
		})
	})
}

// handleItemClick selects on single click and opens folders on double click
func (r *Renderer) handleItemClick(gtx layout.Context, state *State, i int, eventOut *UIEvent, keyTag *layout.List) {
	item := &state.Items[i]
	if !item.Clickable.Clicked(gtx) {
		return
	}
	gtx.Execute(key.FocusCmd{Tag: keyTag})

	now := gtx.Now
	if item.IsDir && !item.LastClick.IsZero() && now.Sub(item.LastClick) < doubleClickInterval {
		item.LastClick = time.Time{}
		*eventOut = UIEvent{Action: ActionNavigate, ID: item.ID}
		return
	}
	item.LastClick = now
	*eventOut = UIEvent{Action: ActionSelect, Index: i}
}

func (r *Renderer) itemIcon(gtx layout.Context, isDir bool, dp unit.Dp) layout.Dimensions {
	sz := gtx.Dp(dp)
	gtx.Constraints = layout.Exact(image.Pt(sz, sz))
	if isDir {
		return iconFolder.Layout(gtx, colFolder)
	}
	return iconFile.Layout(gtx, colFile)
}

// selectable paints the selection highlight behind w
func (r *Renderer) selectable(gtx layout.Context, selected bool, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			if selected {
				rr := gtx.Dp(4)
				paint.FillShape(gtx.Ops, colSelected, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
			}
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(w),
	)
}

func (r *Renderer) layoutEmpty(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body1(r.Theme, "This folder is empty")
		lbl.Color = colGray
		return lbl.Layout(gtx)
	})
}
