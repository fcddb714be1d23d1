package ui

import (
	"image"
	"strings"

	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// New Folder dialog

func (r *Renderer) layoutCreateDialog(gtx layout.Context, eventOut *UIEvent, keyTag *layout.List) layout.Dimensions {
	if !r.createDialogOpen {
		return layout.Dimensions{}
	}

	if r.createDialogFocus {
		gtx.Execute(key.FocusCmd{Tag: &r.createDialogEditor})
		r.createDialogFocus = false
	}

	submit := false
	for {
		evt, ok := r.createDialogEditor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := evt.(widget.SubmitEvent); ok {
			submit = true
		}
	}
	if r.createDialogOK.Clicked(gtx) {
		submit = true
	}
	if submit {
		// Blank names keep the dialog open
		if name := strings.TrimSpace(r.createDialogEditor.Text()); name != "" {
			*eventOut = UIEvent{Action: ActionCreateFolder, Name: name}
			r.closeCreateDialog(gtx, keyTag)
			return layout.Dimensions{}
		}
	}

	cancel := r.createDialogCancel.Clicked(gtx)
	for {
		e, ok := gtx.Event(key.Filter{Focus: &r.createDialogEditor, Name: key.NameEscape})
		if !ok {
			break
		}
		if k, ok := e.(key.Event); ok && k.State == key.Press {
			cancel = true
		}
	}
	if cancel {
		r.closeCreateDialog(gtx, keyTag)
		return layout.Dimensions{}
	}

	return r.modalBackdrop(gtx, 350, &r.createDialogCancel, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.H6(r.Theme, "Create New Folder")
					lbl.Color = colBlack
					lbl.Font.Weight = font.Bold
					return lbl.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(r.Theme, "Enter name:")
					lbl.Color = colGray
					return lbl.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widget.Border{Color: colLightGray, Width: unit.Dp(1), CornerRadius: unit.Dp(4)}.Layout(gtx,
						func(gtx layout.Context) layout.Dimensions {
							return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
								func(gtx layout.Context) layout.Dimensions {
									gtx.Constraints.Min.X = gtx.Constraints.Max.X
									ed := material.Editor(r.Theme, &r.createDialogEditor, "folder name")
									ed.Color = colBlack
									ed.HintColor = colGray
									return ed.Layout(gtx)
								})
						})
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, 0)}
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := material.Button(r.Theme, &r.createDialogCancel, "Cancel")
							btn.Background = colLightGray
							btn.Color = colBlack
							return btn.Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := material.Button(r.Theme, &r.createDialogOK, "Create")
							btn.Background = colAccent
							btn.Color = colOnAccent
							return btn.Layout(gtx)
						}),
					)
				}),
			)
		})
	})
}

// closeCreateDialog hides the dialog, drops whatever was typed and gives
// keyboard focus back to the browser
func (r *Renderer) closeCreateDialog(gtx layout.Context, keyTag *layout.List) {
	r.createDialogOpen = false
	r.createDialogEditor.SetText("")
	gtx.Execute(key.FocusCmd{Tag: keyTag})
}

// modalBackdrop dims the window and centers a card of the given width.
// Clicking the dimmed area triggers dismiss.
func (r *Renderer) modalBackdrop(gtx layout.Context, width unit.Dp, dismiss *widget.Clickable, content layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return dismiss.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				paint.FillShape(gtx.Ops, colBackdrop, clip.Rect{Max: size}.Op())
				return layout.Dimensions{Size: size}
			})
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints = layout.Exact(size)
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				w := gtx.Dp(width)
				gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w
				gtx.Constraints.Min.Y = 0
				return r.card(gtx, content)
			})
		}),
	)
}

func (r *Renderer) card(gtx layout.Context, content layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			rr := gtx.Dp(8)
			paint.FillShape(gtx.Ops, colWhite, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
			// Swallow clicks so they don't reach the backdrop
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			r.cardClick.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			})
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(content),
	)
}
