package ui

import (
	"log"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	iconFolder    = mustIcon(icons.FileFolder)
	iconFile      = mustIcon(icons.EditorInsertDriveFile)
	iconNewFolder = mustIcon(icons.FileCreateNewFolder)
	iconUp        = mustIcon(icons.NavigationArrowUpward)
	iconGrid      = mustIcon(icons.ActionViewModule)
	iconList      = mustIcon(icons.ActionViewList)
)

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		log.Fatalf("ui: bad icon data: %v", err)
	}
	return ic
}
