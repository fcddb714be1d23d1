//go:build windows

package main

import "golang.org/x/sys/windows"

// manageConsole handles the console window visibility on Windows.
// If debug is false, it detaches (hides) the console window.
func manageConsole(debug bool) {
	if !debug {
		freeConsole := windows.NewLazySystemDLL("kernel32.dll").NewProc("FreeConsole")
		freeConsole.Call()
	}
}
