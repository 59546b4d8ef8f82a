package pretty

import (
	"golang.org/x/sys/windows"
)

const (
	wantedMode = windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT
)

// localSetup switches the Windows console to process ANSI sequences. Without
// them colours and line redraws cannot be used.
func localSetup(interactive bool) bool {
	if !interactive {
		return true
	}
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return false
	}
	var mode uint32
	err = windows.GetConsoleMode(handle, &mode)
	if err != nil {
		return false
	}
	if mode&wantedMode == wantedMode {
		return true
	}
	return windows.SetConsoleMode(handle, mode|wantedMode) == nil
}
