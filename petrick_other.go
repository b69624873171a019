// This file stubs console-window suppression on platforms without console
// windows to suppress.

//go:build !windows

package main

import "os/exec"

// hideConsoleWindow is a no-op outside Windows.
func hideConsoleWindow(cmd *exec.Cmd) {
}
