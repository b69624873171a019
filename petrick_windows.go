// This file keeps the spawned reducer from flashing a console window when
// the program runs as a windowed application.

//go:build windows

package main

import (
	"os/exec"
	"syscall"
)

// hideConsoleWindow suppresses the child's console window.
func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
