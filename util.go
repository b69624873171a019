// This file provides various utility functions needed by the reducer
// driver.

package main

import (
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	colorReset = "\x1b[0m"
	colorBlue  = "\x1b[34m"
)

// VerifyFile checks that path names an existing, readable, regular file.
func VerifyFile(path string) error {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Errorf("the file %q does not exist", path)
	}
	if err != nil {
		return errors.Wrapf(err, "stat %q", path)
	}
	if !fi.Mode().IsRegular() {
		return errors.Errorf("the path %q is not a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Errorf("the file %q is not readable", path)
	}
	f.Close()
	return nil
}

// stripSpace removes every whitespace character from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// colorize wraps msg in an ANSI color when coloring is enabled.
func colorize(enabled bool, color, msg string) string {
	if !enabled {
		return msg
	}
	return color + msg + colorReset
}
