// This file is the boundary to the external Petrick's-method reducer.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FormatIndexList serializes indices the way the reducer expects them on
// its command line: bracketed, comma-separated, no internal spaces.
func FormatIndexList(idxs []uint) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range idxs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Reducer minimizes one compiled output function.
type Reducer interface {
	Reduce(ctx context.Context, column, inputs int, fn Function) error
}

// A ReducerError reports a failed invocation of the external reducer for a
// single output column.  Other columns are still attempted.
type ReducerError struct {
	Column   int
	ExitCode int
	Stderr   string
}

func (e *ReducerError) Error() string {
	msg := fmt.Sprintf("reducer failed on Q%d (exit %d)", e.Column, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// processReducer runs the reducer executable as a child process, one
// invocation per output column.
type processReducer struct {
	path    string        // Reducer executable
	dir     string        // Working directory for the child process
	verbose bool          // Pass -v through to the reducer
	colored bool          // Pass -c through to the reducer
	timeout time.Duration // Per-invocation deadline
	stdout  io.Writer     // Destination for the reducer's stdout
}

// args assembles the reducer's argument vector: optional flags, then the
// input count, the minterm list, and the don't-care list.
func (r *processReducer) args(inputs int, fn Function) []string {
	var args []string
	if r.verbose {
		args = append(args, "-v")
	}
	if r.colored {
		args = append(args, "-c")
	}
	return append(args,
		strconv.Itoa(inputs),
		FormatIndexList(fn.Minterms),
		FormatIndexList(fn.DontCares))
}

// Reduce invokes the reducer for one column and forwards its stdout.  A
// non-zero exit, a missed deadline, or any bytes on stderr mark the column
// failed.
func (r *processReducer) Reduce(ctx context.Context, column, inputs int, fn Function) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.path, r.args(inputs, fn)...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	hideConsoleWindow(cmd)

	err := cmd.Run()
	if stdout.Len() > 0 {
		fmt.Fprint(r.stdout, stdout.String())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ReducerError{Column: column, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return errors.Wrapf(err, "run reducer %s", r.path)
	}
	if stderr.Len() > 0 {
		// The reducer reports some faults on stderr while still exiting 0.
		return &ReducerError{Column: column, ExitCode: 0, Stderr: stderr.String()}
	}
	return nil
}
