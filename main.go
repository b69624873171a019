/*
Compile a textual truth table into per-function minterm and don't-care
lists and hand each one to an external Petrick's-method reducer.
*/

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// notify is used to output error messages.
var notify *log.Logger

// info is used to output status messages.
var info *log.Logger

// newProcessReducer builds the process-backed reducer from the effective
// configuration.  The original tool expects the reducer next to its own
// executable, so that is the default working directory.
func newProcessReducer(cfg Config) *processReducer {
	dir := cfg.Reducer.Dir
	if dir == "" {
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Dir(exe)
		}
	}
	return &processReducer{
		path:    cfg.Reducer.Path,
		dir:     dir,
		verbose: cfg.Verbose,
		colored: cfg.Colored,
		timeout: time.Duration(cfg.Reducer.TimeoutSeconds) * time.Second,
		stdout:  os.Stdout,
	}
}

// reduceAll prints each function's index lists and hands it to the reducer,
// in column order.  A failure on one column is reported and the remaining
// columns are still attempted.  It returns the number of failed columns.
func reduceAll(p *Parameters, hdr Header, fns []Function, red Reducer) int {
	failed := 0
	for j, fn := range fns {
		fmt.Printf("%s %s\n",
			colorize(p.Config.Colored, colorBlue, fmt.Sprintf("Q%d:", j)),
			FormatIndexList(fn.Minterms))
		fmt.Printf("%s %s\n",
			colorize(p.Config.Colored, colorBlue, fmt.Sprintf("DNC%d:", j)),
			FormatIndexList(fn.DontCares))
		if err := red.Reduce(context.Background(), j, hdr.Inputs, fn); err != nil {
			notify.Print(err)
			failed++
		}
	}
	return failed
}

func main() {
	// Initialize program parameters.
	notify = log.New(os.Stderr, os.Args[0]+": ", 0)
	info = log.New(os.Stderr, "INFO: ", 0)
	var p Parameters
	ParseCommandLine(&p)
	cfg, err := effectiveConfig(&p)
	if err != nil {
		notify.Fatal(err)
	}
	p.Config = cfg

	// Read the truth table.
	if err := VerifyFile(p.TTName); err != nil {
		notify.Fatal(err)
	}
	f, err := os.Open(p.TTName)
	if err != nil {
		notify.Fatal(err)
	}
	tbl, err := ParseTable(f)
	f.Close()
	if err != nil {
		notify.Fatal(err)
	}
	if tbl.Header.Inputs > p.Config.MaxInputs {
		notify.Fatalf("the table declares %d inputs; at most %d are supported (max_inputs)",
			tbl.Header.Inputs, p.Config.MaxInputs)
	}
	if p.Config.Verbose {
		info.Printf("parsed %d rows over %d inputs and %d output functions",
			len(tbl.Rows), tbl.Header.Inputs, tbl.Header.Outputs)
	}

	// Compile the table and reduce each output function.
	fns := Compile(tbl)
	if failed := reduceAll(&p, tbl.Header, fns, newProcessReducer(p.Config)); failed > 0 {
		notify.Fatalf("%d of %d output functions failed to reduce", failed, len(fns))
	}
}
