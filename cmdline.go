// This file defines program parameters and routines for initializing
// them from the command line.

package main

import (
	"flag"
	"fmt"
	"os"
)

// Parameters is a collection of all program parameters.
type Parameters struct {
	TTName     string // Name of the input truth-table file
	ConfigFile string // Optional YAML configuration file
	Reducer    string // Override for the reducer executable path
	Verbose    bool   // Verbose mode, also passed through to the reducer
	Colored    bool   // Colored reducer output, passed through to the reducer
	Config     Config // Effective configuration after merging flags
}

// ParseCommandLine parses parameters from the command line.
func ParseCommandLine(p *Parameters) {
	// Parse the command line.
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [<options>] <input.tt>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&p.Verbose, "v", false, "Verbose mode displays more info on the process")
	flag.BoolVar(&p.Colored, "c", false, "Negated terms shown in red, non-negated in green")
	flag.StringVar(&p.Reducer, "reducer", "", "Path of the Petrick reducer executable")
	flag.StringVar(&p.ConfigFile, "config", "", "Path of an optional YAML configuration file")
	flag.Parse()
	if flag.NArg() >= 1 {
		p.TTName = flag.Arg(0)
	}

	// Validate the arguments.
	if p.TTName == "" {
		notify.Fatal("a truth-table file must be given")
	}
}
