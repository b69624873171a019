// This file parses textual truth tables into a header and a row sequence.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// The pattern alphabet.  Input and output symbols both draw from it.
const (
	symbolOff  = '0'
	symbolOn   = '1'
	symbolWild = 'x'
)

// separator splits every line into an input segment and an output segment.
const separator = "|"

// Sentinel errors for the three ways a table can be structurally invalid.
var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrMalformedRow    = errors.New("malformed row")
	ErrInvalidSymbol   = errors.New("invalid symbol")
)

// A HeaderError reports a first line that cannot be split into non-empty
// input and output segments.
type HeaderError struct {
	Msg string
}

func (e *HeaderError) Error() string { return "malformed header: " + e.Msg }

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }

// A RowError reports a data row whose shape disagrees with the header.
type RowError struct {
	Line int // 1-based line number in the table
	Msg  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("malformed row at line %d: %s", e.Line, e.Msg)
}

func (e *RowError) Unwrap() error { return ErrMalformedRow }

// A SymbolError reports a pattern character outside {0,1,x}.
type SymbolError struct {
	Line    int    // 1-based line number in the table
	Segment string // "input" or "output"
	Pos     int    // 0-based symbol position within the segment
	Char    rune   // The offending character
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at line %d, %s position %d",
		e.Char, e.Line, e.Segment, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// A Header describes the column structure of a truth table.
type Header struct {
	Inputs  int // Number of input variables
	Outputs int // Number of output functions
}

// A Row is one data row: a compressed input pattern plus one symbol per
// output function.
type Row struct {
	Pattern string // Input pattern over {0,1,x}, whitespace removed
	Outputs string // One output symbol per function, in column order
	Line    int    // 1-based line number in the table
}

// A Table is a parsed truth table.
type Table struct {
	Header Header
	Rows   []Row
}

// ParseTable reads a truth table line by line.  The first line is the
// header; every subsequent non-empty line is a data row.  Any structural
// fault aborts the whole table, since column counts must stay aligned
// across all rows.
func ParseTable(r io.Reader) (*Table, error) {
	var tbl Table
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			hdr, err := parseHeader(text)
			if err != nil {
				return nil, err
			}
			tbl.Header = hdr
			continue
		}
		if strings.TrimSpace(text) == "" {
			// Blank line: ignore.
			continue
		}
		row, err := parseRow(text, line, tbl.Header)
		if err != nil {
			return nil, err
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read truth table")
	}
	if line == 0 {
		return nil, &HeaderError{Msg: "the table is empty"}
	}
	return &tbl, nil
}

// parseHeader derives the input and output counts from the first line.
func parseHeader(text string) (Header, error) {
	segs := strings.Split(text, separator)
	if len(segs) != 2 {
		return Header{}, &HeaderError{
			Msg: fmt.Sprintf("expected exactly one %q separator, found %d", separator, len(segs)-1),
		}
	}
	in := strings.Fields(segs[0])
	out := strings.Fields(segs[1])
	if len(in) == 0 {
		return Header{}, &HeaderError{Msg: "no input symbols before the separator"}
	}
	if len(out) == 0 {
		return Header{}, &HeaderError{Msg: "no output symbols after the separator"}
	}
	return Header{Inputs: len(in), Outputs: len(out)}, nil
}

// parseRow validates one data row against the header.  Inputs may be
// visually grouped ("0 1 x 0"); all whitespace in the input segment is
// dropped before the length check.
func parseRow(text string, line int, hdr Header) (Row, error) {
	segs := strings.Split(text, separator)
	if len(segs) != 2 {
		return Row{}, &RowError{
			Line: line,
			Msg:  fmt.Sprintf("expected exactly one %q separator, found %d", separator, len(segs)-1),
		}
	}

	pattern := stripSpace(segs[0])
	if len(pattern) != hdr.Inputs {
		return Row{}, &RowError{
			Line: line,
			Msg:  fmt.Sprintf("input pattern has %d symbols, header declares %d", len(pattern), hdr.Inputs),
		}
	}
	for i := 0; i < len(pattern); i++ {
		if !validSymbol(pattern[i]) {
			return Row{}, &SymbolError{Line: line, Segment: "input", Pos: i, Char: rune(pattern[i])}
		}
	}

	fields := strings.Fields(segs[1])
	if len(fields) != hdr.Outputs {
		return Row{}, &RowError{
			Line: line,
			Msg:  fmt.Sprintf("row has %d output symbols, header declares %d", len(fields), hdr.Outputs),
		}
	}
	var out strings.Builder
	for j, f := range fields {
		if len(f) != 1 {
			return Row{}, &RowError{
				Line: line,
				Msg:  fmt.Sprintf("output symbol %d is %q, want a single character", j, f),
			}
		}
		if !validSymbol(f[0]) {
			return Row{}, &SymbolError{Line: line, Segment: "output", Pos: j, Char: rune(f[0])}
		}
		out.WriteByte(f[0])
	}

	return Row{Pattern: pattern, Outputs: out.String(), Line: line}, nil
}

// validSymbol reports whether c belongs to the pattern alphabet.
func validSymbol(c byte) bool {
	return c == symbolOff || c == symbolOn || c == symbolWild
}
