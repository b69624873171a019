package main

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	cases := []struct {
		name    string
		table   string
		inputs  int
		outputs int
	}{
		{"single output", "a b | Q0", 2, 1},
		{"two outputs", "a b c | Q0 Q1", 3, 2},
		{"tight separator", "a b c|Q0", 3, 1},
		{"extra spacing", "  a   b  |  Q0   Q1  Q2 ", 2, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tbl, err := ParseTable(strings.NewReader(c.table + "\n"))
			if err != nil {
				t.Fatalf("parse table: %v", err)
			}
			if tbl.Header.Inputs != c.inputs {
				t.Fatalf("unexpected input count: got %d, want %d", tbl.Header.Inputs, c.inputs)
			}
			if tbl.Header.Outputs != c.outputs {
				t.Fatalf("unexpected output count: got %d, want %d", tbl.Header.Outputs, c.outputs)
			}
			if len(tbl.Rows) != 0 {
				t.Fatalf("header-only table produced %d rows", len(tbl.Rows))
			}
		})
	}
}

func TestParseHeaderMalformed(t *testing.T) {
	cases := []struct {
		name  string
		table string
	}{
		{"no separator", "a b Q0"},
		{"two separators", "a | b | Q0"},
		{"empty input segment", " | Q0"},
		{"empty output segment", "a b | "},
		{"empty table", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(c.table))
			if !errors.Is(err, ErrMalformedHeader) {
				t.Fatalf("expected a malformed-header error, got %v", err)
			}
		})
	}
}

func TestParseRows(t *testing.T) {
	table := "a b c d | Q0 Q1\n" +
		"0 1 x 0 | 1 x\n" +
		"\n" +
		"1111 | 0 0\n"
	tbl, err := ParseTable(strings.NewReader(table))
	if err != nil {
		t.Fatalf("parse table: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("unexpected row count: got %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[0].Pattern != "01x0" {
		t.Fatalf("grouped input pattern not collapsed: %q", tbl.Rows[0].Pattern)
	}
	if tbl.Rows[0].Outputs != "1x" {
		t.Fatalf("unexpected output symbols: %q", tbl.Rows[0].Outputs)
	}
	if tbl.Rows[0].Line != 2 || tbl.Rows[1].Line != 4 {
		t.Fatalf("unexpected line numbers: %d, %d", tbl.Rows[0].Line, tbl.Rows[1].Line)
	}
	if tbl.Rows[1].Pattern != "1111" || tbl.Rows[1].Outputs != "00" {
		t.Fatalf("unexpected second row: %+v", tbl.Rows[1])
	}
}

func TestParseRowMalformed(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"missing separator", "0 0 1"},
		{"extra separator", "0 0 | 1 | 0"},
		{"short input pattern", "0 | 1"},
		{"long input pattern", "0 0 0 | 1"},
		{"missing output symbol", "0 0 |"},
		{"extra output symbol", "0 0 | 1 0"},
		{"multi-character output token", "0 0 | 10"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader("a b | Q0\n" + c.row + "\n"))
			if !errors.Is(err, ErrMalformedRow) {
				t.Fatalf("expected a malformed-row error, got %v", err)
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected a *RowError, got %T", err)
			}
			if rowErr.Line != 2 {
				t.Fatalf("unexpected line number: got %d, want 2", rowErr.Line)
			}
		})
	}
}

func TestParseRowInvalidSymbol(t *testing.T) {
	cases := []struct {
		name    string
		row     string
		segment string
		pos     int
		char    rune
	}{
		{"digit out of alphabet", "2 0 | 1", "input", 0, '2'},
		{"uppercase wildcard", "0 X | 1", "input", 1, 'X'},
		{"bad output symbol", "0 0 | q", "output", 0, 'q'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader("a b | Q0\n" + c.row + "\n"))
			if !errors.Is(err, ErrInvalidSymbol) {
				t.Fatalf("expected an invalid-symbol error, got %v", err)
			}
			var symErr *SymbolError
			if !errors.As(err, &symErr) {
				t.Fatalf("expected a *SymbolError, got %T", err)
			}
			if symErr.Line != 2 {
				t.Fatalf("unexpected line number: got %d, want 2", symErr.Line)
			}
			if symErr.Segment != c.segment || symErr.Pos != c.pos || symErr.Char != c.char {
				t.Fatalf("unexpected fault location: %+v", symErr)
			}
		})
	}
}

func TestParseAbortsOnFirstBadRow(t *testing.T) {
	table := "a b | Q0\n" +
		"0 0 | 1\n" +
		"0 1 | 1 0\n" + // Wrong output count
		"1 1 | 1\n"
	tbl, err := ParseTable(strings.NewReader(table))
	if err == nil {
		t.Fatalf("expected an error, got table with %d rows", len(tbl.Rows))
	}
	if tbl != nil {
		t.Fatalf("expected no partial table on error")
	}
}
