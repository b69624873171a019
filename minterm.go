// This file compiles parsed truth-table rows into per-function minterm and
// don't-care index lists.

package main

// A Function holds the compiled index lists for one output column.  Indices
// appear in row order, then expansion order within a row.  Duplicates are
// kept, and two rows may contribute the same index with conflicting output
// symbols; the lists reach the reducer exactly as concatenated, never
// deduplicated or conflict-checked.
type Function struct {
	Minterms  []uint // Indices where the function is asserted
	DontCares []uint // Indices where the function is unconstrained
}

// ExpandPattern expands a compressed input pattern into every concrete row
// index it covers.  A pattern with k wildcards yields exactly 2^k indices.
// The wildcard bits are counted upward with the leftmost wildcard varying
// slowest, which reproduces the order of replacing the first wildcard by 0
// and then by 1, recursively, without the recursion.
func ExpandPattern(pattern string) []uint {
	n := len(pattern)
	var literal uint
	var wilds []int // Bit positions of the wildcards, leftmost first
	for i := 0; i < n; i++ {
		bit := n - 1 - i
		switch pattern[i] {
		case symbolOn:
			literal |= 1 << uint(bit)
		case symbolWild:
			wilds = append(wilds, bit)
		}
	}

	k := len(wilds)
	idxs := make([]uint, 0, 1<<uint(k))
	for c := uint(0); c < 1<<uint(k); c++ {
		v := literal
		for j, bit := range wilds {
			if c&(1<<uint(k-1-j)) != 0 {
				v |= 1 << uint(bit)
			}
		}
		idxs = append(idxs, v)
	}
	return idxs
}

// Compile routes every row's expansion into the minterm or don't-care list
// of each output function.  A 0 symbol contributes the row's indices to
// neither list; absence from both is what marks the function false there.
func Compile(tbl *Table) []Function {
	fns := make([]Function, tbl.Header.Outputs)
	for _, row := range tbl.Rows {
		idxs := ExpandPattern(row.Pattern)
		for j := 0; j < len(row.Outputs); j++ {
			switch row.Outputs[j] {
			case symbolOn:
				fns[j].Minterms = append(fns[j].Minterms, idxs...)
			case symbolWild:
				fns[j].DontCares = append(fns[j].DontCares, idxs...)
			}
		}
	}
	return fns
}
