// Package fsa implements a table-driven deterministic finite-state automaton.
//
// An automaton owns an ordered alphabet, a rectangular state transition table
// and a set of accept states. States are identified by consecutive
// non-negative integers; state 0 is the start state. The alphabet's order
// defines the table's column order. An automaton is immutable after
// construction and safe to share across goroutines.
package fsa

import (
	"strconv"
	"strings"
)

// StartState is the state every evaluation begins in.
const StartState = 0

// Delimiter separates alphabet symbols and transition entries in the
// textual table format.
const Delimiter = ","

// Automaton is a table-driven finite-state automaton.
//
// The zero value is the degenerate automaton: it has no alphabet, no table
// and no accept states, rejects every input, and every NextState call
// returns its input state unchanged.
type Automaton struct {
	alphabet []string
	table    [][]int
	accepts  []int
}

// New builds an automaton from an ordered alphabet, a transition table with
// one row per state, and the accept states. The inputs are copied; the
// caller keeps ownership of its slices.
//
// If the inputs do not describe at least one state with at least one symbol,
// New returns the degenerate automaton.
func New(alphabet []string, table [][]int, accepts []int) *Automaton {
	if len(alphabet) == 0 || len(table) == 0 {
		return &Automaton{}
	}
	a := &Automaton{
		alphabet: append([]string(nil), alphabet...),
		table:    make([][]int, len(table)),
		accepts:  make([]int, len(accepts)),
	}
	for i, row := range table {
		a.table[i] = append([]int(nil), row...)
	}
	copy(a.accepts, accepts)
	return a
}

// NextState returns the state reached from currentState upon reading symbol,
// according to the transition table. An unknown symbol or an out-of-range
// state is never an error: the call is a no-op and currentState comes back
// unchanged.
func (a *Automaton) NextState(currentState int, symbol string) int {
	col := -1
	for i, sym := range a.alphabet {
		if sym == symbol {
			col = i
		}
	}
	// The guard compares currentState against the column count of the first
	// row; that comparison is part of the established table-format contract.
	// States it lets through that still exceed the row count, and ragged
	// rows shorter than the alphabet, resolve to a no-op below rather than
	// indexing past the table.
	if col == -1 || len(a.table[0]) < currentState || currentState <= -1 {
		return currentState
	}
	if currentState >= len(a.table) {
		return currentState
	}
	row := a.table[currentState]
	if col >= len(row) {
		return currentState
	}
	return row[col]
}

// ProcessString runs input through the automaton one rune at a time,
// starting from the start state, and reports whether the automaton ends in
// an accept state. The empty string performs no transitions, so it is
// accepted exactly when the start state itself is accepting.
func (a *Automaton) ProcessString(input string) bool {
	state := StartState
	for _, c := range input {
		state = a.NextState(state, string(c))
	}
	return a.IsAccept(state)
}

// Process runs an explicit symbol sequence through the automaton. A nil
// slice is the absent input and behaves like the empty sequence.
func (a *Automaton) Process(symbols []string) bool {
	state := StartState
	for _, sym := range symbols {
		state = a.NextState(state, sym)
	}
	return a.IsAccept(state)
}

// IsAccept reports whether state is one of the accept states.
func (a *Automaton) IsAccept(state int) bool {
	for _, acc := range a.accepts {
		if state == acc {
			return true
		}
	}
	return false
}

// NumStates returns the number of states, which is the number of rows in
// the transition table. The degenerate automaton has zero states.
func (a *Automaton) NumStates() int {
	return len(a.table)
}

// Alphabet returns a copy of the alphabet in column order.
func (a *Automaton) Alphabet() []string {
	return append([]string(nil), a.alphabet...)
}

// Table returns a copy of the transition table.
func (a *Automaton) Table() [][]int {
	table := make([][]int, len(a.table))
	for i, row := range a.table {
		table[i] = append([]int(nil), row...)
	}
	return table
}

// AcceptStates returns a copy of the accept states in declaration order.
func (a *Automaton) AcceptStates() []int {
	return append([]int(nil), a.accepts...)
}

// String renders the automaton in the same line-oriented textual format
// Parse consumes: the alphabet line, one comma-delimited row per state, and
// the accept states in set notation, each line newline-terminated. The
// degenerate automaton renders as the empty string, and for any well-formed
// specification Parse(s).String() == s.
func (a *Automaton) String() string {
	var b strings.Builder
	if len(a.alphabet) > 0 {
		b.WriteString(strings.Join(a.alphabet, Delimiter))
		b.WriteByte('\n')
	}
	for _, row := range a.table {
		for i, next := range row {
			if i > 0 {
				b.WriteString(Delimiter)
			}
			b.WriteString(strconv.Itoa(next))
		}
		b.WriteByte('\n')
	}
	if len(a.table) > 0 {
		b.WriteByte('{')
		for i, acc := range a.accepts {
			if i > 0 {
				b.WriteString(Delimiter)
			}
			b.WriteString(strconv.Itoa(acc))
		}
		b.WriteString("}\n")
	}
	return b.String()
}
