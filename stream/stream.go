// Package stream runs automata over incremental input sources.
//
// The streaming API evaluates a table-driven automaton on arbitrarily large
// inputs (files, network streams) with constant memory usage: only the
// current state is carried between reads.
//
// Example usage:
//
//	file, _ := os.Open("input.txt")
//	defer file.Close()
//
//	accepted, err := stream.Process(automaton, file)
package stream

import (
	"bufio"
	"io"

	"github.com/tablefsa/tablefsa/pkg/fsa"
)

// Runner feeds symbols through an automaton one at a time, carrying the
// current state between calls. The zero memory cost per symbol makes it
// suitable for inputs that never fit in memory. A Runner is not safe for
// concurrent use; the automaton behind it is.
type Runner struct {
	a     *fsa.Automaton
	state int
}

// NewRunner returns a runner positioned at the start state.
func NewRunner(a *fsa.Automaton) *Runner {
	return &Runner{a: a, state: fsa.StartState}
}

// Feed consumes a single symbol. Unknown symbols leave the state unchanged,
// matching the automaton's transition contract.
func (r *Runner) Feed(symbol string) {
	r.state = r.a.NextState(r.state, symbol)
}

// FeedString consumes every rune of s in order.
func (r *Runner) FeedString(s string) {
	for _, c := range s {
		r.Feed(string(c))
	}
}

// State returns the state reached by the input consumed so far.
func (r *Runner) State() int {
	return r.state
}

// Accepted reports whether the input consumed so far ends in an accept state.
func (r *Runner) Accepted() bool {
	return r.a.IsAccept(r.state)
}

// Reset returns the runner to the start state.
func (r *Runner) Reset() {
	r.state = fsa.StartState
}

// Process drains r rune by rune and reports whether the automaton accepts
// the complete input. A read error other than io.EOF aborts the evaluation
// and is returned as-is.
func Process(a *fsa.Automaton, r io.Reader) (bool, error) {
	run := NewRunner(a)
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			return run.Accepted(), nil
		}
		if err != nil {
			return false, err
		}
		run.Feed(string(c))
	}
}
