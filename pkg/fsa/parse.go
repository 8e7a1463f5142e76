package fsa

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	u "github.com/araddon/gou"
)

// Parse decodes the line-oriented table format:
//
//	a,b,c      alphabet, in column order
//	1,2,3      transition row for state 0
//	0,2,3      transition row for state 1
//	...
//	{2,3}      accept states in set notation
//
// A specification with fewer than three lines cannot describe a state;
// Parse then returns the degenerate automaton and no error. Non-numeric
// entries, ragged rows and a malformed accept line return an error along
// with the degenerate automaton, never a partially populated one.
func Parse(data []byte) (*Automaton, error) {
	lines := splitLines(data)
	numStates := len(lines) - 2
	if numStates < 1 {
		return &Automaton{}, nil
	}

	alphabet := strings.Split(lines[0], Delimiter)
	table := make([][]int, numStates)
	for i := 1; i <= numStates; i++ {
		entries := strings.Split(lines[i], Delimiter)
		if len(entries) != len(alphabet) {
			return &Automaton{}, fmt.Errorf("state %d has %d transitions, want %d", i-1, len(entries), len(alphabet))
		}
		row := make([]int, len(entries))
		for col, entry := range entries {
			state, err := strconv.Atoi(entry)
			if err != nil {
				return &Automaton{}, fmt.Errorf("state %d, column %d: bad transition %q", i-1, col, entry)
			}
			row[col] = state
		}
		table[i-1] = row
	}

	accepts, err := parseAcceptSet(lines[len(lines)-1])
	if err != nil {
		return &Automaton{}, err
	}
	return New(alphabet, table, accepts), nil
}

// Load reads a table specification from disk. A read or parse failure is
// reported on the error log and yields the degenerate automaton, which
// safely rejects every input; the returned error carries the reason for the
// caller to surface.
func Load(path string) (*Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		u.Errorf("could not read table file %q: %v", path, err)
		return &Automaton{}, fmt.Errorf("read table file: %w", err)
	}
	a, err := Parse(data)
	if err != nil {
		u.Errorf("could not parse table file %q: %v", path, err)
		return a, fmt.Errorf("parse table file %s: %w", path, err)
	}
	return a, nil
}

// parseAcceptSet decodes the {v1,v2,...} footer line. {} is the empty set.
func parseAcceptSet(line string) ([]int, error) {
	if len(line) < 2 || line[0] != '{' || line[len(line)-1] != '}' {
		return nil, fmt.Errorf("bad accept states %q, want {n,n,...}", line)
	}
	body := line[1 : len(line)-1]
	if body == "" {
		return []int{}, nil
	}
	parts := strings.Split(body, Delimiter)
	accepts := make([]int, len(parts))
	for i, part := range parts {
		state, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad accept state %q", part)
		}
		accepts[i] = state
	}
	return accepts, nil
}

// splitLines splits data into lines, dropping the terminator of the final
// line so that "a\nb\n" yields exactly two lines.
func splitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
