// SPDX-License-Identifier: MIT
// Package: lvwalk/parser
//
// parser.go — line parsers for the adjacency-list and edge-list text formats.
//
// Formats (UTF-8, line oriented, whitespace separated):
//   • adjacency list: <node> <nbr_1> <nbr_2> ...
//   • edge list:      <u> <v>
// Lines that are blank or start with '#' after trimming are skipped.
//
// Modes:
//   • Checked   — every token must be a non-negative base-10 integer; the
//                 neighbor list is sorted and de-duplicated at parse time.
//   • Unchecked — tokens only need to parse as integers; the neighbor list
//                 is returned exactly as written.

package parser

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Mode selects a parsing strategy.
type Mode int

const (
	// Checked validates tokens and normalises neighbor lists.
	Checked Mode = iota
	// Unchecked trusts the input and keeps neighbor lists raw.
	Unchecked
)

const commentPrefix = "#"

// String returns the config spelling of m.
func (m Mode) String() string {
	switch m {
	case Checked:
		return "checked"
	case Unchecked:
		return "unchecked"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checked", "":
		return Checked, nil
	case "unchecked":
		return Unchecked, nil
	default:
		return Checked, fmt.Errorf("parser: unknown mode %q", s)
	}
}

// Adjacency is one parsed adjacency-list line.
type Adjacency struct {
	Node      int64
	Neighbors []int64
}

// Parser turns a chunk of lines into adjacency records.
// firstLine is the 1-based input line number of lines[0].
type Parser interface {
	Parse(lines []string, firstLine int) ([]Adjacency, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(lines []string, firstLine int) ([]Adjacency, error)

// Parse calls f.
func (f ParserFunc) Parse(lines []string, firstLine int) ([]Adjacency, error) {
	return f(lines, firstLine)
}

// ForMode returns the Parser implementing m.
func ForMode(m Mode) Parser {
	return ParserFunc(func(lines []string, firstLine int) ([]Adjacency, error) {
		return ParseLines(lines, firstLine, m)
	})
}

// ParseLines parses every line, preserving input order. The first malformed
// line aborts the call; no partial result is returned.
func ParseLines(lines []string, firstLine int, m Mode) ([]Adjacency, error) {
	out := make([]Adjacency, 0, len(lines))
	for i, line := range lines {
		rec, ok, err := ParseLine(firstLine+i, line, m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}

	return out, nil
}

// ParseLine parses a single adjacency-list line. ok is false for blank and
// comment lines.
func ParseLine(lineNo int, line string, m Mode) (rec Adjacency, ok bool, err error) {
	fields, ok := splitLine(line)
	if !ok {
		return Adjacency{}, false, nil
	}

	parse := parseChecked
	if m == Unchecked {
		parse = parseRaw
	}

	rec.Node, err = parse(lineNo, fields[0])
	if err != nil {
		return Adjacency{}, false, err
	}
	rec.Neighbors = make([]int64, 0, len(fields)-1)
	for _, tok := range fields[1:] {
		id, err := parse(lineNo, tok)
		if err != nil {
			return Adjacency{}, false, err
		}
		rec.Neighbors = append(rec.Neighbors, id)
	}
	if m == Checked {
		slices.Sort(rec.Neighbors)
		rec.Neighbors = slices.Compact(rec.Neighbors)
	}

	return rec, true, nil
}

// ParseEdge parses a single edge-list line of exactly two checked tokens.
// ok is false for blank and comment lines.
func ParseEdge(lineNo int, line string) (u, v int64, ok bool, err error) {
	fields, ok := splitLine(line)
	if !ok {
		return 0, 0, false, nil
	}
	if len(fields) != 2 {
		return 0, 0, false, &ParseError{
			Line: lineNo,
			Err:  fmt.Errorf("got %d, want 2: %w", len(fields), ErrFieldCount),
		}
	}
	if u, err = parseChecked(lineNo, fields[0]); err != nil {
		return 0, 0, false, err
	}
	if v, err = parseChecked(lineNo, fields[1]); err != nil {
		return 0, 0, false, err
	}

	return u, v, true, nil
}

func splitLine(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil, false
	}

	return strings.Fields(line), true
}

func parseRaw(lineNo int, tok string) (int64, error) {
	id, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Token: tok, Err: err}
	}

	return id, nil
}

func parseChecked(lineNo int, tok string) (int64, error) {
	id, err := parseRaw(lineNo, tok)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, &ParseError{Line: lineNo, Token: tok, Err: ErrNegativeID}
	}

	return id, nil
}
