// SPDX-License-Identifier: MIT
// Package: lvwalk/parser
//
// errors.go — error types for the text parsers.
//
// Error policy:
//   • Every malformed input surfaces as *ParseError, which carries the 1-based
//     line number and offending token and matches ErrSyntax via errors.Is.
//   • The concrete cause (strconv error, ErrNegativeID, ErrFieldCount) is kept
//     in ParseError.Err and reachable through errors.Is / errors.As.
//   • Neither parser mode skips a bad line.

package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *ParseError.
var ErrSyntax = errors.New("parser: malformed input")

// ErrNegativeID indicates a checked-mode token that parsed to a negative integer.
var ErrNegativeID = errors.New("parser: negative node id")

// ErrFieldCount indicates an edge-list line without exactly two tokens.
var ErrFieldCount = errors.New("parser: wrong number of fields")

// ParseError reports a malformed token on a given input line.
type ParseError struct {
	Line  int    // 1-based input line
	Token string // offending token, empty for field-count errors
	Err   error  // underlying cause
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parser: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parser: line %d: token %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrSyntax.
func (e *ParseError) Is(target error) bool { return target == ErrSyntax }
