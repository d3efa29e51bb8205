// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

import (
	"errors"
	"fmt"
)

// ErrInternalInconsistency is reported (via panic) when the source sequence
// underlying a Cursor yields a nil element. The cursor reserves nil as its
// end-of-input sentinel, so a nil element indicates a broken source, not bad
// input.
var ErrInternalInconsistency = errors.New("source yielded a nil element")

// A LexicalError reports an unexpected character in the input, along with its
// rune offset from the start of the input.
type LexicalError struct {
	Ch     rune
	Offset int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unexpected %q (offset %d)", e.Ch, e.Offset)
}

// An UnexpectedEndError reports that the input ended inside an unfinished
// construct, such as an unterminated string or an unclosed object.
type UnexpectedEndError struct {
	Offset int
	While  string // the construct being scanned or parsed
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("unexpected end of input in %s (offset %d)", e.While, e.Offset)
}

// A SyntaxError reports a structural token that did not match the grammar,
// naming the expected alternatives (if any) and the token actually seen.
type SyntaxError struct {
	Offset   int
	Expected string // human-readable label, empty if nothing specific
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected %s (offset %d)", e.Got, e.Offset)
	}
	return fmt.Sprintf("expected %s, got %s (offset %d)", e.Expected, e.Got, e.Offset)
}
