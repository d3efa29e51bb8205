// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

import (
	"io"
	"iter"
	"strings"

	"go4.org/mem"
)

// A Lexer reads lexical tokens from a cursor over input runes. Each call to
// Next produces the next token of the input, or reports an error. Tokens are
// produced only on demand; the input is consumed in a single pass.
type Lexer struct {
	in  *Cursor[rune]
	err error
}

// NewLexer constructs a Lexer that consumes the runes of input.
func NewLexer(input string) *Lexer { return NewLexerCursor(NewCursor(Runes(input))) }

// NewLexerCursor constructs a Lexer that consumes input from in.
func NewLexerCursor(in *Cursor[rune]) *Lexer { return &Lexer{in: in} }

// Next returns the next token of the input. At the end of the input, Next
// returns io.EOF. A malformed token is reported as a *LexicalError or
// *UnexpectedEndError.
func (l *Lexer) Next() (Token, error) {
	ch, ok := l.in.Current()
	if !ok {
		return Token{}, l.setErr(io.EOF)
	}
	pos := l.in.Position()

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		l.in.Advance()
		return Token{kind: k, text: string(ch), pos: pos, end: l.in.Position()}, nil
	}

	// Collapse a run of whitespace into a single token.
	if isSpace(ch) {
		return l.scanSpace(pos), nil
	}

	// Handle string values.
	if ch == '"' {
		return l.scanString(pos)
	}

	// Handle numbers.
	if isDigit(ch) {
		return l.scanNumber(pos), nil
	}

	// Handle constants: true, false, null. The first rune selects the
	// constant; the rest must match its fixed suffix exactly.
	switch ch {
	case 't':
		return l.scanConstant(pos, True, mem.S("rue"))
	case 'f':
		return l.scanConstant(pos, False, mem.S("alse"))
	case 'n':
		return l.scanConstant(pos, Null, mem.S("ull"))
	}
	return Token{}, l.setErr(&LexicalError{Ch: ch, Offset: pos})
}

// Tokens returns a lazy, single-pass sequence of the remaining tokens of the
// input. The sequence ends at the end of input or at the first lexical
// error; call Err to distinguish the two.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Err returns the error that ended the token sequence: io.EOF after a
// complete scan, or the first lexical error encountered.
func (l *Lexer) Err() error { return l.err }

// Position reports the rune offset of the lexer in its input.
func (l *Lexer) Position() int { return l.in.Position() }

func (l *Lexer) setErr(err error) error {
	l.err = err
	return err
}

func (l *Lexer) scanSpace(pos int) Token {
	var sb strings.Builder
	for {
		ch, ok := l.in.Current()
		if !ok || !isSpace(ch) {
			return Token{kind: Whitespace, text: sb.String(), pos: pos, end: l.in.Position()}
		}
		sb.WriteRune(ch)
		l.in.Advance()
	}
}

// scanString scans a quoted string. The only escape sequence with special
// meaning is \", which keeps the scan going past the quote; any other rune
// after a backslash is carried literally. Decoding happens later, in
// Token.Unquote.
func (l *Lexer) scanString(pos int) (Token, error) {
	var sb strings.Builder
	open, _ := l.in.Current()
	sb.WriteRune(open)
	l.in.Advance()

	var esc bool
	for {
		ch, ok := l.in.Current()
		if !ok {
			return Token{}, l.setErr(&UnexpectedEndError{Offset: l.in.Position(), While: "string"})
		}
		sb.WriteRune(ch)
		l.in.Advance()
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == open {
			return Token{kind: String, text: sb.String(), pos: pos, end: l.in.Position()}, nil
		}
	}
}

// scanNumber scans a run of digits, and a fractional part if a decimal point
// follows. A dot with no digits after it gets a fractional part of "0".
// There is no sign or exponent syntax; a "-" or "e" in the input surfaces as
// a lexical error when the lexer reaches it.
func (l *Lexer) scanNumber(pos int) Token {
	var sb strings.Builder
	l.digits(&sb)

	if ch, ok := l.in.Current(); !ok || ch != '.' {
		return Token{kind: Integer, text: sb.String(), pos: pos, end: l.in.Position()}
	}
	sb.WriteRune('.')
	l.in.Advance()

	// A bare trailing dot gets a default fraction of "0". The token text is
	// then longer than its input range, so end comes from the cursor.
	if n := l.digits(&sb); n == 0 {
		sb.WriteRune('0')
	}
	return Token{kind: Number, text: sb.String(), pos: pos, end: l.in.Position()}
}

// digits consumes a run of digits into sb, reporting how many were consumed.
func (l *Lexer) digits(sb *strings.Builder) int {
	var n int
	for {
		ch, ok := l.in.Current()
		if !ok || !isDigit(ch) {
			return n
		}
		sb.WriteRune(ch)
		l.in.Advance()
		n++
	}
}

func (l *Lexer) scanConstant(pos int, kind Kind, suffix mem.RO) (Token, error) {
	var sb strings.Builder
	first, _ := l.in.Current()
	sb.WriteRune(first)
	l.in.Advance()

	for i := 0; i < suffix.Len(); i++ {
		ch, ok := l.in.Current()
		if !ok {
			return Token{}, l.setErr(&UnexpectedEndError{Offset: l.in.Position(), While: kind.String()})
		}
		if ch != rune(suffix.At(i)) {
			return Token{}, l.setErr(&LexicalError{Ch: ch, Offset: l.in.Position()})
		}
		sb.WriteRune(ch)
		l.in.Advance()
	}
	return Token{kind: kind, text: sb.String(), pos: pos, end: l.in.Position()}, nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
