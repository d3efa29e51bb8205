// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Comma                  // comma ","
	Colon                  // colon ":"
	Whitespace             // a run of whitespace characters
	Integer                // number: integer with no fraction
	Number                 // number with a fraction
	String                 // quoted string
	True                   // constant: true
	False                  // constant: false
	Null                   // constant: null
)

var kindStr = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Colon:      `":"`,
	Whitespace: "whitespace",
	Integer:    "integer",
	Number:     "number",
	String:     "string",
	True:       "true",
	False:      "false",
	Null:       "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is one lexical unit of the input. A token records its kind, the
// raw (undecoded) text it was scanned from, and the rune offsets of the
// input range it was scanned from. The text may differ in length from the
// input range when the lexer normalizes it, so the offsets are recorded
// rather than derived. Tokens are immutable once emitted by the lexer.
type Token struct {
	kind Kind
	text string
	pos  int
	end  int
}

// Kind returns the kind of t.
func (t Token) Kind() Kind { return t.kind }

// Text returns the raw (undecoded) text of t. String tokens include their
// enclosing quotation marks.
func (t Token) Text() string { return t.text }

// Pos returns the rune offset of the start of t in the input.
func (t Token) Pos() int { return t.pos }

// End returns the rune offset just past the end of t in the input.
func (t Token) End() int { return t.end }

// Span returns the location span of t.
func (t Token) Span() Span { return Span{Pos: t.Pos(), End: t.End()} }

// Int64 returns the value of an Integer token as an int64.
// It panics if t is not an Integer token.
func (t Token) Int64() int64 {
	v, err := strconv.ParseInt(t.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of an Integer or Number token as a float64.
// It panics if t does not carry a numeric value.
func (t Token) Float64() float64 {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Unquote returns the decoded content of a String token.
// It panics if t is not a String token.
func (t Token) Unquote() string {
	dec, err := Unquote(t.text)
	if err != nil {
		panic(err)
	}
	return string(dec)
}

func (t Token) String() string {
	switch t.kind {
	case Integer, Number, String:
		return fmt.Sprintf("%v %s", t.kind, t.text)
	}
	return t.kind.String()
}
