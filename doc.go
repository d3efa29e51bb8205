// Copyright (C) 2025 M. Felsen. All Rights Reserved.

// Package jot implements a JSON lexer built on a one-step lookahead cursor.
//
// # Cursors
//
// The Cursor type is a generic one-step lookahead window over any pull
// sequence (iter.Seq). Construction primes the current element and the
// lookahead eagerly; Advance moves the window forward by one. The lexer
// consumes a Cursor of runes, and the parsers in jot/ast and jot/bind
// consume a Cursor of tokens.
//
// # Lexing
//
// The Lexer type produces lexical tokens on demand. Construct a lexer from
// an input string and call Next to pull tokens one at a time:
//
//	lx := jot.NewLexer(input)
//	for {
//	   tok, err := lx.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Lexing failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Tokens returns the same tokens as a lazy sequence, ending at the end of
// input or at the first error; Err reports which.
//
// Runs of whitespace are reported as single Whitespace tokens so that a
// consumer can filter them without losing offsets. String tokens carry
// their raw text; Unquote decodes it under a narrow escape model in which a
// backslash carries the next character literally and only \" has special
// meaning during the scan. Numbers have no sign or exponent syntax, and a
// fraction with no digits after the decimal point defaults to zero.
//
// Parsing into a generic node tree is provided by the jot/ast package, and
// parsing directly into Go structs by the jot/bind package.
package jot
