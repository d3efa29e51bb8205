// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package ast

import (
	"io"
	"iter"
	"strings"

	"github.com/mfelsen/jot"
)

// Parse parses one JSON value from input. Parsing stops once a complete
// value has been consumed; any input after it is ignored.
func Parse(input string) (Value, error) {
	return NewParser(input).Parse()
}

// Tokens returns the significant tokens of lx, dropping whitespace markers.
func Tokens(lx *jot.Lexer) iter.Seq[jot.Token] {
	return func(yield func(jot.Token) bool) {
		for tok := range lx.Tokens() {
			if tok.Kind() == jot.Whitespace {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// A Parser is a recursive-descent parser over a lookahead cursor of tokens.
// Each call to Parse consumes one complete value from the cursor.
type Parser struct {
	lx *jot.Lexer
	in *jot.Cursor[jot.Token]
}

// NewParser constructs a Parser that consumes the text of input.
func NewParser(input string) *Parser {
	lx := jot.NewLexer(input)
	return NewParserCursor(lx, jot.NewCursor(Tokens(lx)))
}

// NewParserCursor constructs a Parser that consumes tokens from in, with lx
// the lexer feeding in. The lexer is consulted to distinguish a lexical
// error from a plain end of input when the cursor is exhausted.
func NewParserCursor(lx *jot.Lexer, in *jot.Cursor[jot.Token]) *Parser {
	return &Parser{lx: lx, in: in}
}

// Parse consumes one value of any kind from the token cursor.
//
// Structural tokens are consumed by the production that matches them;
// scalar values are consumed here, by advancing past the token after its
// value is taken. This split keeps each token consumed exactly once.
func (p *Parser) Parse() (Value, error) {
	tok, err := p.current("value")
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case jot.LBrace:
		return p.parseObject()
	case jot.LSquare:
		return p.parseArray()
	case jot.String:
		p.in.Advance()
		return String{p.datumOf(tok)}, nil
	case jot.Integer:
		p.in.Advance()
		return Integer{p.datumOf(tok)}, nil
	case jot.Number:
		p.in.Advance()
		return Number{p.datumOf(tok)}, nil
	case jot.True, jot.False:
		p.in.Advance()
		return Bool{datum: p.datumOf(tok), value: tok.Kind() == jot.True}, nil
	case jot.Null:
		p.in.Advance()
		return Null{p.datumOf(tok)}, nil
	default:
		return nil, &jot.SyntaxError{Offset: tok.Pos(), Got: tok.String()}
	}
}

func (p *Parser) datumOf(tok jot.Token) datum {
	return datum{pos: tok.Pos(), end: tok.End(), text: tok.Text()}
}

// parseObject consumes an object.
// Precondition: the current token is LBrace.
func (p *Parser) parseObject() (Value, error) {
	open, _ := p.in.Current()
	p.in.Advance()
	obj := &Object{pos: open.Pos()}

	tok, err := p.current("object")
	if err != nil {
		return nil, err
	}
	if tok.Kind() == jot.RBrace {
		p.in.Advance()
		obj.end = tok.End()
		return obj, nil
	}
	for {
		key, err := p.expect(jot.String, "object member")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(jot.Colon, "object member"); err != nil {
			return nil, err
		}
		val, err := p.Parse()
		if err != nil {
			return nil, err
		}
		obj.set(&Member{pos: key.Pos(), end: val.Span().End, Key: key.Unquote(), Value: val})

		// Check whether we have more members (",") or are done ("}").
		next, err := p.current("object")
		if err != nil {
			return nil, err
		}
		switch next.Kind() {
		case jot.Comma:
			p.in.Advance()
		case jot.RBrace:
			p.in.Advance()
			obj.end = next.End()
			return obj, nil
		default:
			return nil, &jot.SyntaxError{
				Offset:   next.Pos(),
				Expected: kindLabel(jot.Comma, jot.RBrace),
				Got:      next.String(),
			}
		}
	}
}

// parseArray consumes an array.
// Precondition: the current token is LSquare.
func (p *Parser) parseArray() (Value, error) {
	open, _ := p.in.Current()
	p.in.Advance()
	arr := &Array{pos: open.Pos()}

	tok, err := p.current("array")
	if err != nil {
		return nil, err
	}
	if tok.Kind() == jot.RSquare {
		p.in.Advance()
		arr.end = tok.End()
		return arr, nil
	}
	for {
		v, err := p.Parse()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		next, err := p.current("array")
		if err != nil {
			return nil, err
		}
		switch next.Kind() {
		case jot.Comma:
			p.in.Advance()
		case jot.RSquare:
			p.in.Advance()
			arr.end = next.End()
			return arr, nil
		default:
			return nil, &jot.SyntaxError{
				Offset:   next.Pos(),
				Expected: kindLabel(jot.Comma, jot.RSquare),
				Got:      next.String(),
			}
		}
	}
}

// current returns the token under the cursor, or the error that ended the
// token stream: the lexer's error if it failed, otherwise an unexpected end
// of input inside the named construct.
func (p *Parser) current(while string) (jot.Token, error) {
	tok, ok := p.in.Current()
	if !ok {
		if err := p.lx.Err(); err != nil && err != io.EOF {
			return jot.Token{}, err
		}
		return jot.Token{}, &jot.UnexpectedEndError{Offset: p.lastEnd(), While: while}
	}
	return tok, nil
}

// expect consumes and returns a token of the given kind, or reports a
// syntax error naming the expected and actual tokens.
func (p *Parser) expect(kind jot.Kind, while string) (jot.Token, error) {
	tok, err := p.current(while)
	if err != nil {
		return jot.Token{}, err
	}
	if tok.Kind() != kind {
		return jot.Token{}, &jot.SyntaxError{Offset: tok.Pos(), Expected: kind.String(), Got: tok.String()}
	}
	p.in.Advance()
	return tok, nil
}

// lastEnd reports the end offset of the last token drawn from the input,
// for positioning end-of-input errors.
func (p *Parser) lastEnd() int {
	if h := p.in.History(); len(h) > 0 {
		return h[len(h)-1].End()
	}
	return 0
}

func kindLabel(kinds ...jot.Kind) string {
	var sb strings.Builder
	for i, k := range kinds {
		if i == len(kinds)-1 && i > 0 {
			sb.WriteString(" or ")
		} else if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.String())
	}
	return sb.String()
}
