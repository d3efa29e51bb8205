// Copyright (C) 2025 M. Felsen. All Rights Reserved.

// Package bind parses JSON text directly into instances of Go struct
// types, matching object members to struct fields by name.
//
// The parser walks the same grammar as jot/ast, but carries a target type
// at every recursion point. While descending into an object whose target
// type is known, each member's declared field type decides whether the walk
// recurses into a nested typed value or falls back to a generic ast node
// for that subtree. With no target type, the result is exactly the generic
// tree of jot/ast.
//
// Fields are matched by json tag name, Go field name, or the conventional
// snake_case form of the Go field name. A field tagged with the "required"
// option must be supplied by the input:
//
//	type User struct {
//	   ID    int64  `json:"id,required"`
//	   Name  string `json:"name"`
//	   Notes ast.Value
//	}
//
// Binding assigns parsed values directly to fields; no methods of the
// target type are invoked.
package bind

import (
	"io"
	"reflect"

	"github.com/mfelsen/jot"
	"github.com/mfelsen/jot/ast"
)

// Unmarshal parses input and binds the top-level value to an instance of T.
// It reports a *TypeMismatchError if the parsed result is not a T, a
// *BindingError if a required field of T (or of a nested type) has no
// matching member, and otherwise any lexical or syntax error of the input.
func Unmarshal[T any](input string) (T, error) {
	var zero T
	want := reflect.TypeFor[T]()
	v, err := newParser(input).parseValue(want)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{Want: want, Got: v}
	}
	return out, nil
}

// UnmarshalSlice parses input, whose top-level value must be an array, and
// binds each element to an instance of T.
func UnmarshalSlice[T any](input string) ([]T, error) {
	want := reflect.TypeFor[[]T]()
	v, err := newParser(input).parseValue(want)
	if err != nil {
		return nil, err
	}
	out, ok := v.([]T)
	if !ok {
		return nil, &TypeMismatchError{Want: want, Got: v}
	}
	return out, nil
}

// A parser walks the JSON grammar over a token cursor shared with an
// untyped ast.Parser, which handles every subtree that has no usable
// target type.
type parser struct {
	ast *ast.Parser
	lx  *jot.Lexer
	in  *jot.Cursor[jot.Token]
}

func newParser(input string) *parser {
	lx := jot.NewLexer(input)
	in := jot.NewCursor(ast.Tokens(lx))
	return &parser{ast: ast.NewParserCursor(lx, in), lx: lx, in: in}
}

// parseValue consumes one value. When want names a bindable type and the
// input matches its shape, the result is a bound instance (or slice of
// instances); otherwise the subtree is parsed generically.
func (p *parser) parseValue(want reflect.Type) (any, error) {
	tok, ok := p.in.Current()
	if !ok || want == nil {
		return p.ast.Parse()
	}
	switch want.Kind() {
	case reflect.Struct:
		if tok.Kind() == jot.LBrace {
			return p.parseObject(want)
		}
	case reflect.Pointer:
		if want.Elem().Kind() == reflect.Struct && tok.Kind() == jot.LBrace {
			v, err := p.parseObject(want.Elem())
			if err != nil {
				return nil, err
			}
			pv := reflect.New(want.Elem())
			pv.Elem().Set(reflect.ValueOf(v))
			return pv.Interface(), nil
		}
	case reflect.Slice:
		if _, bindable := bindableType(want); bindable && tok.Kind() == jot.LSquare {
			return p.parseArray(want)
		}
	}
	return p.ast.Parse()
}

// parseObject consumes an object and binds it to an instance of the struct
// type t. Member values whose declared field type is itself bindable are
// parsed with that type as the new target; all others are parsed
// generically and coerced during binding.
// Precondition: the current token is LBrace.
func (p *parser) parseObject(t reflect.Type) (any, error) {
	sch, err := schemaOf(t)
	if err != nil {
		return nil, err
	}
	p.in.Advance() // consume "{"

	var ms members
	tok, err := p.current("object")
	if err != nil {
		return nil, err
	}
	if tok.Kind() == jot.RBrace {
		p.in.Advance()
		return p.finish(sch, &ms)
	}
	for {
		key, err := p.current("object member")
		if err != nil {
			return nil, err
		}
		if key.Kind() != jot.String {
			return nil, &jot.SyntaxError{Offset: key.Pos(), Expected: jot.String.String(), Got: key.String()}
		}
		p.in.Advance()
		if err := p.expect(jot.Colon, "object member"); err != nil {
			return nil, err
		}

		name := key.Unquote()
		var val any
		if ft, ok := sch.memberType(name); ok {
			val, err = p.parseValue(ft)
		} else {
			val, err = p.ast.Parse()
		}
		if err != nil {
			return nil, err
		}
		ms.set(name, val)

		next, err := p.current("object")
		if err != nil {
			return nil, err
		}
		switch next.Kind() {
		case jot.Comma:
			p.in.Advance()
		case jot.RBrace:
			p.in.Advance()
			return p.finish(sch, &ms)
		default:
			return nil, &jot.SyntaxError{Offset: next.Pos(), Expected: `"," or "}"`, Got: next.String()}
		}
	}
}

func (p *parser) finish(sch *schema, ms *members) (any, error) {
	rv, err := sch.bind(ms)
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}

// parseArray consumes an array into a slice of t's element type, binding
// each element.
// Precondition: the current token is LSquare.
func (p *parser) parseArray(t reflect.Type) (any, error) {
	p.in.Advance() // consume "["
	out := reflect.MakeSlice(t, 0, 0)

	tok, err := p.current("array")
	if err != nil {
		return nil, err
	}
	if tok.Kind() == jot.RSquare {
		p.in.Advance()
		return out.Interface(), nil
	}
	for {
		v, err := p.parseValue(t.Elem())
		if err != nil {
			return nil, err
		}
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || !rv.Type().AssignableTo(t.Elem()) {
			return nil, &TypeMismatchError{Want: t.Elem(), Got: v}
		}
		out = reflect.Append(out, rv)

		next, err := p.current("array")
		if err != nil {
			return nil, err
		}
		switch next.Kind() {
		case jot.Comma:
			p.in.Advance()
		case jot.RSquare:
			p.in.Advance()
			return out.Interface(), nil
		default:
			return nil, &jot.SyntaxError{Offset: next.Pos(), Expected: `"," or "]"`, Got: next.String()}
		}
	}
}

// current and expect mirror the untyped parser's expectation points; see
// ast.Parser for the error policy.
func (p *parser) current(while string) (jot.Token, error) {
	tok, ok := p.in.Current()
	if !ok {
		if err := p.lx.Err(); err != nil && err != io.EOF {
			return jot.Token{}, err
		}
		end := 0
		if h := p.in.History(); len(h) > 0 {
			end = h[len(h)-1].End()
		}
		return jot.Token{}, &jot.UnexpectedEndError{Offset: end, While: while}
	}
	return tok, nil
}

func (p *parser) expect(kind jot.Kind, while string) error {
	tok, err := p.current(while)
	if err != nil {
		return err
	}
	if tok.Kind() != kind {
		return &jot.SyntaxError{Offset: tok.Pos(), Expected: kind.String(), Got: tok.String()}
	}
	p.in.Advance()
	return nil
}
