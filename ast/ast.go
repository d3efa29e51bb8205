// Copyright (C) 2025 M. Felsen. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a parser that
// constructs syntax trees from JSON source.
package ast

import (
	"strconv"
	"strings"

	"github.com/mfelsen/jot"
)

// A Value is an arbitrary JSON value.
type Value interface {
	Span() jot.Span

	// JSON renders the value as JSON text.
	JSON() string
}

func newSpan(pos, end int) jot.Span { return jot.Span{Pos: pos, End: end} }

// An Object is an ordered collection of key-value members. Keys are unique;
// member order is the order of first appearance in the source.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() jot.Span { return newSpan(o.pos, o.end) }

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// set adds m to o, or if a member with the same key already exists,
// replaces that member's value in place. The key keeps its original
// position; the last value wins.
func (o *Object) set(m *Member) {
	if old := o.Find(m.Key); old != nil {
		old.Value = m.Value
		old.end = m.end
		return
	}
	o.Members = append(o.Members, m)
}

// A Member is a single key-value pair belonging to an Object. The Key is
// the decoded form of the member's key string.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() jot.Span { return newSpan(m.pos, m.end) }

// JSON satisfies the Value interface.
func (m *Member) JSON() string { return jot.Quote(m.Key) + ":" + m.Value.JSON() }

// An Array is an ordered sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() jot.Span { return newSpan(a.pos, a.end) }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

type datum struct {
	pos, end int
	text     string
}

// Span satisfies the Value interface.
func (d datum) Span() jot.Span { return newSpan(d.pos, d.end) }

// JSON satisfies the Value interface.
func (d datum) JSON() string { return d.text }

// Text returns the raw source text of the datum.
func (d datum) Text() string { return d.text }

// An Integer is an integer value.
type Integer struct{ datum }

// Int64 returns the value of z as an int64.
func (z Integer) Int64() int64 {
	v, err := strconv.ParseInt(z.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// A Number is a floating-point value.
type Number struct{ datum }

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// A String is a string value.
type String struct{ datum }

// Unquote returns the decoded content of s.
func (s String) Unquote() string {
	dec, err := jot.Unquote(s.text)
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// Value reports the truth value of b.
func (b Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{ datum }
