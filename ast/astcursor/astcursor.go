// Copyright (C) 2025 M. Felsen. All Rights Reserved.

// Package astcursor implements traversal over the syntax tree of a JSON
// value.
package astcursor

import (
	"fmt"

	"github.com/mfelsen/jot"
	"github.com/mfelsen/jot/ast"
)

// Path traverses a sequential path into the structure of v and returns the
// value it reaches, which must have type T. Path elements are as documented
// for the Cursor.Down method.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a movable pointer into the structure of an ast.Value. A cursor
// records the sequence of values between its origin and its current location,
// so that traversal can back out with Up after descending with Down.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Span reports the input location of the current value under the cursor.
func (c *Cursor) Span() jot.Span { return c.Value().Span() }

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current value. If the whole path resolves, the cursor stops on the
// value it reaches; otherwise traversal stops where resolution failed and
// the error is recorded for Err. It returns c to permit chaining.
//
// A string path element resolves a member of an object by key, and the
// cursor stops on the member itself. Traversal through a member continues
// from its value, so a string as the last path element lands on the member;
// append a nil element to indirect through to its value.
//
// An int path element resolves an element of an array, or a member of an
// object, by position. Negative indices count backward from the end (-1 is
// last, -2 second last).
//
// A path element of type func(ast.Value) (ast.Value, error) is applied to
// the current value, and its result becomes the next value in the sequence.
// If the function reports an error, traversal stops with that error.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		if err := c.step(elt); err != nil {
			c.err = err
			return c
		}
	}
	return c
}

// step resolves a single path element against the current value and pushes
// the value it reaches.
func (c *Cursor) step(elt any) error {
	cur := c.Value()

	// A step that ended on an object member resolves the next path element
	// against the value of that member.
	if m, ok := cur.(*ast.Member); ok {
		cur = c.push(m.Value)
	}

	switch t := elt.(type) {
	case string:
		return c.stepKey(cur, t)
	case int:
		return c.stepIndex(cur, t)
	case func(ast.Value) (ast.Value, error):
		next, err := t(cur)
		if err != nil {
			return err
		}
		c.push(next)
	case nil:
		// Nothing to resolve. This case supports indirecting through a
		// member at the end of a path.
	default:
		return fmt.Errorf("invalid path element %T", elt)
	}
	return nil
}

func (c *Cursor) stepKey(cur ast.Value, key string) error {
	obj, ok := cur.(*ast.Object)
	if !ok {
		return fmt.Errorf("cannot traverse %T with %q", cur, key)
	}
	m := obj.Find(key)
	if m == nil {
		return fmt.Errorf("key %q not found", key)
	}
	c.push(m)
	return nil
}

func (c *Cursor) stepIndex(cur ast.Value, idx int) error {
	switch t := cur.(type) {
	case *ast.Array:
		i, ok := wrapBound(t.Len(), idx)
		if !ok {
			return fmt.Errorf("array index %d out of bounds (n=%d)", idx, t.Len())
		}
		c.push(t.Values[i])
	case *ast.Object:
		i, ok := wrapBound(t.Len(), idx)
		if !ok {
			return fmt.Errorf("object index %d out of bounds (n=%d)", idx, t.Len())
		}
		c.push(t.Members[i])
	default:
		return fmt.Errorf("cannot traverse %T with %v", cur, idx)
	}
	return nil
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

// wrapBound maps a possibly-negative index into [0, n), reporting whether
// the result is in bounds.
func wrapBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
