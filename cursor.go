// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

import (
	"fmt"
	"iter"
	"reflect"
)

// A Cursor is a one-step lookahead window over a single-pass sequence.
// Construction eagerly draws two elements from the source to prime the
// current element and the lookahead; each subsequent Advance draws one more.
//
// The source must never yield a nil element: nil is reserved as the cursor's
// exhaustion sentinel, and a source that produces one trips a panic carrying
// [ErrInternalInconsistency].
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()

	cur, ahead     T
	curOK, aheadOK bool

	pos  int // number of advances performed
	seen []T // every element drawn from the source, for diagnostics
}

// NewCursor constructs a Cursor over the elements of seq.
func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	c := &Cursor[T]{next: next, stop: stop}
	c.cur, c.curOK = c.draw()
	c.ahead, c.aheadOK = c.draw()
	return c
}

// Current returns the element under the cursor, or false if the sequence is
// exhausted.
func (c *Cursor[T]) Current() (T, bool) { return c.cur, c.curOK }

// Peek returns the element one position ahead of the cursor, or false if no
// such element exists.
func (c *Cursor[T]) Peek() (T, bool) { return c.ahead, c.aheadOK }

// Advance moves the window forward by one element. Advancing past the end of
// the sequence is a no-op apart from the position count.
func (c *Cursor[T]) Advance() {
	c.cur, c.curOK = c.ahead, c.aheadOK
	c.ahead, c.aheadOK = c.draw()
	c.pos++
}

// Position reports the number of advances performed, which is also the index
// of the current element in the source sequence.
func (c *Cursor[T]) Position() int { return c.pos }

// History returns every element drawn from the source so far, including the
// primed lookahead. It is intended only for diagnostics such as error
// reporting; the log grows without bound over the life of the cursor, which
// is acceptable because inputs are whole in-memory documents.
func (c *Cursor[T]) History() []T { return c.seen }

func (c *Cursor[T]) draw() (T, bool) {
	v, ok := c.next()
	if !ok {
		c.stop()
		var zero T
		return zero, false
	}
	if isNilElem(v) {
		panic(fmt.Errorf("cursor element %d: %w", len(c.seen), ErrInternalInconsistency))
	}
	c.seen = append(c.seen, v)
	return v, true
}

// isNilElem reports whether v is a nil value of a nilable kind.
func isNilElem(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	}
	return false
}

// Runes returns the sequence of runes in s, suitable for driving a Cursor.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
