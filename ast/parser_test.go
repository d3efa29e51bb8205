// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/mfelsen/jot"
	"github.com/mfelsen/jot/ast"
)

func mustParse(t *testing.T, input string) ast.Value {
	t.Helper()
	v, err := ast.Parse(input)
	if err != nil {
		t.Fatalf("Parse %#q: %v", input, err)
	}
	return v
}

func TestParseScalars(t *testing.T) {
	if _, ok := mustParse(t, "null").(ast.Null); !ok {
		t.Error("Parse null: not a Null")
	}
	if b, ok := mustParse(t, "true").(ast.Bool); !ok || !b.Value() {
		t.Error("Parse true: not Bool(true)")
	}
	if b, ok := mustParse(t, "false").(ast.Bool); !ok || b.Value() {
		t.Error("Parse false: not Bool(false)")
	}
	if z, ok := mustParse(t, "42").(ast.Integer); !ok || z.Int64() != 42 {
		t.Error("Parse 42: not Integer(42)")
	}
	if n, ok := mustParse(t, "4.50").(ast.Number); !ok || n.Float64() != 4.5 {
		t.Error("Parse 4.50: not Number(4.5)")
	}
	if s, ok := mustParse(t, `"a\"b"`).(ast.String); !ok || s.Unquote() != `a"b` {
		t.Error(`Parse "a\"b": wrong string value`)
	}
}

func TestParseComposites(t *testing.T) {
	if o, ok := mustParse(t, "{}").(*ast.Object); !ok || o.Len() != 0 {
		t.Error("Parse {}: not an empty object")
	}
	if a, ok := mustParse(t, "[]").(*ast.Array); !ok || a.Len() != 0 {
		t.Error("Parse []: not an empty array")
	}

	a, ok := mustParse(t, "[1,2,3]").(*ast.Array)
	if !ok {
		t.Fatal("Parse [1,2,3]: not an array")
	}
	var got []int64
	for _, v := range a.Values {
		got = append(got, v.(ast.Integer).Int64())
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
		t.Errorf("Elements: (-want, +got)\n%s", diff)
	}
}

func TestParseObject(t *testing.T) {
	v := mustParse(t, `{"name": "apple", "count": 3, "tags": ["red", "fruit"], "detail": {"mass": 0.3}}`)
	root, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	if m := root.Find("name"); m == nil {
		t.Error(`Key "name" not found`)
	} else if s := m.Value.(ast.String).Unquote(); s != "apple" {
		t.Errorf("Name: got %q, want apple", s)
	}
	if m := root.Find("tags"); m == nil {
		t.Error(`Key "tags" not found`)
	} else if a := m.Value.(*ast.Array); a.Len() != 2 {
		t.Errorf("Tags: got %d elements, want 2", a.Len())
	}
	if m := root.Find("detail"); m == nil {
		t.Error(`Key "detail" not found`)
	} else if o := m.Value.(*ast.Object); o.Find("mass") == nil {
		t.Error(`Key "detail.mass" not found`)
	}
	if root.Find("nonesuch") != nil {
		t.Error("Find nonesuch: unexpectedly found")
	}
}

func TestMemberOrder(t *testing.T) {
	v := mustParse(t, `{"c": 1, "a": 2, "b": 3}`)
	var keys []string
	for _, m := range v.(*ast.Object).Members {
		keys = append(keys, m.Key)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, keys); diff != "" {
		t.Errorf("Member order: (-want, +got)\n%s", diff)
	}
}

func TestDuplicateKeys(t *testing.T) {
	// The last value wins, and the key keeps its first-seen position.
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)
	obj := v.(*ast.Object)
	if obj.Len() != 2 {
		t.Fatalf("Got %d members, want 2", obj.Len())
	}
	if key := obj.Members[0].Key; key != "a" {
		t.Errorf("First member: got %q, want a", key)
	}
	if got := obj.Find("a").Value.(ast.Integer).Int64(); got != 3 {
		t.Errorf("Value of a: got %d, want 3", got)
	}
}

func TestTrailingInput(t *testing.T) {
	// Parsing stops after one complete value; the rest is not examined.
	v, err := ast.Parse(`[1, 2] this is not JSON`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a, ok := v.(*ast.Array); !ok || a.Len() != 2 {
		t.Errorf("Got %v, want a 2-element array", v)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		tests := []string{
			`{"x": 1,}`,  // member key must be a string
			`{x: 1}`,     // ditto
			`{"x" 1}`,    // missing colon
			`[1 2]`,      // missing comma
			`,`,          // bare punctuation
			`{"a": 1]`,   // mismatched close
		}
		for _, input := range tests {
			_, err := ast.Parse(input)
			var serr *jot.SyntaxError
			if !errors.As(err, &serr) {
				t.Errorf("Parse %#q: got %v, want SyntaxError", input, err)
			}
		}
	})

	t.Run("UnexpectedEnd", func(t *testing.T) {
		tests := []string{
			`{"x": 1`, // missing closing brace
			`{`,
			`[1, 2`,
			`[`,
			`{"x":`,
		}
		for _, input := range tests {
			_, err := ast.Parse(input)
			var uerr *jot.UnexpectedEndError
			if !errors.As(err, &uerr) {
				t.Errorf("Parse %#q: got %v, want UnexpectedEndError", input, err)
			}
		}
	})

	t.Run("Lexical", func(t *testing.T) {
		for _, input := range []string{`{"x": -1}`, `[1, @]`} {
			_, err := ast.Parse(input)
			var lerr *jot.LexicalError
			if !errors.As(err, &lerr) {
				t.Errorf("Parse %#q: got %v, want LexicalError", input, err)
			}
		}
	})

	t.Run("ExpectedActual", func(t *testing.T) {
		_, err := ast.Parse(`{"x" 1}`)
		var serr *jot.SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("Got %v, want SyntaxError", err)
		}
		if serr.Expected != jot.Colon.String() {
			t.Errorf("Expected label: got %q, want %q", serr.Expected, jot.Colon.String())
		}
		if serr.Got == "" {
			t.Error("Got label: empty")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	// Rendering a parsed tree and reparsing it must reproduce the tree.
	// The rendered text is also cross-checked against a reference decoder.
	tests := []string{
		`null`,
		`true`,
		`42`,
		`4.50`,
		`"a b c"`,
		`{}`,
		`[]`,
		`[1,2,3]`,
		`{"a":1,"b":[true,false,null],"c":{"d":"e"},"f":0.125}`,
		`[{"x":[[]]},{"y":{}}]`,
	}
	for _, input := range tests {
		v := mustParse(t, input)
		text := v.JSON()

		again := mustParse(t, text)
		if diff := cmp.Diff(text, again.JSON()); diff != "" {
			t.Errorf("Reparse %#q: (-want, +got)\n%s", input, diff)
		}

		var ref, out any
		if err := gojson.Unmarshal([]byte(input), &ref); err != nil {
			t.Fatalf("Reference decode %#q: %v", input, err)
		}
		if err := gojson.Unmarshal([]byte(text), &out); err != nil {
			t.Fatalf("Reference decode %#q: %v", text, err)
		}
		if diff := cmp.Diff(ref, out); diff != "" {
			t.Errorf("Reference trees for %#q: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestSpans(t *testing.T) {
	v := mustParse(t, ` {"a": [1, 2]} `)
	if got, want := v.Span(), (jot.Span{Pos: 1, End: 14}); got != want {
		t.Errorf("Object span: got %+v, want %+v", got, want)
	}
	m := v.(*ast.Object).Find("a")
	if got, want := m.Value.Span(), (jot.Span{Pos: 7, End: 13}); got != want {
		t.Errorf("Array span: got %+v, want %+v", got, want)
	}

	// A normalized number spans only the input it consumed, not its text.
	v = mustParse(t, `[4.]`)
	if got, want := v.(*ast.Array).Values[0].Span(), (jot.Span{Pos: 1, End: 3}); got != want {
		t.Errorf("Number span: got %+v, want %+v", got, want)
	}
	if got, want := v.Span(), (jot.Span{Pos: 0, End: 4}); got != want {
		t.Errorf("Array span: got %+v, want %+v", got, want)
	}
}
