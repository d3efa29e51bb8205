// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package bind

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// A field describes one bindable field of a target struct type.
type field struct {
	name     string // member name: the json tag name, or the Go field name
	goName   string // the Go field name
	index    int    // field index in the struct
	typ      reflect.Type
	required bool // the field must be supplied by the input
}

// matches reports whether a member with the given key binds to f. The key
// is compared against the tag name and Go name exactly, and then against
// the Go name through the conventional snake_case-to-PascalCase mapping.
func (f *field) matches(key string) bool {
	return key == f.name || key == f.goName || strcase.ToCamel(key) == f.goName
}

// A schema describes the bindable surface of a struct type: its required
// fields, in declared order, followed by its remaining exported fields.
type schema struct {
	typ    reflect.Type
	fields []field // required fields first, then the rest, each in declared order
	nreq   int
}

// lookup returns the field of s that a member with the given key binds to,
// or nil. Required fields are consulted first.
func (s *schema) lookup(key string) *field {
	for i := range s.fields {
		if s.fields[i].matches(key) {
			return &s.fields[i]
		}
	}
	return nil
}

// memberType reports the declared type of the field that key binds to, and
// whether that type can itself be constructed by the binder (directly or as
// a slice of constructible elements). A false result directs the caller to
// parse the member's value as a generic node instead.
func (s *schema) memberType(key string) (reflect.Type, bool) {
	f := s.lookup(key)
	if f == nil {
		return nil, false
	}
	if _, ok := bindableType(f.typ); ok {
		return f.typ, true
	}
	return nil, false
}

var schemaCache struct {
	sync.Mutex
	m map[reflect.Type]*schema
}

// schemaOf returns the schema for struct type t, computing and caching it
// on first use.
func schemaOf(t reflect.Type) (*schema, error) {
	schemaCache.Lock()
	defer schemaCache.Unlock()
	if s, ok := schemaCache.m[t]; ok {
		return s, nil
	}
	s, err := newSchema(t)
	if err != nil {
		return nil, err
	}
	if schemaCache.m == nil {
		schemaCache.m = make(map[reflect.Type]*schema)
	}
	schemaCache.m[t] = s
	return s, nil
}

func newSchema(t reflect.Type) (*schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, &NotConstructibleError{Type: t, Reason: "not a struct type"}
	}
	if name := t.Name(); name != "" {
		if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
			return nil, &NotConstructibleError{Type: t, Reason: "unexported type"}
		}
	}

	s := &schema{typ: t}
	var rest []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := field{name: sf.Name, goName: sf.Name, index: i, typ: sf.Type}
		if tag, ok := sf.Tag.Lookup("json"); ok {
			name, opts, _ := strings.Cut(tag, ",")
			if name == "-" && opts == "" {
				continue
			}
			if name != "" {
				f.name = name
			}
			for _, opt := range strings.Split(opts, ",") {
				if opt == "required" {
					f.required = true
				}
			}
		}
		if !sf.IsExported() {
			if f.required {
				return nil, &NotConstructibleError{
					Type:   t,
					Reason: fmt.Sprintf("required field %s is unexported", sf.Name),
				}
			}
			continue
		}
		if f.required {
			s.fields = append(s.fields, f)
		} else {
			rest = append(rest, f)
		}
	}
	s.nreq = len(s.fields)
	s.fields = append(s.fields, rest...)
	return s, nil
}

// required returns the required fields of s in declared order.
func (s *schema) required() []field { return s.fields[:s.nreq] }

// bindableType reports the struct type underlying t when t is a type the
// binder can construct: a struct, a pointer to struct, or a slice of
// either.
func bindableType(t reflect.Type) (reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Struct:
		return t, true
	case reflect.Pointer, reflect.Slice:
		if et := t.Elem(); et.Kind() == reflect.Struct {
			return et, true
		} else if et.Kind() == reflect.Pointer && et.Elem().Kind() == reflect.Struct {
			return et.Elem(), true
		}
	}
	return nil, false
}
