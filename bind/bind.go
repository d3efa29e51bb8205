// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package bind

import (
	"reflect"

	"github.com/mfelsen/jot/ast"
)

// A member is one parsed key-value pair awaiting binding. The value is
// either an ast.Value (a generic subtree) or an already-bound instance
// produced by the typed parser.
type member struct {
	name  string
	value any
}

// members is an ordered working set of parsed members. Members are removed
// as the binder consumes them.
type members struct {
	ms []member
}

// set records a member, replacing the value of an existing member with the
// same name. The name keeps its original position; the last value wins.
func (m *members) set(name string, value any) {
	for i := range m.ms {
		if m.ms[i].name == name {
			m.ms[i].value = value
			return
		}
	}
	m.ms = append(m.ms, member{name: name, value: value})
}

// take removes and returns the first member that binds to f.
func (m *members) take(f *field) (member, bool) {
	for i := range m.ms {
		if f.matches(m.ms[i].name) {
			out := m.ms[i]
			m.ms = append(m.ms[:i], m.ms[i+1:]...)
			return out, true
		}
	}
	return member{}, false
}

// names returns the names of the remaining members.
func (m *members) names() []string {
	out := make([]string, len(m.ms))
	for i, mm := range m.ms {
		out[i] = mm.name
	}
	return out
}

// bind constructs one value of struct type s.typ from ms.
//
// Required fields are bound first, in declared order, consuming their
// members from ms; a required field with no matching member is a
// *BindingError naming the field and every supplied member. The remaining
// members are then assigned to whichever non-required fields they match;
// members that match nothing are ignored. If no members were supplied at
// all, the residual pass is skipped and the zero value is returned.
func (s *schema) bind(ms *members) (reflect.Value, error) {
	rv := reflect.New(s.typ).Elem()
	supplied := ms.names()

	for i := range s.required() {
		f := &s.fields[i]
		m, ok := ms.take(f)
		if !ok {
			return reflect.Value{}, &BindingError{Type: s.typ, Param: f.name, Members: supplied}
		}
		if err := assign(rv.Field(f.index), m.value); err != nil {
			return reflect.Value{}, err
		}
	}
	if len(supplied) == 0 {
		return rv, nil
	}

	for _, m := range ms.ms {
		f := s.lookup(m.name)
		if f == nil || f.required {
			continue
		}
		if err := assign(rv.Field(f.index), m.value); err != nil {
			return reflect.Value{}, err
		}
	}
	return rv, nil
}

// assign stores a parsed value into the struct field fv. Bound instances
// must be directly assignable; generic subtrees are coerced by node kind.
// The store is a direct reflect set, so no methods of the target type run.
func assign(fv reflect.Value, value any) error {
	if node, ok := value.(ast.Value); ok {
		return assignNode(fv, node)
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || !rv.Type().AssignableTo(fv.Type()) {
		return &TypeMismatchError{Want: fv.Type(), Got: value}
	}
	fv.Set(rv)
	return nil
}

// assignNode coerces a generic node onto a field: scalar leaves map to the
// corresponding Go kinds, null maps to the zero value, and any node may be
// stored as-is into a field of an interface type that can hold it.
func assignNode(fv reflect.Value, node ast.Value) error {
	if fv.Kind() == reflect.Interface && reflect.TypeOf(node).AssignableTo(fv.Type()) {
		fv.Set(reflect.ValueOf(node))
		return nil
	}
	switch n := node.(type) {
	case ast.String:
		if fv.Kind() == reflect.String {
			fv.SetString(n.Unquote())
			return nil
		}
	case ast.Integer:
		v := n.Int64()
		switch fv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if !fv.OverflowInt(v) {
				fv.SetInt(v)
				return nil
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v >= 0 && !fv.OverflowUint(uint64(v)) {
				fv.SetUint(uint64(v))
				return nil
			}
		case reflect.Float32, reflect.Float64:
			fv.SetFloat(float64(v))
			return nil
		}
	case ast.Number:
		switch fv.Kind() {
		case reflect.Float32, reflect.Float64:
			fv.SetFloat(n.Float64())
			return nil
		}
	case ast.Bool:
		if fv.Kind() == reflect.Bool {
			fv.SetBool(n.Value())
			return nil
		}
	case ast.Null:
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	return &TypeMismatchError{Want: fv.Type(), Got: node}
}
