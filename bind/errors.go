// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package bind

import (
	"fmt"
	"reflect"
	"strings"
)

// A BindingError reports that a required field of a target type had no
// matching member among the supplied values. It records the full set of
// member names that were supplied, for diagnostics.
type BindingError struct {
	Type    reflect.Type
	Param   string
	Members []string
}

func (e *BindingError) Error() string {
	supplied := "none"
	if len(e.Members) != 0 {
		supplied = strings.Join(e.Members, ", ")
	}
	return fmt.Sprintf("type %s: no member for required field %q (supplied: %s)", e.Type, e.Param, supplied)
}

// A NotConstructibleError reports that a target type cannot be constructed
// by the binder, for example because the type or a required field of it is
// unexported.
type NotConstructibleError struct {
	Type   reflect.Type
	Reason string
}

func (e *NotConstructibleError) Error() string {
	return fmt.Sprintf("type %s is not constructible: %s", e.Type, e.Reason)
}

// A TypeMismatchError reports that a parsed value cannot be used where a
// value of the wanted type is needed.
type TypeMismatchError struct {
	Want reflect.Type
	Got  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot use %T as %s", e.Got, e.Want)
}
