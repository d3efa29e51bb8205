// Copyright (C) 2025 M. Felsen. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string contents.
//
// The escape model is deliberately narrow: a backslash causes the character
// after it to be carried literally, and nothing else. \" is the only
// sequence with a distinguished meaning (it defers the end of the string);
// sequences like \n or \uXXXX are not translated.
package escape

import (
	"errors"

	"go4.org/mem"
)

// Quote encodes string contents for inclusion in a JSON string. Only
// quotation marks and backslashes are escaped; the enclosing quotation marks
// are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b == '"' || b == '\\' {
			buf = append(buf, '\\')
		}
		buf = append(buf, b)
	}
	return buf
}

// Unquote decodes a byte slice containing the encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Each backslash is removed and the byte after it is emitted literally.
// Unquote reports an error for a backslash with nothing after it.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		dec = append(dec, src.At(0))
		src = src.SliceFrom(1)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}
