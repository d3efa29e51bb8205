// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

import (
	"errors"
	"strings"

	"github.com/mfelsen/jot/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. Quotation marks and backslashes
// in the contents are escaped, and enclosing double quotation marks are
// added. No other characters are rewritten; see Unquote for the matching
// decode rules.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and each backslash is removed so that the character after it is carried
// literally: \" decodes to a quotation mark, and any other escaped character
// decodes to itself. No further escape processing (\n, \t, \uXXXX) is
// performed; those sequences decode to the literal follower character.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
