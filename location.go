// Copyright (C) 2025 M. Felsen. All Rights Reserved.

package jot

// A Span describes a contiguous span of a source input, measured in runes.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
