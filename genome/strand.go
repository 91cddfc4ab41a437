// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Strand is the DNA strand a location lies on.
type Strand uint8

const (
	// Plus is the forward strand.
	Plus Strand = iota
	// Minus is the reverse strand.
	Minus
)

// Strands lists both strands, Plus first.
var Strands = [2]Strand{Plus, Minus}

// Opposite returns the other strand.
func (s Strand) Opposite() Strand {
	return 1 - s
}

// Byte returns '+' or '-'.
func (s Strand) Byte() byte {
	if s == Minus {
		return '-'
	}
	return '+'
}

func (s Strand) String() string {
	return string(s.Byte())
}

// ParseStrand parses "+" or "-".  "." (unknown strand, as in BED) maps to
// Plus.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+", ".":
		return Plus, nil
	case "-":
		return Minus, nil
	}
	return Plus, errors.E(errors.Invalid, fmt.Sprintf("genome.ParseStrand: %q is not a strand", s))
}
