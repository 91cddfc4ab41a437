// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"

	"github.com/grailbio/bioframe/interval"
)

// Location is a range on one strand of one chromosome.
type Location struct {
	interval.Range
	Chromosome Chromosome
	Strand     Strand
}

// NewLocation returns the location [start, end) on the given chromosome and
// strand.  It panics if end < start.
func NewLocation(start, end interval.PosType, chr Chromosome, strand Strand) Location {
	return Location{Range: interval.NewRange(start, end), Chromosome: chr, Strand: strand}
}

// Opposite returns the same range on the other strand.
func (l Location) Opposite() Location {
	l.Strand = l.Strand.Opposite()
	return l
}

// Compare orders locations by chromosome name, then range, then strand.
func (l Location) Compare(other Location) int {
	switch {
	case l.Chromosome.Name < other.Chromosome.Name:
		return -1
	case l.Chromosome.Name > other.Chromosome.Name:
		return 1
	}
	if c := l.Range.Compare(other.Range); c != 0 {
		return c
	}
	switch {
	case l.Strand < other.Strand:
		return -1
	case l.Strand > other.Strand:
		return 1
	}
	return 0
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d-%d%v", l.Chromosome.Name, l.Start, l.End, l.Strand)
}
