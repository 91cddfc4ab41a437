// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package locations implements genome-wide interval sets: for every
// chromosome and strand of a genome query, a SortedList or MergingList of
// ranges on that strand.  Operations between two lists work bucket by
// bucket and require both lists to share the same genome query.
package locations

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// List is the read-only contract shared by SortedList and MergingList.
type List interface {
	// Query returns the genome query the list is defined over.
	Query() *genome.Query
	// Ranges returns the ranges stored for one chromosome and strand.
	Ranges(c genome.Chromosome, s genome.Strand) (interval.List, error)
	// Len returns the total number of stored ranges.
	Len() int
	// Each calls fn for every stored location, chromosomes in query order,
	// Plus before Minus, ranges in increasing order.
	Each(fn func(genome.Location))
}

// Locations flattens l into a slice, in Each order.
func Locations(l List) []genome.Location {
	result := make([]genome.Location, 0, l.Len())
	l.Each(func(loc genome.Location) { result = append(result, loc) })
	return result
}

func checkSameQuery(op string, a, b List) error {
	if !a.Query().Equal(b.Query()) {
		return errors.E(errors.Precondition, fmt.Sprintf("locations.%s: different genome queries %v and %v", op, a.Query(), b.Query()))
	}
	return nil
}

func eachRange[L interval.List](m *genome.StrandMap[L], fn func(genome.Location)) {
	m.Each(func(c genome.Chromosome, s genome.Strand, l L) {
		n := l.Len()
		for i := 0; i < n; i++ {
			fn(genome.Location{Range: l.At(i), Chromosome: c, Strand: s})
		}
	})
}

func countRanges[L interval.List](m *genome.StrandMap[L]) int {
	n := 0
	m.Each(func(_ genome.Chromosome, _ genome.Strand, l L) { n += l.Len() })
	return n
}

// Overlap returns the locations of a that intersect b once widened by flank
// positions on both sides, on the same chromosome and strand.
func Overlap(a, b List, flank interval.PosType) ([]genome.Location, error) {
	if err := checkSameQuery("Overlap", a, b); err != nil {
		return nil, err
	}
	var result []genome.Location
	err := eachBucketPair(a, b, func(c genome.Chromosome, s genome.Strand, la, lb interval.List) {
		for _, r := range interval.Overlap(la, lb, flank) {
			result = append(result, genome.Location{Range: r, Chromosome: c, Strand: s})
		}
	})
	return result, err
}

// OverlapCount is len(Overlap(a, b, flank)) without building the result.
func OverlapCount(a, b List, flank interval.PosType) (int, error) {
	if err := checkSameQuery("OverlapCount", a, b); err != nil {
		return 0, err
	}
	n := 0
	err := eachBucketPair(a, b, func(_ genome.Chromosome, _ genome.Strand, la, lb interval.List) {
		n += interval.OverlapCount(la, lb, flank)
	})
	return n, err
}

func eachBucketPair(a, b List, fn func(genome.Chromosome, genome.Strand, interval.List, interval.List)) error {
	for _, c := range a.Query().Chromosomes() {
		for _, s := range genome.Strands {
			la, err := a.Ranges(c, s)
			if err != nil {
				return err
			}
			lb, err := b.Ranges(c, s)
			if err != nil {
				return err
			}
			fn(c, s, la, lb)
		}
	}
	return nil
}
