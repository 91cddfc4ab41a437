// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package locations

import (
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// MergingList is a genome-wide set of locations where the ranges of each
// chromosome and strand are merged: no two stored ranges overlap or touch.
// A MergingList is immutable and safe for concurrent use.
type MergingList struct {
	m *genome.StrandMap[*interval.MergingList]
}

// Query returns the genome query of l.
func (l *MergingList) Query() *genome.Query {
	return l.m.Query()
}

// Ranges returns the merged ranges of one chromosome and strand.
func (l *MergingList) Ranges(c genome.Chromosome, s genome.Strand) (interval.List, error) {
	return l.m.Get(c, s)
}

// Get is Ranges with the concrete type.
func (l *MergingList) Get(c genome.Chromosome, s genome.Strand) (*interval.MergingList, error) {
	return l.m.Get(c, s)
}

// Len returns the number of merged ranges over all chromosomes and strands.
func (l *MergingList) Len() int {
	return countRanges(l.m)
}

// Length returns the number of covered (position, strand) pairs.
func (l *MergingList) Length() int64 {
	var total int64
	l.m.Each(func(_ genome.Chromosome, _ genome.Strand, ml *interval.MergingList) { total += ml.Length() })
	return total
}

// Each calls fn for every stored location.
func (l *MergingList) Each(fn func(genome.Location)) {
	eachRange(l.m, fn)
}

// Locations returns all stored locations.
func (l *MergingList) Locations() []genome.Location {
	return Locations(l)
}

// apply combines l and other bucket by bucket.
func (l *MergingList) apply(name string, other *MergingList, op func(a, b *interval.MergingList) *interval.MergingList) (*MergingList, error) {
	if err := checkSameQuery(name, l, other); err != nil {
		return nil, err
	}
	return &MergingList{m: genome.NewStrandMap(l.Query(), genome.DefaultMapOpts, func(c genome.Chromosome, s genome.Strand) *interval.MergingList {
		return op(mustGet(l.m, c, s), mustGet(other.m, c, s))
	})}, nil
}

// Or returns the union of l and other.
func (l *MergingList) Or(other *MergingList) (*MergingList, error) {
	return l.apply("Or", other, (*interval.MergingList).Or)
}

// And returns the intersection of l and other.
func (l *MergingList) And(other *MergingList) (*MergingList, error) {
	return l.apply("And", other, (*interval.MergingList).And)
}

// Minus returns what l covers and other doesn't.
func (l *MergingList) Minus(other *MergingList) (*MergingList, error) {
	return l.apply("Minus", other, (*interval.MergingList).Minus)
}

// Complement returns the positions of each chromosome, on each strand, that
// l does not cover.
func (l *MergingList) Complement() *MergingList {
	return &MergingList{m: genome.NewStrandMap(l.Query(), genome.DefaultMapOpts, func(c genome.Chromosome, s genome.Strand) *interval.MergingList {
		return mustGet(l.m, c, s).Complement(c.Length)
	})}
}

// Equal returns whether l and other have the same query and cover the same
// locations.
func (l *MergingList) Equal(other *MergingList) bool {
	if !l.Query().Equal(other.Query()) {
		return false
	}
	equal := true
	l.m.Each(func(c genome.Chromosome, s genome.Strand, ml *interval.MergingList) {
		equal = equal && ml.Equal(mustGet(other.m, c, s))
	})
	return equal
}

// Intersect returns the covered pieces of loc on loc's strand.
func (l *MergingList) Intersect(loc genome.Location) ([]interval.Range, error) {
	ml, err := l.m.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return nil, err
	}
	return ml.Intersect(loc.Start, loc.End), nil
}

// IntersectionLength returns the number of covered positions of loc on loc's
// strand.
func (l *MergingList) IntersectionLength(loc genome.Location) (int64, error) {
	ml, err := l.m.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return 0, err
	}
	return ml.IntersectionLength(loc.Start, loc.End), nil
}

// IntersectBothStrands returns the pieces of loc's range covered on either
// strand, merged.
func (l *MergingList) IntersectBothStrands(loc genome.Location) ([]interval.Range, error) {
	same, err := l.Intersect(loc)
	if err != nil {
		return nil, err
	}
	opposite, err := l.Intersect(loc.Opposite())
	if err != nil {
		return nil, err
	}
	return interval.NewMergingList(append(same, opposite...)).Ranges(), nil
}

// IntersectionLengthBothStrands returns the number of positions of loc's
// range covered on at least one strand.
func (l *MergingList) IntersectionLengthBothStrands(loc genome.Location) (int64, error) {
	pieces, err := l.IntersectBothStrands(loc)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range pieces {
		total += int64(r.Length())
	}
	return total, nil
}

// Includes returns whether a single stored range contains loc.
func (l *MergingList) Includes(loc genome.Location) (bool, error) {
	ml, err := l.m.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return false, err
	}
	return ml.Includes(loc.Start, loc.End), nil
}

// Contains returns whether pos on (c, s) is covered.
func (l *MergingList) Contains(c genome.Chromosome, s genome.Strand, pos interval.PosType) (bool, error) {
	ml, err := l.m.Get(c, s)
	if err != nil {
		return false, err
	}
	return ml.Contains(pos), nil
}

// Filter returns the stored locations for which keep returns true.
func (l *MergingList) Filter(keep func(genome.Location) bool) *MergingList {
	return filter(l, keep).Merging()
}

func filter(l List, keep func(genome.Location) bool) *Builder {
	b := NewBuilder(l.Query())
	l.Each(func(loc genome.Location) {
		if keep(loc) {
			// Every stored location belongs to the query.
			_ = b.Add(loc)
		}
	})
	return b
}
