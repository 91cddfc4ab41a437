// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package locations

import (
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// SortedList is a genome-wide multiset of locations.  The ranges of each
// chromosome and strand are sorted but may overlap.  A SortedList is
// immutable and safe for concurrent use.
type SortedList struct {
	m *genome.StrandMap[*interval.SortedList]
}

// Query returns the genome query of l.
func (l *SortedList) Query() *genome.Query {
	return l.m.Query()
}

// Ranges returns the sorted ranges of one chromosome and strand.
func (l *SortedList) Ranges(c genome.Chromosome, s genome.Strand) (interval.List, error) {
	return l.m.Get(c, s)
}

// Get is Ranges with the concrete type.
func (l *SortedList) Get(c genome.Chromosome, s genome.Strand) (*interval.SortedList, error) {
	return l.m.Get(c, s)
}

// Len returns the number of stored locations.
func (l *SortedList) Len() int {
	return countRanges(l.m)
}

// Each calls fn for every stored location.
func (l *SortedList) Each(fn func(genome.Location)) {
	eachRange(l.m, fn)
}

// Locations returns all stored locations.
func (l *SortedList) Locations() []genome.Location {
	return Locations(l)
}

// Merge coalesces each bucket into a MergingList.
func (l *SortedList) Merge() *MergingList {
	return &MergingList{m: genome.NewStrandMap(l.Query(), genome.DefaultMapOpts, func(c genome.Chromosome, s genome.Strand) *interval.MergingList {
		return mustGet(l.m, c, s).Merge()
	})}
}

// Intersect returns the covered pieces of loc on loc's strand, one per
// overlapping stored range.
func (l *SortedList) Intersect(loc genome.Location) ([]interval.Range, error) {
	sl, err := l.m.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return nil, err
	}
	return sl.Intersect(loc.Start, loc.End), nil
}

// Includes returns whether a single stored range contains loc.
func (l *SortedList) Includes(loc genome.Location) (bool, error) {
	sl, err := l.m.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return false, err
	}
	return sl.Includes(loc.Start, loc.End), nil
}

// Filter returns the stored locations for which keep returns true.
func (l *SortedList) Filter(keep func(genome.Location) bool) *SortedList {
	return filter(l, keep).Sorted()
}

// CoverageRun is an interval.CoverageRun on one chromosome and strand.
type CoverageRun struct {
	genome.Location
	Depth int
}

// Coverage returns, per chromosome and strand, the runs of positions
// covered by at least one stored location and their depth.
func (l *SortedList) Coverage() ([]CoverageRun, error) {
	var result []CoverageRun
	var err error
	l.m.Each(func(c genome.Chromosome, s genome.Strand, sl *interval.SortedList) {
		if err != nil {
			return
		}
		var runs []interval.CoverageRun
		if runs, err = sl.Coverage(); err != nil {
			return
		}
		for _, r := range runs {
			result = append(result, CoverageRun{
				Location: genome.Location{Range: r.Range, Chromosome: c, Strand: s},
				Depth:    r.Depth,
			})
		}
	})
	return result, err
}
