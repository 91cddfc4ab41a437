// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package locations

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// Builder accumulates locations bucketed by (chromosome, strand), and
// freezes them into a SortedList or a MergingList.  A Builder is not safe
// for concurrent use.
type Builder struct {
	buckets *genome.StrandMap[*[]interval.Range]
	n       int
}

// NewBuilder returns an empty Builder over q.
func NewBuilder(q *genome.Query) *Builder {
	return &Builder{
		buckets: genome.NewStrandMap(q, genome.MapOpts{}, func(genome.Chromosome, genome.Strand) *[]interval.Range {
			return new([]interval.Range)
		}),
	}
}

// Query returns the genome query of the builder.
func (b *Builder) Query() *genome.Query {
	return b.buckets.Query()
}

// Add appends loc.  It fails with a NotExist error when loc's chromosome is
// not part of the query.
func (b *Builder) Add(loc genome.Location) error {
	bucket, err := b.buckets.Get(loc.Chromosome, loc.Strand)
	if err != nil {
		return err
	}
	*bucket = append(*bucket, loc.Range)
	b.n++
	return nil
}

// Len returns the number of locations added so far.
func (b *Builder) Len() int {
	return b.n
}

// Merging freezes the builder into a MergingList.  The builder may keep
// being used afterwards.
func (b *Builder) Merging() *MergingList {
	return &MergingList{m: freeze(b, interval.NewMergingList)}
}

// Sorted freezes the builder into a SortedList.  The builder may keep being
// used afterwards.
func (b *Builder) Sorted() *SortedList {
	return &SortedList{m: freeze(b, interval.NewSortedList)}
}

func freeze[L any](b *Builder, convert func([]interval.Range) L) *genome.StrandMap[L] {
	return genome.NewStrandMap(b.Query(), genome.DefaultMapOpts, func(c genome.Chromosome, s genome.Strand) L {
		return convert(*mustGet(b.buckets, c, s))
	})
}

// mustGet is StrandMap.Get for keys known to belong to the query.
func mustGet[T any](m *genome.StrandMap[T], c genome.Chromosome, s genome.Strand) T {
	v, err := m.Get(c, s)
	if err != nil {
		log.Panicf("locations: %v", err)
	}
	return v
}
