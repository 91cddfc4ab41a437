// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package locations

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bioframe/encoding/bed"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// Write writes the locations of l to w as BED, chromosomes in query order
// and locations of both strands in (start, end) order, Plus first on ties.
// BED6 lines carrying the strand are written when some location is on the
// Minus strand, BED3 otherwise.
func Write(w io.Writer, l List) error {
	q := l.Query()
	type strandRanges struct{ plus, minus interval.List }
	perChrom := make([]strandRanges, q.Len())
	withStrand := false
	for i, c := range q.Chromosomes() {
		plus, err := l.Ranges(c, genome.Plus)
		if err != nil {
			return err
		}
		minus, err := l.Ranges(c, genome.Minus)
		if err != nil {
			return err
		}
		perChrom[i] = strandRanges{plus, minus}
		withStrand = withStrand || minus.Len() > 0
	}
	bw := bed.NewWriter(w, bed.WriteOpts{WithStrand: withStrand})
	for i, c := range q.Chromosomes() {
		plus, minus := perChrom[i].plus, perChrom[i].minus
		var p, m int
		for p < plus.Len() || m < minus.Len() {
			var loc genome.Location
			if m == minus.Len() || (p < plus.Len() && plus.At(p).Compare(minus.At(m)) <= 0) {
				loc = genome.Location{Range: plus.At(p), Chromosome: c, Strand: genome.Plus}
				p++
			} else {
				loc = genome.Location{Range: minus.At(m), Chromosome: c, Strand: genome.Minus}
				m++
			}
			if err := bw.Write(loc); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Save writes l to path as (optionally gzipped) BED.
func Save(ctx context.Context, path string, l List) (err error) {
	w, closeFn, err := bed.Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = Write(w, l); err != nil {
		return errors.E(err, "locations.Save", path)
	}
	return nil
}

// Read parses BED records from r into a Builder over q.  Records on
// chromosomes outside q are skipped.
func Read(r io.Reader, q *genome.Query, opts bed.ReadOpts) (*Builder, error) {
	b := NewBuilder(q)
	_, err := bed.ReadLocations(r, q, opts, func(loc genome.Location) {
		// ReadLocations only reports chromosomes of q.
		_ = b.Add(loc)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func load(ctx context.Context, q *genome.Query, path string, opts bed.ReadOpts) (b *Builder, err error) {
	r, closeFn, err := bed.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if b, err = Read(r, q, opts); err != nil {
		return nil, errors.E(err, "locations.Load", path)
	}
	return b, nil
}

// LoadMerging reads a BED file into a MergingList over q.
func LoadMerging(ctx context.Context, q *genome.Query, path string, opts bed.ReadOpts) (*MergingList, error) {
	b, err := load(ctx, q, path, opts)
	if err != nil {
		return nil, err
	}
	return b.Merging(), nil
}

// LoadSorted reads a BED file into a SortedList over q.
func LoadSorted(ctx context.Context, q *genome.Query, path string, opts bed.ReadOpts) (*SortedList, error) {
	b, err := load(ctx, q, path, opts)
	if err != nil {
		return nil, err
	}
	return b.Sorted(), nil
}
