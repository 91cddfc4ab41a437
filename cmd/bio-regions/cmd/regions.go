// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioframe/encoding/bed"
	"github.com/grailbio/bioframe/frame"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
	"github.com/grailbio/bioframe/locations"
)

// Opts holds the settings shared by all subcommands.
type Opts struct {
	// GenomePath is a chrom.sizes or .fai file.
	GenomePath string
	// Build names the genome build.
	Build string
	// Read controls BED parsing.
	Read bed.ReadOpts
	// Flank widens regions before overlap tests.
	Flank int
}

func (o Opts) query(ctx context.Context) (*genome.Query, error) {
	q, err := genome.LoadChromSizes(ctx, o.Build, o.GenomePath)
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("bio-regions: genome %v", q)
	return q, nil
}

func loadMerging(ctx context.Context, opts Opts, paths ...string) ([]*locations.MergingList, error) {
	q, err := opts.query(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]*locations.MergingList, len(paths))
	for i, path := range paths {
		if lists[i], err = locations.LoadMerging(ctx, q, path, opts.Read); err != nil {
			return nil, err
		}
		log.Printf("bio-regions: %s: %d merged region(s), %d position(s)", path, lists[i].Len(), lists[i].Length())
	}
	return lists, nil
}

// Merge writes the merged regions of inPath to outPath.
func Merge(opts Opts, inPath, outPath string) error {
	ctx := vcontext.Background()
	lists, err := loadMerging(ctx, opts, inPath)
	if err != nil {
		return err
	}
	return locations.Save(ctx, outPath, lists[0])
}

// Intersect writes the regions covered by both aPath and bPath to outPath.
func Intersect(opts Opts, aPath, bPath, outPath string) error {
	ctx := vcontext.Background()
	lists, err := loadMerging(ctx, opts, aPath, bPath)
	if err != nil {
		return err
	}
	and, err := lists[0].And(lists[1])
	if err != nil {
		return err
	}
	return locations.Save(ctx, outPath, and)
}

// Jaccard returns the Jaccard index of the regions of aPath and bPath.
func Jaccard(opts Opts, aPath, bPath string) (float64, error) {
	lists, err := loadMerging(vcontext.Background(), opts, aPath, bPath)
	if err != nil {
		return 0, err
	}
	return locations.Jaccard.Calc(lists[0], lists[1])
}

// Coverage writes the coverage depth runs of inPath to outPath as a frame
// with columns chrom, start, end, strand and depth.
func Coverage(opts Opts, inPath, outPath string) error {
	ctx := vcontext.Background()
	q, err := opts.query(ctx)
	if err != nil {
		return err
	}
	l, err := locations.LoadSorted(ctx, q, inPath, opts.Read)
	if err != nil {
		return err
	}
	runs, err := l.Coverage()
	if err != nil {
		return err
	}
	var (
		chroms  = make([]string, len(runs))
		starts  = make([]int32, len(runs))
		ends    = make([]int32, len(runs))
		strands = make([]string, len(runs))
		depths  = make([]int32, len(runs))
	)
	for i, r := range runs {
		chroms[i] = r.Chromosome.Name
		starts[i] = int32(r.Start)
		ends[i] = int32(r.End)
		strands[i] = r.Strand.String()
		depths[i] = int32(r.Depth)
	}
	f, err := frame.New(
		frame.NewStringColumn("chrom", chroms),
		frame.NewIntColumn("start", starts),
		frame.NewIntColumn("end", ends),
		frame.NewStringColumn("strand", strands),
		frame.NewIntColumn("depth", depths),
	)
	if err != nil {
		return err
	}
	return f.Save(ctx, outPath, frame.DefaultWriteOpts)
}

// Overlaps writes, for every chromosome and strand where aPath has
// regions, the number of regions of aPath, how many of them overlap bPath
// once widened by opts.Flank, and the overlapping fraction.
func Overlaps(opts Opts, aPath, bPath, outPath string) error {
	ctx := vcontext.Background()
	q, err := opts.query(ctx)
	if err != nil {
		return err
	}
	a, err := locations.LoadSorted(ctx, q, aPath, opts.Read)
	if err != nil {
		return err
	}
	b, err := locations.LoadMerging(ctx, q, bPath, opts.Read)
	if err != nil {
		return err
	}
	fb, err := frame.NewBuilder(
		frame.ColumnSpec{Label: "chrom", Type: frame.String},
		frame.ColumnSpec{Label: "strand", Type: frame.String},
		frame.ColumnSpec{Label: "regions", Type: frame.Long},
		frame.ColumnSpec{Label: "overlapping", Type: frame.Long},
	)
	if err != nil {
		return err
	}
	for _, c := range q.Chromosomes() {
		for _, s := range genome.Strands {
			la, err := a.Ranges(c, s)
			if err != nil {
				return err
			}
			if la.Len() == 0 {
				continue
			}
			lb, err := b.Ranges(c, s)
			if err != nil {
				return err
			}
			n := interval.OverlapCount(la, lb, interval.PosType(opts.Flank))
			if err := fb.AddRow(c.Name, s.String(), strconv.Itoa(la.Len()), strconv.Itoa(n)); err != nil {
				return err
			}
		}
	}
	f, err := fb.Build()
	if err != nil {
		return err
	}
	if f, err = withFraction(f); err != nil {
		return err
	}
	return f.Save(ctx, outPath, frame.DefaultWriteOpts)
}

// withFraction adds column fraction = overlapping / regions.
func withFraction(f *frame.Frame) (*frame.Frame, error) {
	regions, err := f.SliceAsLong("regions")
	if err != nil {
		return nil, err
	}
	overlapping, err := f.SliceAsLong("overlapping")
	if err != nil {
		return nil, err
	}
	fraction := make([]float64, f.RowsNumber())
	for i := range fraction {
		fraction[i] = float64(overlapping[i]) / float64(regions[i])
	}
	return f.With(frame.NewDoubleColumn("fraction", fraction))
}
