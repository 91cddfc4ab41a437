// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bed

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bioframe/genome"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Open opens path for reading, transparently decompressing gzip files.
// The returned close function must be called when done.
func Open(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "bed.Open %s", path)
	}
	closeFile := func() error { return in.Close(ctx) }
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			_ = closeFile()
			return nil, nil, errors.Wrapf(err, "bed.Open %s", path)
		}
		return gz, func() error {
			err := gz.Close()
			if cerr := closeFile(); cerr != nil && err == nil {
				err = cerr
			}
			return err
		}, nil
	}
	return reader, closeFile, nil
}

// Create creates path for writing, gzip-compressing when the path says so.
// The returned close function flushes and closes everything.
func Create(ctx context.Context, path string) (io.Writer, func() error, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "bed.Create %s", path)
	}
	closeFile := func() error { return out.Close(ctx) }
	if fileio.DetermineType(path) == fileio.Gzip {
		gz := gzip.NewWriter(out.Writer(ctx))
		return gz, func() error {
			err := gz.Close()
			if cerr := closeFile(); cerr != nil && err == nil {
				err = cerr
			}
			return err
		}, nil
	}
	return out.Writer(ctx), closeFile, nil
}

// WriteOpts defines the behavior of Writer.
type WriteOpts struct {
	// WithStrand writes BED6 lines (chrom, start, end, name, score, strand)
	// instead of BED3.  Name and score are written as "." and "0".
	WithStrand bool
}

// Writer writes BED lines.
type Writer struct {
	w    *tsv.Writer
	opts WriteOpts
}

// NewWriter returns a Writer on top of w.
func NewWriter(w io.Writer, opts WriteOpts) *Writer {
	return &Writer{w: tsv.NewWriter(w), opts: opts}
}

// Write writes one location.
func (w *Writer) Write(loc genome.Location) error {
	w.w.WriteString(loc.Chromosome.Name)
	w.w.WriteInt64(int64(loc.Start))
	w.w.WriteInt64(int64(loc.End))
	if w.opts.WithStrand {
		w.w.WriteString(".")
		w.w.WriteString("0")
		w.w.WriteByte(loc.Strand.Byte())
	}
	return w.w.EndLine()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
