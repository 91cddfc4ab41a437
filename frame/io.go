// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	pkgerrors "github.com/pkg/errors"
)

// WriteOpts defines how frames are written.
type WriteOpts struct {
	// FloatFormat, if set, formats the cells of Float and Double columns.
	FloatFormat func(float64) string
}

// DefaultWriteOpts writes every cell with Column.Dump.
var DefaultWriteOpts = WriteOpts{}

// Write writes f to w: the column types as a "# Type; Type" comment line,
// the labels, then the rows, all tab-separated.  Labels and cells
// containing a tab, a carriage return or a newline are Invalid errors.
func (f *Frame) Write(w io.Writer, opts WriteOpts) error {
	tw := tsv.NewWriter(w)
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.TypeName()
	}
	tw.WriteString("# " + strings.Join(names, "; "))
	if err := tw.EndLine(); err != nil {
		return err
	}
	if len(f.columns) == 0 {
		return tw.Flush()
	}
	for _, c := range f.columns {
		if err := checkCell(c, -1, c.Label()); err != nil {
			return err
		}
		tw.WriteString(c.Label())
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	for row := 0; row < f.rows; row++ {
		for _, c := range f.columns {
			var cell string
			if opts.FloatFormat != nil && (c.Type() == Float || c.Type() == Double) {
				v, _ := c.GetAsDouble(row)
				cell = opts.FloatFormat(v)
			} else {
				cell = c.Dump(row)
			}
			if err := checkCell(c, row, cell); err != nil {
				return err
			}
			tw.WriteString(cell)
		}
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// checkCell rejects text that would break the line and cell structure.  Row
// -1 is the label line.
func checkCell(c Column, row int, cell string) error {
	if !strings.ContainsAny(cell, "\t\r\n") {
		return nil
	}
	if row < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("frame.Write: label %q contains a tab or line break", cell))
	}
	return errors.E(errors.Invalid, fmt.Sprintf("frame.Write: row %d, column %q: cell %q contains a tab or line break",
		row, c.Label(), cell))
}

func parseTypeHeader(line string, enums EnumRegistry) ([]ColumnSpec, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, "#") {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("frame.Read: missing type header, got %q", line))
	}
	line = strings.TrimSpace(line[1:])
	if line == "" {
		return nil, nil
	}
	fields := strings.Split(line, ";")
	specs := make([]ColumnSpec, len(fields))
	for i, name := range fields {
		name = strings.TrimSpace(name)
		if t, ok := builtinType(name); ok {
			specs[i].Type = t
			continue
		}
		e, ok := enums[name]
		if !ok {
			return nil, errors.E(errors.NotExist, fmt.Sprintf("frame.Read: unknown column type %q", name))
		}
		specs[i] = ColumnSpec{Type: EnumType, Enum: e}
	}
	return specs, nil
}

// maxLineBytes bounds the length of one line read by Read.
const maxLineBytes = 1 << 30

// splitLine splits a line on tabs.  Quotes have no special meaning, and an
// empty line is one empty cell.
func splitLine(line string) []string {
	return strings.Split(strings.TrimSuffix(line, "\r"), "\t")
}

// Read parses a frame written by Frame.Write.  Enum column types are
// resolved through enums.
func Read(r io.Reader, enums EnumRegistry) (*Frame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)
	var header string
	if scanner.Scan() {
		header = scanner.Text()
	} else if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "frame.Read")
	}
	specs, err := parseTypeHeader(header, enums)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return New()
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, pkgerrors.Wrap(err, "frame.Read")
		}
		return nil, errors.E(errors.Invalid, "frame.Read: missing label line")
	}
	labels := splitLine(scanner.Text())
	if len(labels) != len(specs) {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("frame.Read: %d labels for %d column types", len(labels), len(specs)))
	}
	for i := range specs {
		specs[i].Label = labels[i]
	}
	b, err := NewBuilder(specs...)
	if err != nil {
		return nil, err
	}
	for scanner.Scan() {
		cells := splitLine(scanner.Text())
		if len(cells) != len(specs) {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("frame.Read: row %d has %d cells, want %d",
				b.Len(), len(cells), len(specs)))
		}
		if err := b.AddRow(cells...); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrapf(err, "frame.Read: row %d", b.Len())
	}
	return b.Build()
}

// Save writes f to path, gzip-compressed if path ends in ".gz".
func (f *Frame) Save(ctx context.Context, path string, opts WriteOpts) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return pkgerrors.Wrapf(err, "frame.Save %s", path)
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	w := out.Writer(ctx)
	if fileio.DetermineType(path) != fileio.Gzip {
		return f.Write(w, opts)
	}
	gz := gzip.NewWriter(w)
	if err = f.Write(gz, opts); err != nil {
		return err
	}
	return gz.Close()
}

// Load reads a frame saved by Frame.Save.
func Load(ctx context.Context, path string, enums EnumRegistry) (f *Frame, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "frame.Load %s", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	r := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "frame.Load %s", path)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}
	if f, err = Read(r, enums); err != nil {
		return nil, errors.E(err, "frame.Load", path)
	}
	log.Debug.Printf("frame: loaded %s from %s", f, path)
	return f, nil
}
