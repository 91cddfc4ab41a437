// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/errors"
)

// ColumnBuilder is the mutable counterpart of a Column: cells are loaded
// one at a time, then Build freezes the builder into a Column.  A builder
// must not be used after Build.
type ColumnBuilder interface {
	// Spec returns the description of the column being built.
	Spec() ColumnSpec
	// Len returns the current number of rows.
	Len() int
	// Resize truncates the builder, or pads it with zero values.
	Resize(n int)
	// Load parses value into row, which must be less than Len().
	Load(row int, value string) error
	// Build returns the column.
	Build() Column
}

type sliceBuilder[T any] struct {
	spec  ColumnSpec
	data  []T
	parse func(string) (T, error)
	pad   T
	build func(label string, data []T) Column
}

func (b *sliceBuilder[T]) Spec() ColumnSpec { return b.spec }
func (b *sliceBuilder[T]) Len() int         { return len(b.data) }

func (b *sliceBuilder[T]) Resize(n int) {
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	for len(b.data) < n {
		b.data = append(b.data, b.pad)
	}
}

func (b *sliceBuilder[T]) Load(row int, value string) error {
	v, err := b.parse(value)
	if err != nil {
		return errors.E(errors.Invalid, err, fmt.Sprintf("frame: row %d, column %q: cannot parse %q as %s",
			row, b.spec.Label, value, b.spec.TypeName()))
	}
	b.data[row] = v
	return nil
}

func (b *sliceBuilder[T]) Build() Column {
	c := b.build(b.spec.Label, b.data)
	b.data = nil
	return c
}

func newNumberBuilder[T Number](spec ColumnSpec, build func(string, []T) Column) ColumnBuilder {
	return &sliceBuilder[T]{spec: spec, parse: numberParser[T](spec.Type), build: build}
}

// NewColumnBuilder returns an empty builder for spec.
func NewColumnBuilder(spec ColumnSpec) (ColumnBuilder, error) {
	switch spec.Type {
	case Byte:
		return newNumberBuilder(spec, func(l string, d []int8) Column { return NewByteColumn(l, d) }), nil
	case Short:
		return newNumberBuilder(spec, func(l string, d []int16) Column { return NewShortColumn(l, d) }), nil
	case Int:
		return newNumberBuilder(spec, func(l string, d []int32) Column { return NewIntColumn(l, d) }), nil
	case Long:
		return newNumberBuilder(spec, func(l string, d []int64) Column { return NewLongColumn(l, d) }), nil
	case Float:
		return newNumberBuilder(spec, func(l string, d []float32) Column { return NewFloatColumn(l, d) }), nil
	case Double:
		return newNumberBuilder(spec, func(l string, d []float64) Column { return NewDoubleColumn(l, d) }), nil
	case String:
		return &sliceBuilder[string]{
			spec:  spec,
			parse: func(s string) (string, error) { return s, nil },
			build: func(l string, d []string) Column { return NewStringColumn(l, d) },
		}, nil
	case Boolean:
		return &sliceBuilder[bool]{
			spec:  spec,
			parse: strconv.ParseBool,
			build: func(l string, d []bool) Column { return NewBooleanColumnOf(l, d...) },
		}, nil
	case EnumType:
		if spec.Enum == nil {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame: enum column %q without an enum", spec.Label))
		}
		return &sliceBuilder[int32]{
			spec:  spec,
			parse: spec.Enum.parseOrdinal,
			pad:   missingOrdinal,
			build: func(l string, d []int32) Column { return NewEnumColumn(l, spec.Enum, d) },
		}, nil
	}
	return nil, errors.E(errors.Invalid, fmt.Sprintf("frame: column %q has unknown type %v", spec.Label, spec.Type))
}

// Builder accumulates a frame row by row.  It is not safe for concurrent
// use, and must not be used after Build.
type Builder struct {
	columns []ColumnBuilder
	rows    int
}

// NewBuilder returns an empty builder for columns described by specs.
// Labels must be distinct.
func NewBuilder(specs ...ColumnSpec) (*Builder, error) {
	seen := map[string]bool{}
	b := &Builder{columns: make([]ColumnBuilder, len(specs))}
	for i, spec := range specs {
		if seen[spec.Label] {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.NewBuilder: duplicate label %q", spec.Label))
		}
		seen[spec.Label] = true
		var err error
		if b.columns[i], err = NewColumnBuilder(spec); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Len returns the number of rows added so far.
func (b *Builder) Len() int {
	return b.rows
}

// AddRow parses one cell per column and appends the row.
func (b *Builder) AddRow(cells ...string) error {
	if len(cells) != len(b.columns) {
		return errors.E(errors.Precondition, fmt.Sprintf("frame: row %d has %d cells, want %d", b.rows, len(cells), len(b.columns)))
	}
	for i, c := range b.columns {
		c.Resize(b.rows + 1)
		if err := c.Load(b.rows, cells[i]); err != nil {
			for _, c := range b.columns[:i+1] {
				c.Resize(b.rows)
			}
			return err
		}
	}
	b.rows++
	return nil
}

// Build freezes the builder into a frame.
func (b *Builder) Build() (*Frame, error) {
	columns := make([]Column, len(b.columns))
	for i, c := range b.columns {
		columns[i] = c.Build()
	}
	b.columns = nil
	return New(columns...)
}
