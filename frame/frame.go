// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Frame is an immutable, ordered collection of uniquely labeled columns of
// the same length.
type Frame struct {
	rows    int
	columns []Column
	index   map[string]int
}

// New returns a frame holding columns.  All columns must have the same
// length, and labels must be distinct.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{columns: columns, index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.New: column %q has %d rows, column %q has %d",
				c.Label(), c.Len(), columns[0].Label(), f.rows))
		}
		if _, ok := f.index[c.Label()]; ok {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.New: duplicate label %q", c.Label()))
		}
		f.index[c.Label()] = i
	}
	return f, nil
}

// RowsNumber returns the number of rows.
func (f *Frame) RowsNumber() int { return f.rows }

// ColumnsNumber returns the number of columns.
func (f *Frame) ColumnsNumber() int { return len(f.columns) }

// Labels returns the column labels, in order.
func (f *Frame) Labels() []string {
	labels := make([]string, len(f.columns))
	for i, c := range f.columns {
		labels[i] = c.Label()
	}
	return labels
}

// Columns returns the columns, in order.  The slice must not be modified.
func (f *Frame) Columns() []Column { return f.columns }

// Column returns the i'th column.
func (f *Frame) Column(i int) Column { return f.columns[i] }

// Has returns whether the frame has a column labeled label.
func (f *Frame) Has(label string) bool {
	_, ok := f.index[label]
	return ok
}

// Get returns the column labeled label.  The error of an unknown label lists
// the known ones.
func (f *Frame) Get(label string) (Column, error) {
	i, ok := f.index[label]
	if !ok {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("frame: no column %q, columns are [%s]",
			label, strings.Join(f.Labels(), ", ")))
	}
	return f.columns[i], nil
}

func sliceAs[C Column, T any](f *Frame, label string, data func(C) T) (T, error) {
	var zero T
	c, err := f.Get(label)
	if err != nil {
		return zero, err
	}
	typed, ok := c.(C)
	if !ok {
		return zero, errors.E(errors.Precondition, fmt.Sprintf("frame: column %q is %s", label, c.TypeName()))
	}
	return data(typed), nil
}

// SliceAsByte returns the data of Byte column label.  It must not be
// modified.
func (f *Frame) SliceAsByte(label string) ([]int8, error) {
	return sliceAs(f, label, (*ByteColumn).Data)
}

// SliceAsShort returns the data of Short column label.
func (f *Frame) SliceAsShort(label string) ([]int16, error) {
	return sliceAs(f, label, (*ShortColumn).Data)
}

// SliceAsInt returns the data of Int column label.
func (f *Frame) SliceAsInt(label string) ([]int32, error) {
	return sliceAs(f, label, (*IntColumn).Data)
}

// SliceAsLong returns the data of Long column label.
func (f *Frame) SliceAsLong(label string) ([]int64, error) {
	return sliceAs(f, label, (*LongColumn).Data)
}

// SliceAsFloat returns the data of Float column label.
func (f *Frame) SliceAsFloat(label string) ([]float32, error) {
	return sliceAs(f, label, (*FloatColumn).Data)
}

// SliceAsDouble returns the data of Double column label.
func (f *Frame) SliceAsDouble(label string) ([]float64, error) {
	return sliceAs(f, label, (*DoubleColumn).Data)
}

// SliceAsString returns the data of String column label.
func (f *Frame) SliceAsString(label string) ([]string, error) {
	return sliceAs(f, label, (*StringColumn).Data)
}

// SliceAsBool returns the values of Boolean column label.
func (f *Frame) SliceAsBool(label string) ([]bool, error) {
	return sliceAs(f, label, func(c *BooleanColumn) []bool {
		values := make([]bool, c.Len())
		c.bits.Each(func(row int) { values[row] = true })
		return values
	})
}

// With returns a frame where c replaces the column of the same label, or is
// appended if there is none.  Unless the frame has no columns, c must have
// RowsNumber() rows.
func (f *Frame) With(c Column) (*Frame, error) {
	if len(f.columns) > 0 && c.Len() != f.rows {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.With %q: %d rows, frame has %d",
			c.Label(), c.Len(), f.rows))
	}
	columns := make([]Column, len(f.columns), len(f.columns)+1)
	copy(columns, f.columns)
	if i, ok := f.index[c.Label()]; ok {
		columns[i] = c
	} else {
		columns = append(columns, c)
	}
	return New(columns...)
}

func (f *Frame) mapColumns(fn func(Column) (Column, error)) (*Frame, error) {
	columns := make([]Column, len(f.columns))
	for i, c := range f.columns {
		var err error
		if columns[i], err = fn(c); err != nil {
			return nil, err
		}
	}
	return New(columns...)
}

// Resize truncates every column to n rows, or pads it with zero values.
func (f *Frame) Resize(n int) (*Frame, error) {
	if n < 0 {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.Resize: negative size %d", n))
	}
	return f.mapColumns(func(c Column) (Column, error) { return c.Resize(n), nil })
}

// Permute reorders every column so that row i of the result is row
// indices[i] of f.
func (f *Frame) Permute(indices []int) (*Frame, error) {
	return f.mapColumns(func(c Column) (Column, error) { return c.Reorder(indices) })
}

// Reorder sorts the rows by column label, ascending unless reverse is set.
func (f *Frame) Reorder(label string, reverse bool) (*Frame, error) {
	c, err := f.Get(label)
	if err != nil {
		return nil, err
	}
	return f.Permute(c.Sorted(reverse))
}

// PredicateFactory builds a row predicate for a frame, typically from
// accessors to some of its columns.
type PredicateFactory func(f *Frame) (RowPredicate, error)

// Test evaluates the predicate built by factory over rows [start, end) and
// returns the mask of matching rows.
func (f *Frame) Test(factory PredicateFactory, start, end int) (*Mask, error) {
	if start < 0 || end > f.rows || start > end {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.Test: rows [%d, %d) outside [0, %d)", start, end, f.rows))
	}
	pred, err := factory(f)
	if err != nil {
		return nil, err
	}
	m := NewMask(f.rows)
	for row := start; row < end; row++ {
		if pred(row) {
			m.Set(row)
		}
	}
	return m, nil
}

// Filter returns the rows for which the predicate built by factory holds,
// in order.
func (f *Frame) Filter(factory PredicateFactory) (*Frame, error) {
	m, err := f.Test(factory, 0, f.rows)
	if err != nil {
		return nil, err
	}
	return f.FilterMask(m)
}

// FilterMask returns the rows set in m, in order.
func (f *Frame) FilterMask(m *Mask) (*Frame, error) {
	if m.Len() != f.rows {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.Filter: mask over %d rows, frame has %d", m.Len(), f.rows))
	}
	return f.mapColumns(func(c Column) (Column, error) { return c.Filter(m), nil })
}

// Only returns the columns labeled labels, in the given order.
func (f *Frame) Only(labels ...string) (*Frame, error) {
	columns := make([]Column, len(labels))
	for i, label := range labels {
		var err error
		if columns[i], err = f.Get(label); err != nil {
			return nil, err
		}
	}
	return New(columns...)
}

// Omit returns the frame without the columns labeled labels.
func (f *Frame) Omit(labels ...string) (*Frame, error) {
	drop := make(map[string]bool, len(labels))
	for _, label := range labels {
		if _, err := f.Get(label); err != nil {
			return nil, err
		}
		drop[label] = true
	}
	var columns []Column
	for _, c := range f.columns {
		if !drop[c.Label()] {
			columns = append(columns, c)
		}
	}
	return New(columns...)
}

// Where returns a factory of predicates testing test on the numeric value of
// column label.
func Where(label string, test func(float64) bool) PredicateFactory {
	return func(f *Frame) (RowPredicate, error) {
		c, err := f.Get(label)
		if err != nil {
			return nil, err
		}
		if !c.Type().Numeric() {
			return nil, notNumeric(c)
		}
		return func(row int) bool {
			v, _ := c.GetAsDouble(row)
			return test(v)
		}, nil
	}
}

// WhereBool returns a factory of predicates selecting the rows where Boolean
// column label is value.
func WhereBool(label string, value bool) PredicateFactory {
	return func(f *Frame) (RowPredicate, error) {
		c, err := f.Get(label)
		if err != nil {
			return nil, err
		}
		b, ok := c.(*BooleanColumn)
		if !ok {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame: column %q is %s", label, c.TypeName()))
		}
		return func(row int) bool { return b.Value(row) == value }, nil
	}
}

// ColumnBind concatenates the columns of frames, which must have the same
// number of rows.  A label in exclude is taken from the first frame that has
// it and dropped from the others.  Any other label already taken gets the
// smallest integer suffix, above those given to earlier copies, that makes it
// unique and differs from every label of frames.
func ColumnBind(exclude []string, frames ...*Frame) (*Frame, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, label := range exclude {
		excluded[label] = true
	}
	reserved := map[string]bool{}
	for i, f := range frames {
		if f.rows != frames[0].rows {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.ColumnBind: frame %d has %d rows, frame 0 has %d",
				i, f.rows, frames[0].rows))
		}
		for _, c := range f.columns {
			reserved[c.Label()] = true
		}
	}
	var columns []Column
	taken := map[string]bool{}
	next := map[string]int{}
	for _, f := range frames {
		for _, c := range f.columns {
			label := c.Label()
			if taken[label] {
				if excluded[label] {
					continue
				}
				k := next[label]
				for {
					k++
					if candidate := label + strconv.Itoa(k); !taken[candidate] && !reserved[candidate] {
						label = candidate
						break
					}
				}
				next[c.Label()] = k
				c = c.Rename(label)
			}
			taken[label] = true
			columns = append(columns, c)
		}
	}
	return New(columns...)
}

// RowBind appends the rows of b to those of a.  Both must have the same
// labels in the same order, unless one of them has no rows.
func RowBind(a, b *Frame) (*Frame, error) {
	switch {
	case a.rows == 0:
		return b, nil
	case b.rows == 0:
		return a, nil
	}
	if !equalLabels(a.Labels(), b.Labels()) {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.RowBind: labels [%s] and [%s] differ",
			strings.Join(a.Labels(), ", "), strings.Join(b.Labels(), ", ")))
	}
	columns := make([]Column, len(a.columns))
	for i, c := range a.columns {
		var err error
		if columns[i], err = c.Plus(b.columns[i]); err != nil {
			return nil, err
		}
	}
	return New(columns...)
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinColumns(op, on string, frames []*Frame) ([]Column, error) {
	if len(frames) < 2 {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.%s: %d frame(s), need at least 2", op, len(frames)))
	}
	keys := make([]Column, len(frames))
	for i, f := range frames {
		var err error
		if keys[i], err = f.Get(on); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// MergeInner joins frames on column on, keeping the keys present in every
// frame.  Keys must be distinct within each frame.  Rows are sorted by key,
// and the key column appears once.
func MergeInner(on string, frames ...*Frame) (*Frame, error) {
	keys, err := joinColumns("MergeInner", on, frames)
	if err != nil {
		return nil, err
	}
	joined := make([]*Frame, len(frames))
	for i, f := range frames {
		var pred RowPredicate
		for j, other := range keys {
			if i == j {
				continue
			}
			p, err := keys[i].Intersect(other)
			if err != nil {
				return nil, err
			}
			if pred == nil {
				pred = p
			} else {
				pred = pred.And(p)
			}
		}
		filtered, err := f.Filter(func(*Frame) (RowPredicate, error) { return pred, nil })
		if err != nil {
			return nil, err
		}
		if joined[i], err = filtered.Reorder(on, false); err != nil {
			return nil, err
		}
	}
	return ColumnBind([]string{on}, joined...)
}

// MergeOuter joins frames on column on, keeping the keys present in any
// frame.  Keys must be distinct within each frame.  A frame lacking a key
// contributes zero values to its row.  Rows are sorted by key, and the key
// column appears once.
func MergeOuter(on string, frames ...*Frame) (*Frame, error) {
	keys, err := joinColumns("MergeOuter", on, frames)
	if err != nil {
		return nil, err
	}
	union := keys[0]
	for _, k := range keys[1:] {
		if union, err = union.Merge(k); err != nil {
			return nil, err
		}
	}
	joined := make([]*Frame, len(frames))
	for i, f := range frames {
		// Keys of f first, then the missing ones.
		key, err := keys[i].Merge(union)
		if err != nil {
			return nil, err
		}
		padded, err := f.Resize(union.Len())
		if err != nil {
			return nil, err
		}
		if padded, err = padded.With(key); err != nil {
			return nil, err
		}
		if joined[i], err = padded.Reorder(on, false); err != nil {
			return nil, err
		}
	}
	return ColumnBind([]string{on}, joined...)
}

// String returns a short description of the frame.
func (f *Frame) String() string {
	parts := make([]string, len(f.columns))
	for i, c := range f.columns {
		parts[i] = c.Label() + ":" + c.TypeName()
	}
	return fmt.Sprintf("Frame(%d rows; %s)", f.rows, strings.Join(parts, ", "))
}
