// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import "sort"

// StringColumn stores one string per row.
type StringColumn struct {
	label string
	data  []string
}

// NewStringColumn returns a String column.  The column takes ownership of
// data.
func NewStringColumn(label string, data []string) *StringColumn {
	return &StringColumn{label: label, data: data}
}

// Data returns the backing slice.  It must not be modified.
func (c *StringColumn) Data() []string { return c.data }

func (c *StringColumn) Label() string    { return c.label }
func (c *StringColumn) Type() Type       { return String }
func (c *StringColumn) TypeName() string { return String.String() }
func (c *StringColumn) Len() int         { return len(c.data) }

func (c *StringColumn) Rename(label string) Column {
	return &StringColumn{label: label, data: c.data}
}

func (c *StringColumn) Resize(n int) Column {
	return NewStringColumn(c.label, resizeSlice(c.data, n))
}

func (c *StringColumn) Filter(m *Mask) Column {
	return NewStringColumn(c.label, filterSlice(c.data, m))
}

func (c *StringColumn) Reorder(indices []int) (Column, error) {
	if err := checkIndices(c, indices); err != nil {
		return nil, err
	}
	return NewStringColumn(c.label, reorderSlice(c.data, indices)), nil
}

func (c *StringColumn) Plus(other Column) (Column, error) {
	if err := checkSameType("Plus", c, other); err != nil {
		return nil, err
	}
	return NewStringColumn(c.label, concatSlices(c.data, other.(*StringColumn).data)), nil
}

func (c *StringColumn) Merge(other Column) (Column, error) {
	if err := checkSameType("Merge", c, other); err != nil {
		return nil, err
	}
	data, err := mergeSlices(c.label, c.data, other.(*StringColumn).data, c.Dump)
	if err != nil {
		return nil, err
	}
	return NewStringColumn(c.label, data), nil
}

// Sorted breaks ties by row index.
func (c *StringColumn) Sorted(reverse bool) []int {
	indices := identity(len(c.data))
	sort.SliceStable(indices, func(i, j int) bool {
		if reverse {
			return c.data[indices[j]] < c.data[indices[i]]
		}
		return c.data[indices[i]] < c.data[indices[j]]
	})
	return indices
}

func (c *StringColumn) Intersect(other Column) (RowPredicate, error) {
	if err := checkSameType("Intersect", c, other); err != nil {
		return nil, err
	}
	return memberOf(c.data, other.(*StringColumn).data), nil
}

func (c *StringColumn) Dump(row int) string { return c.data[row] }

func (c *StringColumn) GetAsDouble(int) (float64, error) {
	return 0, notNumeric(c)
}
