// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import "strconv"

// BooleanColumn stores one bit per row.
type BooleanColumn struct {
	label string
	bits  *Mask
}

// NewBooleanColumn returns a Boolean column whose true rows are those set in
// bits.  The column takes ownership of bits.
func NewBooleanColumn(label string, bits *Mask) *BooleanColumn {
	return &BooleanColumn{label: label, bits: bits}
}

// NewBooleanColumnOf returns a Boolean column holding values.
func NewBooleanColumnOf(label string, values ...bool) *BooleanColumn {
	bits := NewMask(len(values))
	for i, v := range values {
		if v {
			bits.Set(i)
		}
	}
	return NewBooleanColumn(label, bits)
}

// Bits returns the backing mask.  It must not be modified.
func (c *BooleanColumn) Bits() *Mask { return c.bits }

// Value returns the value of a row.
func (c *BooleanColumn) Value(row int) bool { return c.bits.Test(row) }

func (c *BooleanColumn) Label() string    { return c.label }
func (c *BooleanColumn) Type() Type       { return Boolean }
func (c *BooleanColumn) TypeName() string { return Boolean.String() }
func (c *BooleanColumn) Len() int         { return c.bits.Len() }

func (c *BooleanColumn) Rename(label string) Column {
	return &BooleanColumn{label: label, bits: c.bits}
}

func (c *BooleanColumn) Resize(n int) Column {
	bits := NewMask(n)
	c.bits.Each(func(row int) {
		if row < n {
			bits.Set(row)
		}
	})
	return NewBooleanColumn(c.label, bits)
}

func (c *BooleanColumn) Filter(m *Mask) Column {
	bits := NewMask(m.Cardinality())
	i := 0
	m.Each(func(row int) {
		if c.bits.Test(row) {
			bits.Set(i)
		}
		i++
	})
	return NewBooleanColumn(c.label, bits)
}

func (c *BooleanColumn) Reorder(indices []int) (Column, error) {
	if err := checkIndices(c, indices); err != nil {
		return nil, err
	}
	bits := NewMask(len(indices))
	for i, j := range indices {
		if c.bits.Test(j) {
			bits.Set(i)
		}
	}
	return NewBooleanColumn(c.label, bits), nil
}

// Plus shifts the true rows of other by Len().
func (c *BooleanColumn) Plus(other Column) (Column, error) {
	if err := checkSameType("Plus", c, other); err != nil {
		return nil, err
	}
	o := other.(*BooleanColumn)
	n := c.Len() + o.Len()
	return NewBooleanColumn(c.label, c.bits.shifted(n, 0).Or(o.bits.shifted(n, c.Len()))), nil
}

// Merge is not supported on Boolean columns.
func (c *BooleanColumn) Merge(Column) (Column, error) {
	return nil, unsupported("Merge", c)
}

// Sorted partitions the rows in two linear passes: false rows then true
// rows, or the opposite when reverse is set.
func (c *BooleanColumn) Sorted(reverse bool) []int {
	n := c.Len()
	indices := make([]int, 0, n)
	for _, first := range []bool{reverse, !reverse} {
		for row := 0; row < n; row++ {
			if c.bits.Test(row) == first {
				indices = append(indices, row)
			}
		}
	}
	return indices
}

// Intersect is not supported on Boolean columns.
func (c *BooleanColumn) Intersect(Column) (RowPredicate, error) {
	return nil, unsupported("Intersect", c)
}

func (c *BooleanColumn) Dump(row int) string { return strconv.FormatBool(c.bits.Test(row)) }

func (c *BooleanColumn) GetAsDouble(int) (float64, error) {
	return 0, notNumeric(c)
}
