// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// missingOrdinal marks an enum cell without a value, such as the padding
// added by Resize.
const missingOrdinal int32 = -1

// EnumColumn stores one Enum ordinal per row.
type EnumColumn struct {
	label string
	enum  *Enum
	data  []int32
}

// NewEnumColumn returns an enum column with the given ordinals.  The column
// takes ownership of ordinals.
func NewEnumColumn(label string, enum *Enum, ordinals []int32) *EnumColumn {
	return &EnumColumn{label: label, enum: enum, data: ordinals}
}

// NewEnumColumnOf returns an enum column holding the given value names.
func NewEnumColumnOf(label string, enum *Enum, names ...string) (*EnumColumn, error) {
	data := make([]int32, len(names))
	for i, name := range names {
		o, ok := enum.Ordinal(name)
		if !ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("frame: %q is not a %s", name, enum.TypeName))
		}
		data[i] = o
	}
	return NewEnumColumn(label, enum, data), nil
}

func (c *EnumColumn) with(data []int32) *EnumColumn {
	return &EnumColumn{label: c.label, enum: c.enum, data: data}
}

// Enum returns the enum type of the column.
func (c *EnumColumn) Enum() *Enum { return c.enum }

// Data returns the ordinals.  They must not be modified.
func (c *EnumColumn) Data() []int32 { return c.data }

// Value returns the name held by a row, or "" if it is missing.
func (c *EnumColumn) Value(row int) string { return c.enum.Name(c.data[row]) }

func (c *EnumColumn) Label() string    { return c.label }
func (c *EnumColumn) Type() Type       { return EnumType }
func (c *EnumColumn) TypeName() string { return c.enum.TypeName }
func (c *EnumColumn) Len() int         { return len(c.data) }

func (c *EnumColumn) Rename(label string) Column {
	return &EnumColumn{label: label, enum: c.enum, data: c.data}
}

func (c *EnumColumn) Resize(n int) Column {
	data := resizeSlice(c.data, n)
	for i := len(c.data); i < n; i++ {
		data[i] = missingOrdinal
	}
	return c.with(data)
}

func (c *EnumColumn) Filter(m *Mask) Column {
	return c.with(filterSlice(c.data, m))
}

func (c *EnumColumn) Reorder(indices []int) (Column, error) {
	if err := checkIndices(c, indices); err != nil {
		return nil, err
	}
	return c.with(reorderSlice(c.data, indices)), nil
}

func (c *EnumColumn) Plus(other Column) (Column, error) {
	if err := checkSameType("Plus", c, other); err != nil {
		return nil, err
	}
	return c.with(concatSlices(c.data, other.(*EnumColumn).data)), nil
}

// Merge is not supported on enum columns.
func (c *EnumColumn) Merge(Column) (Column, error) {
	return nil, unsupported("Merge", c)
}

// Sorted orders rows by ordinal, missing values first.
func (c *EnumColumn) Sorted(reverse bool) []int {
	indices := identity(len(c.data))
	sort.SliceStable(indices, func(i, j int) bool {
		if reverse {
			return c.data[indices[j]] < c.data[indices[i]]
		}
		return c.data[indices[i]] < c.data[indices[j]]
	})
	return indices
}

func (c *EnumColumn) Intersect(other Column) (RowPredicate, error) {
	if err := checkSameType("Intersect", c, other); err != nil {
		return nil, err
	}
	return memberOf(c.data, other.(*EnumColumn).data), nil
}

func (c *EnumColumn) Dump(row int) string { return c.Value(row) }

func (c *EnumColumn) GetAsDouble(int) (float64, error) {
	return 0, notNumeric(c)
}

// parseOrdinal parses an enum cell.  The empty string is the missing value.
func (e *Enum) parseOrdinal(s string) (int32, error) {
	if s == "" {
		return missingOrdinal, nil
	}
	if o, ok := e.Ordinal(s); ok {
		return o, nil
	}
	return 0, fmt.Errorf("unknown %s value", e.TypeName)
}
