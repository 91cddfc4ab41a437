// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"sort"
	"strconv"

	"github.com/RoaringBitmap/roaring"
)

// Number is the set of numeric storage kinds.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// NumericColumn stores one number per row.
type NumericColumn[T Number] struct {
	label string
	typ   Type
	data  []T
}

type (
	// ByteColumn stores int8 values.
	ByteColumn = NumericColumn[int8]
	// ShortColumn stores int16 values.
	ShortColumn = NumericColumn[int16]
	// IntColumn stores int32 values.
	IntColumn = NumericColumn[int32]
	// LongColumn stores int64 values.
	LongColumn = NumericColumn[int64]
	// FloatColumn stores float32 values.
	FloatColumn = NumericColumn[float32]
	// DoubleColumn stores float64 values.
	DoubleColumn = NumericColumn[float64]
)

// NewByteColumn returns a Byte column.  The column takes ownership of data.
func NewByteColumn(label string, data []int8) *ByteColumn {
	return &ByteColumn{label: label, typ: Byte, data: data}
}

// NewShortColumn returns a Short column.  The column takes ownership of data.
func NewShortColumn(label string, data []int16) *ShortColumn {
	return &ShortColumn{label: label, typ: Short, data: data}
}

// NewIntColumn returns an Int column.  The column takes ownership of data.
func NewIntColumn(label string, data []int32) *IntColumn {
	return &IntColumn{label: label, typ: Int, data: data}
}

// NewLongColumn returns a Long column.  The column takes ownership of data.
func NewLongColumn(label string, data []int64) *LongColumn {
	return &LongColumn{label: label, typ: Long, data: data}
}

// NewFloatColumn returns a Float column.  The column takes ownership of data.
func NewFloatColumn(label string, data []float32) *FloatColumn {
	return &FloatColumn{label: label, typ: Float, data: data}
}

// NewDoubleColumn returns a Double column.  The column takes ownership of
// data.
func NewDoubleColumn(label string, data []float64) *DoubleColumn {
	return &DoubleColumn{label: label, typ: Double, data: data}
}

func (c *NumericColumn[T]) with(data []T) *NumericColumn[T] {
	return &NumericColumn[T]{label: c.label, typ: c.typ, data: data}
}

// Data returns the backing slice.  It must not be modified.
func (c *NumericColumn[T]) Data() []T { return c.data }

func (c *NumericColumn[T]) Label() string    { return c.label }
func (c *NumericColumn[T]) Type() Type       { return c.typ }
func (c *NumericColumn[T]) TypeName() string { return c.typ.String() }
func (c *NumericColumn[T]) Len() int         { return len(c.data) }

func (c *NumericColumn[T]) Rename(label string) Column {
	return &NumericColumn[T]{label: label, typ: c.typ, data: c.data}
}

func (c *NumericColumn[T]) Resize(n int) Column {
	return c.with(resizeSlice(c.data, n))
}

func (c *NumericColumn[T]) Filter(m *Mask) Column {
	return c.with(filterSlice(c.data, m))
}

func (c *NumericColumn[T]) Reorder(indices []int) (Column, error) {
	if err := checkIndices(c, indices); err != nil {
		return nil, err
	}
	return c.with(reorderSlice(c.data, indices)), nil
}

func (c *NumericColumn[T]) Plus(other Column) (Column, error) {
	if err := checkSameType("Plus", c, other); err != nil {
		return nil, err
	}
	return c.with(concatSlices(c.data, other.(*NumericColumn[T]).data)), nil
}

func (c *NumericColumn[T]) Merge(other Column) (Column, error) {
	if err := checkSameType("Merge", c, other); err != nil {
		return nil, err
	}
	data, err := mergeSlices(c.label, c.data, other.(*NumericColumn[T]).data, c.Dump)
	if err != nil {
		return nil, err
	}
	return c.with(data), nil
}

// lessNumber orders NaN before every other value.
func lessNumber[T Number](a, b T) bool {
	return a < b || (a != a && b == b)
}

func (c *NumericColumn[T]) Sorted(reverse bool) []int {
	indices := identity(len(c.data))
	sort.SliceStable(indices, func(i, j int) bool {
		a, b := c.data[indices[i]], c.data[indices[j]]
		if reverse {
			return lessNumber(b, a)
		}
		return lessNumber(a, b)
	})
	return indices
}

// Intersect is not supported on Long columns.  Byte, Short and Int values
// are looked up in a roaring bitmap of the other column's values.
func (c *NumericColumn[T]) Intersect(other Column) (RowPredicate, error) {
	if err := checkSameType("Intersect", c, other); err != nil {
		return nil, err
	}
	otherData := other.(*NumericColumn[T]).data
	switch c.typ {
	case Long:
		return nil, unsupported("Intersect", c)
	case Float, Double:
		return memberOf(c.data, otherData), nil
	}
	bm := roaring.New()
	for _, v := range otherData {
		bm.Add(uint32(int32(v)))
	}
	return func(row int) bool {
		return bm.Contains(uint32(int32(c.data[row])))
	}, nil
}

func (c *NumericColumn[T]) Dump(row int) string {
	v := c.data[row]
	switch c.typ {
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v), 10)
}

func (c *NumericColumn[T]) GetAsDouble(row int) (float64, error) {
	return float64(c.data[row]), nil
}

// bitSize returns the width of the storage kind of t.
func bitSize(t Type) int {
	switch t {
	case Byte:
		return 8
	case Short:
		return 16
	case Int, Float:
		return 32
	}
	return 64
}

// numberParser returns the cell parser of numeric type t.
func numberParser[T Number](t Type) func(string) (T, error) {
	size := bitSize(t)
	if t == Float || t == Double {
		return func(s string) (T, error) {
			v, err := strconv.ParseFloat(s, size)
			return T(v), err
		}
	}
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, size)
		return T(v), err
	}
}
