// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Column is one labeled, typed, fixed-length array.  Columns are immutable:
// every operation returns a new column.
type Column interface {
	// Label returns the column label.
	Label() string
	// Type returns the storage kind.
	Type() Type
	// TypeName returns the name written in frame headers: the Type name,
	// or the enum type name for enum columns.
	TypeName() string
	// Len returns the number of rows.
	Len() int
	// Rename returns the same data under a new label.
	Rename(label string) Column
	// Resize truncates the column, or pads it with zero values (0, false,
	// "", missing enum) up to n rows.
	Resize(n int) Column
	// Filter keeps the rows set in m, in order.
	Filter(m *Mask) Column
	// Reorder returns the column whose row i is row indices[i] of this one.
	// len(indices) must equal Len().
	Reorder(indices []int) (Column, error)
	// Plus appends the rows of other, which must have the same type.
	Plus(other Column) (Column, error)
	// Merge appends the distinct values of other that this column lacks.
	// It fails if this column holds duplicate values.
	Merge(other Column) (Column, error)
	// Sorted returns the permutation of row indices that sorts the column,
	// ascending unless reverse is set.  Equal values keep their row order.
	Sorted(reverse bool) []int
	// Intersect returns a predicate telling whether the value of a row of
	// this column occurs anywhere in other.
	Intersect(other Column) (RowPredicate, error)
	// Dump formats the value of a row.
	Dump(row int) string
	// GetAsDouble returns the value of a row of a numeric column.
	GetAsDouble(row int) (float64, error)
}

// RowPredicate tests one row.
type RowPredicate func(row int) bool

// And returns the conjunction of p and q.
func (p RowPredicate) And(q RowPredicate) RowPredicate {
	return func(row int) bool { return p(row) && q(row) }
}

// Or returns the disjunction of p and q.
func (p RowPredicate) Or(q RowPredicate) RowPredicate {
	return func(row int) bool { return p(row) || q(row) }
}

// Not returns the negation of p.
func (p RowPredicate) Not() RowPredicate {
	return func(row int) bool { return !p(row) }
}

// maxDuplicateExamples bounds the duplicates listed in a Merge error.
const maxDuplicateExamples = 10

func checkSameType(op string, c, other Column) error {
	if c.Type() != other.Type() || c.TypeName() != other.TypeName() {
		return errors.E(errors.Precondition, fmt.Sprintf("frame.%s: column %q is %s, column %q is %s",
			op, c.Label(), c.TypeName(), other.Label(), other.TypeName()))
	}
	return nil
}

func checkIndices(c Column, indices []int) error {
	if len(indices) != c.Len() {
		return errors.E(errors.Precondition, fmt.Sprintf("frame.Reorder %q: %d indices for %d rows",
			c.Label(), len(indices), c.Len()))
	}
	return nil
}

func unsupported(op string, c Column) error {
	return errors.E(errors.NotSupported, fmt.Sprintf("frame.%s: not supported on %s column %q", op, c.TypeName(), c.Label()))
}

func notNumeric(c Column) error {
	return errors.E(errors.NotSupported, fmt.Sprintf("frame.GetAsDouble: %s column %q is not numeric", c.TypeName(), c.Label()))
}

func resizeSlice[T any](data []T, n int) []T {
	result := make([]T, n)
	copy(result, data)
	return result
}

func filterSlice[T any](data []T, m *Mask) []T {
	result := make([]T, 0, m.Cardinality())
	m.Each(func(row int) {
		if row < len(data) {
			result = append(result, data[row])
		}
	})
	return result
}

func reorderSlice[T any](data []T, indices []int) []T {
	result := make([]T, len(indices))
	for i, j := range indices {
		result[i] = data[j]
	}
	return result
}

func concatSlices[T any](a, b []T) []T {
	result := make([]T, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

func identity(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// mergeSlices implements Column.Merge for comparable storage.  dump formats
// a row of a for error messages.
func mergeSlices[T comparable](label string, a, b []T, dump func(row int) string) ([]T, error) {
	seen := make(map[T]struct{}, len(a)+len(b))
	var dups []string
	nDups := 0
	for row, v := range a {
		if _, ok := seen[v]; ok {
			if nDups < maxDuplicateExamples {
				dups = append(dups, fmt.Sprintf("row %d: %s", row, dump(row)))
			}
			nDups++
			continue
		}
		seen[v] = struct{}{}
	}
	if nDups > 0 {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.Merge %q: %d duplicate value(s), e.g. %s",
			label, nDups, strings.Join(dups, ", ")))
	}
	result := make([]T, len(a), len(a)+len(b))
	copy(result, a)
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result, nil
}

func memberOf[T comparable](data, other []T) RowPredicate {
	set := make(map[T]struct{}, len(other))
	for _, v := range other {
		set[v] = struct{}{}
	}
	return func(row int) bool {
		_, ok := set[data[row]]
		return ok
	}
}
