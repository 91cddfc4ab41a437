// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"math/bits"

	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/log"
)

// Mask is a set of row indices in [0, Len()).  It tracks its logical length
// separately from the word-aligned bit storage, and bits at or past Len()
// are always clear.
type Mask struct {
	words []uintptr
	n     int
}

func nWords(n int) int {
	return (n + bitset.BitsPerWord - 1) / bitset.BitsPerWord
}

// NewMask returns an empty mask over n rows.
func NewMask(n int) *Mask {
	if n < 0 {
		log.Panicf("frame.NewMask: negative length %d", n)
	}
	return &Mask{words: make([]uintptr, nWords(n)), n: n}
}

// MaskOf returns a mask over n rows with the given rows set.
func MaskOf(n int, rows ...int) *Mask {
	m := NewMask(n)
	for _, row := range rows {
		m.Set(row)
	}
	return m
}

// Len returns the number of rows the mask ranges over.
func (m *Mask) Len() int {
	return m.n
}

func (m *Mask) check(i int) {
	if i < 0 || i >= m.n {
		log.Panicf("frame.Mask: row %d out of range [0, %d)", i, m.n)
	}
}

// Set adds row i.
func (m *Mask) Set(i int) {
	m.check(i)
	bitset.Set(m.words, i)
}

// Clear removes row i.
func (m *Mask) Clear(i int) {
	m.check(i)
	bitset.Clear(m.words, i)
}

// Test returns whether row i is set.
func (m *Mask) Test(i int) bool {
	m.check(i)
	return bitset.Test(m.words, i)
}

// Cardinality returns the number of set rows.
func (m *Mask) Cardinality() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

func (m *Mask) combine(other *Mask, op func(a, b uintptr) uintptr) *Mask {
	if m.n != other.n {
		log.Panicf("frame.Mask: length mismatch %d vs %d", m.n, other.n)
	}
	result := NewMask(m.n)
	for i := range result.words {
		result.words[i] = op(m.words[i], other.words[i])
	}
	return result
}

// And returns the rows set in both m and other.
func (m *Mask) And(other *Mask) *Mask {
	return m.combine(other, func(a, b uintptr) uintptr { return a & b })
}

// Or returns the rows set in m or other.
func (m *Mask) Or(other *Mask) *Mask {
	return m.combine(other, func(a, b uintptr) uintptr { return a | b })
}

// Not returns the rows of [0, Len()) not set in m.
func (m *Mask) Not() *Mask {
	result := NewMask(m.n)
	for i, w := range m.words {
		result.words[i] = ^w
	}
	if tail := m.n % bitset.BitsPerWord; tail != 0 {
		result.words[len(result.words)-1] &= (uintptr(1) << uint(tail)) - 1
	}
	return result
}

// Each calls fn with every set row in increasing order.
func (m *Mask) Each(fn func(row int)) {
	scratch := make([]uintptr, len(m.words))
	nonzero := 0
	for i, w := range m.words {
		scratch[i] = w
		if w != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		return
	}
	// The scanner clears scratch as it goes.
	for s, row := bitset.NewNonzeroWordScanner(scratch, nonzero); row != -1; row = s.Next() {
		fn(row)
	}
}

// Rows returns the set rows in increasing order.
func (m *Mask) Rows() []int {
	rows := make([]int, 0, m.Cardinality())
	m.Each(func(row int) { rows = append(rows, row) })
	return rows
}

// shifted returns a mask over n rows whose row i+offset is set iff row i of
// m is.
func (m *Mask) shifted(n, offset int) *Mask {
	result := NewMask(n)
	m.Each(func(row int) { bitset.Set(result.words, row+offset) })
	return result
}
