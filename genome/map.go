// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"sync/atomic"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// MapOpts controls Map and StrandMap construction.
type MapOpts struct {
	// Parallel computes the initial values concurrently, one task per key.
	// Construction waits for every task either way.
	Parallel bool
}

// DefaultMapOpts computes initial values in parallel.
var DefaultMapOpts = MapOpts{Parallel: true}

// slots is a fixed array of independently replaceable values, one per key.
// Concurrent Sets on the same key are last-write-wins.
type slots[T any] []atomic.Pointer[T]

func newSlots[T any](n int, opts MapOpts, init func(i int) T) slots[T] {
	s := make(slots[T], n)
	fill := func(i int) error {
		v := init(i)
		s[i].Store(&v)
		return nil
	}
	if !opts.Parallel {
		for i := range s {
			_ = fill(i)
		}
		return s
	}
	if err := traverse.Each(n, fill); err != nil {
		log.Panicf("genome: map initialization: %v", err)
	}
	return s
}

func (s slots[T]) get(i int) T {
	return *s[i].Load()
}

func (s slots[T]) set(i int, v T) {
	s[i].Store(&v)
}

// Map holds exactly one value per chromosome of a Query.
type Map[T any] struct {
	query  *Query
	values slots[T]
}

// NewMap calls init once per chromosome of q and returns the populated map.
func NewMap[T any](q *Query, opts MapOpts, init func(Chromosome) T) *Map[T] {
	return &Map[T]{
		query:  q,
		values: newSlots(q.Len(), opts, func(i int) T { return init(q.chromosomes[i]) }),
	}
}

// Query returns the key domain of m.
func (m *Map[T]) Query() *Query {
	return m.query
}

func (m *Map[T]) index(c Chromosome) (int, error) {
	i := m.query.indexOf(c)
	if i < 0 {
		return -1, errors.E(errors.NotExist, fmt.Sprintf("genome.Map: no such chromosome %v in %v", c, m.query))
	}
	return i, nil
}

// Get returns the value for c.  Chromosomes outside the query, including
// same-named chromosomes of another build, are NotExist errors.
func (m *Map[T]) Get(c Chromosome) (T, error) {
	i, err := m.index(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.values.get(i), nil
}

// Set replaces the value for c.
func (m *Map[T]) Set(c Chromosome, v T) error {
	i, err := m.index(c)
	if err != nil {
		return err
	}
	m.values.set(i, v)
	return nil
}

// Each calls fn for every chromosome in query order.
func (m *Map[T]) Each(fn func(Chromosome, T)) {
	for i, c := range m.query.chromosomes {
		fn(c, m.values.get(i))
	}
}

// StrandMap holds exactly one value per (chromosome, strand) of a Query.
type StrandMap[T any] struct {
	query  *Query
	values slots[T]
}

// NewStrandMap calls init once per chromosome and strand of q and returns
// the populated map.
func NewStrandMap[T any](q *Query, opts MapOpts, init func(Chromosome, Strand) T) *StrandMap[T] {
	return &StrandMap[T]{
		query: q,
		values: newSlots(2*q.Len(), opts, func(i int) T {
			return init(q.chromosomes[i>>1], Strand(i&1))
		}),
	}
}

// Query returns the chromosome domain of m.
func (m *StrandMap[T]) Query() *Query {
	return m.query
}

// Len returns the number of keys, twice the number of chromosomes.
func (m *StrandMap[T]) Len() int {
	return len(m.values)
}

func (m *StrandMap[T]) index(c Chromosome, s Strand) (int, error) {
	i := m.query.indexOf(c)
	if i < 0 || s > Minus {
		return -1, errors.E(errors.NotExist, fmt.Sprintf("genome.StrandMap: no such key %v%v in %v", c, s, m.query))
	}
	return 2*i + int(s), nil
}

// Get returns the value for (c, s).
func (m *StrandMap[T]) Get(c Chromosome, s Strand) (T, error) {
	i, err := m.index(c, s)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.values.get(i), nil
}

// Set replaces the value for (c, s).
func (m *StrandMap[T]) Set(c Chromosome, s Strand, v T) error {
	i, err := m.index(c, s)
	if err != nil {
		return err
	}
	m.values.set(i, v)
	return nil
}

// Each calls fn for every key, chromosomes in query order and Plus before
// Minus.
func (m *StrandMap[T]) Each(fn func(Chromosome, Strand, T)) {
	for i := range m.values {
		fn(m.query.chromosomes[i>>1], Strand(i&1), m.values.get(i))
	}
}
