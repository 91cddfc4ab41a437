// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package genome

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bioframe/interval"
)

// Chromosome is a named contig of a genome build.  Two chromosomes are the
// same only if build, name and length all match, so a chromosome of one build
// is never found in a Query over another build.
type Chromosome struct {
	Build  string
	Name   string
	Length interval.PosType
}

func (c Chromosome) String() string {
	return c.Build + ":" + c.Name
}

// ChromSize is a (name, length) pair used to declare the chromosomes of a
// Query.
type ChromSize struct {
	Name   string
	Length interval.PosType
}

// Query is an ordered set of chromosomes of one genome build.  It bounds the
// key domain of Maps, StrandMaps and everything built on them.  A Query is
// immutable.
type Query struct {
	build       string
	chromosomes []Chromosome
	index       map[string]int
}

// NewQuery returns a Query over the given chromosomes, in the given order.
// Chromosome names must be unique and lengths nonnegative.
func NewQuery(build string, sizes []ChromSize) (*Query, error) {
	q := &Query{
		build:       build,
		chromosomes: make([]Chromosome, len(sizes)),
		index:       make(map[string]int, len(sizes)),
	}
	for i, s := range sizes {
		if s.Length < 0 {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("genome.NewQuery: chromosome %s has negative length %d", s.Name, s.Length))
		}
		if _, ok := q.index[s.Name]; ok {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("genome.NewQuery: duplicate chromosome %s in build %s", s.Name, build))
		}
		q.index[s.Name] = i
		q.chromosomes[i] = Chromosome{Build: build, Name: s.Name, Length: s.Length}
	}
	return q, nil
}

// Build returns the genome build name.
func (q *Query) Build() string {
	return q.build
}

// Len returns the number of chromosomes.
func (q *Query) Len() int {
	return len(q.chromosomes)
}

// Chromosomes returns the chromosomes in query order.  The caller must not
// modify the result.
func (q *Query) Chromosomes() []Chromosome {
	return q.chromosomes
}

// Chromosome looks up a chromosome by name.
func (q *Query) Chromosome(name string) (Chromosome, error) {
	i, ok := q.index[name]
	if !ok {
		return Chromosome{}, errors.E(errors.NotExist, fmt.Sprintf("genome: no chromosome %s in %v", name, q))
	}
	return q.chromosomes[i], nil
}

// indexOf returns the position of c in the query, or -1.
func (q *Query) indexOf(c Chromosome) int {
	i, ok := q.index[c.Name]
	if !ok || q.chromosomes[i] != c {
		return -1
	}
	return i
}

// Contains returns whether c belongs to the query.
func (q *Query) Contains(c Chromosome) bool {
	return q.indexOf(c) >= 0
}

// Restrict returns a Query over the named chromosomes only, keeping q's
// order.  Unknown names are an error.
func (q *Query) Restrict(names ...string) (*Query, error) {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := q.index[name]; !ok {
			return nil, errors.E(errors.NotExist, fmt.Sprintf("genome.Restrict: no chromosome %s in %v", name, q))
		}
		keep[name] = true
	}
	r := &Query{build: q.build, index: make(map[string]int, len(keep))}
	for _, c := range q.chromosomes {
		if keep[c.Name] {
			r.index[c.Name] = len(r.chromosomes)
			r.chromosomes = append(r.chromosomes, c)
		}
	}
	return r, nil
}

// Equal returns whether q and other have the same build and chromosomes in
// the same order.
func (q *Query) Equal(other *Query) bool {
	if q == other {
		return true
	}
	if q.build != other.build || len(q.chromosomes) != len(other.chromosomes) {
		return false
	}
	for i, c := range q.chromosomes {
		if other.chromosomes[i] != c {
			return false
		}
	}
	return true
}

func (q *Query) String() string {
	names := make([]string, len(q.chromosomes))
	for i, c := range q.chromosomes {
		names[i] = c.Name
	}
	return q.build + "[" + strings.Join(names, ", ") + "]"
}

// chromSizesRow is one line of a UCSC chrom.sizes file.
type chromSizesRow struct {
	Name   string
	Length int64
}

// faiRow is one line of a samtools FASTA index.
type faiRow struct {
	Name      string
	Length    int64
	Offset    int64
	LineBases int64
	LineWidth int64
}

// ReadChromSizes reads chromosome names and lengths from a chrom.sizes file,
// or from a FASTA index when path ends in ".fai".
func ReadChromSizes(r io.Reader, build string, fai bool) (*Query, error) {
	tr := tsv.NewReader(r)
	tr.Comment = '#'
	var sizes []ChromSize
	for {
		var name string
		var length int64
		if fai {
			var row faiRow
			if err := tr.Read(&row); err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.E(errors.Invalid, err, "genome.ReadChromSizes: FASTA index")
			}
			name, length = row.Name, row.Length
		} else {
			var row chromSizesRow
			if err := tr.Read(&row); err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.E(errors.Invalid, err, "genome.ReadChromSizes: chrom.sizes")
			}
			name, length = row.Name, row.Length
		}
		if length > interval.PosTypeMax {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("genome.ReadChromSizes: %s is too long (%d)", name, length))
		}
		sizes = append(sizes, ChromSize{Name: name, Length: interval.PosType(length)})
	}
	return NewQuery(build, sizes)
}

// LoadChromSizes is ReadChromSizes on a path.
func LoadChromSizes(ctx context.Context, build, path string) (q *Query, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ReadChromSizes(in.Reader(ctx), build, strings.HasSuffix(path, ".fai"))
}
