// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package bed reads and writes BED interval files.  Only the fields the
// interval containers need are interpreted: chrom, start, end and, when
// present, strand.
//
// The strand column is found automatically: BED6+ files carry it in the
// sixth column, and four-column "chrom start end strand" files in the
// fourth.
package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
)

// ReadOpts defines the behavior of Scanner.
type ReadOpts struct {
	// OneBasedInput interprets the BED interval boundaries as one-based
	// [start, end] instead of the usual zero-based [start, end).
	OneBasedInput bool
	// MaxSkippedNames bounds the number of distinct unknown chromosome names
	// remembered by ReadLocations for its report.
	MaxSkippedNames int
}

// DefaultReadOpts is the standard zero-based BED interpretation.
var DefaultReadOpts = ReadOpts{MaxSkippedNames: 10}

// Record is one parsed BED line.  Chrom is only valid until the next Scan.
type Record struct {
	Chrom     string
	Start     interval.PosType
	End       interval.PosType
	Strand    genome.Strand
	HasStrand bool
	// NFields is the number of whitespace-separated fields on the line.
	NFields int
}

// maxTokens is the number of leading fields the scanner looks at.
const maxTokens = 6

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.  The simple loops are faster than the standard
// library split functions for the handful of fields we need.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// isHeader returns whether a line is a comment or a UCSC track/browser line.
func isHeader(first []byte) bool {
	if first[0] == '#' {
		return true
	}
	s := gunsafe.BytesToString(first)
	return s == "track" || s == "browser"
}

// Scanner reads BED records one line at a time.
type Scanner struct {
	scanner       *bufio.Scanner
	opts          ReadOpts
	startSubtract int
	tokens        [maxTokens][]byte
	lineIdx       int
	rec           Record
	err           error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader, opts ReadOpts) *Scanner {
	s := &Scanner{scanner: bufio.NewScanner(r), opts: opts}
	s.scanner.Buffer(make([]byte, 64<<10), 16<<20)
	if opts.OneBasedInput {
		s.startSubtract = 1
	}
	return s
}

// Scan advances to the next record.  It returns false at end of input or on
// error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		s.lineIdx++
		curLine := s.scanner.Bytes()
		nToken := getTokens(s.tokens[:], curLine)
		if nToken == 0 || isHeader(s.tokens[0]) {
			continue
		}
		if nToken < 3 {
			s.err = errors.E(errors.Invalid, fmt.Sprintf("bed: line %d has fewer than 3 fields", s.lineIdx))
			return false
		}
		s.err = s.parse(nToken)
		return s.err == nil
	}
	if err := s.scanner.Err(); err != nil {
		s.err = errors.E(err, fmt.Sprintf("bed: reading line %d", s.lineIdx+1))
	}
	return false
}

func (s *Scanner) parse(nToken int) error {
	start, err := strconv.Atoi(gunsafe.BytesToString(s.tokens[1]))
	if err != nil {
		return errors.E(errors.Invalid, err, fmt.Sprintf("bed: line %d: bad start", s.lineIdx))
	}
	start -= s.startSubtract
	if start < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("bed: negative start coordinate %s on line %d", s.tokens[1], s.lineIdx))
	}
	end, err := strconv.Atoi(gunsafe.BytesToString(s.tokens[2]))
	if err != nil {
		return errors.E(errors.Invalid, err, fmt.Sprintf("bed: line %d: bad end", s.lineIdx))
	}
	if end < start || end >= interval.PosTypeMax {
		return errors.E(errors.Invalid, fmt.Sprintf("bed: invalid coordinate pair on line %d", s.lineIdx))
	}
	s.rec = Record{
		Chrom:   gunsafe.BytesToString(s.tokens[0]),
		Start:   interval.PosType(start),
		End:     interval.PosType(end),
		NFields: nToken,
	}
	strandIdx := -1
	switch {
	case nToken >= 6:
		strandIdx = 5
	case nToken == 4 && len(s.tokens[3]) == 1:
		strandIdx = 3
	}
	if strandIdx >= 0 {
		strand, err := genome.ParseStrand(gunsafe.BytesToString(s.tokens[strandIdx]))
		if err != nil {
			if strandIdx == 3 {
				// A one-character name, not a strand.
				return nil
			}
			return errors.E(errors.Invalid, err, fmt.Sprintf("bed: line %d", s.lineIdx))
		}
		s.rec.Strand = strand
		s.rec.HasStrand = s.tokens[strandIdx][0] != '.'
	}
	return nil
}

// Range returns [Start, End).
func (r Record) Range() interval.Range {
	return interval.Range{Start: r.Start, End: r.End}
}

// Record returns the most recently scanned record.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}
