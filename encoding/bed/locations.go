// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bed

import (
	"io"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bioframe/genome"
)

// SkipReport summarizes records dropped because their chromosome is not part
// of the genome query.
type SkipReport struct {
	// Records is the number of skipped records.
	Records int
	// Names holds up to ReadOpts.MaxSkippedNames distinct skipped chromosome
	// names, in first-seen order.
	Names []string
}

// ReadLocations parses BED records from r and calls fn with each record
// whose chromosome belongs to q.  Records on other chromosomes are skipped
// and reported, not treated as errors.  Records without a strand are placed
// on genome.Plus.
func ReadLocations(r io.Reader, q *genome.Query, opts ReadOpts, fn func(genome.Location)) (SkipReport, error) {
	var report SkipReport
	seen := map[string]bool{}
	s := NewScanner(r, opts)
	var (
		lastName string
		lastChr  genome.Chromosome
		lastOK   bool
	)
	for s.Scan() {
		rec := s.Record()
		if rec.Chrom != lastName || lastName == "" {
			chr, err := q.Chromosome(rec.Chrom)
			// rec.Chrom aliases the line buffer.
			lastName = strings.Clone(rec.Chrom)
			lastChr, lastOK = chr, err == nil
		}
		if !lastOK {
			report.Records++
			if !seen[rec.Chrom] {
				seen[lastName] = true
				if len(report.Names) < opts.MaxSkippedNames {
					report.Names = append(report.Names, lastName)
				}
			}
			continue
		}
		fn(genome.Location{
			Range:      rec.Range(),
			Chromosome: lastChr,
			Strand:     rec.Strand,
		})
	}
	if err := s.Err(); err != nil {
		return report, err
	}
	if report.Records > 0 {
		log.Printf("bed: ignored %d record(s) on %d chromosome(s) outside %s, e.g. %s",
			report.Records, len(seen), q.Build(), strings.Join(report.Names, ", "))
	}
	return report, nil
}
