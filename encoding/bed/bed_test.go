package bed

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioframe/genome"
	"github.com/grailbio/bioframe/interval"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const testBED = `track name=test
# comment
chr1	100	200
chr1	150	250	peak1	0	-

chr2	0	10	+
chrUn_gl000220	5	6
chr1	300	400	x
`

func TestScanner(t *testing.T) {
	s := NewScanner(strings.NewReader(testBED), DefaultReadOpts)
	var got []Record
	for s.Scan() {
		rec := s.Record()
		rec.Chrom = strings.Clone(rec.Chrom)
		got = append(got, rec)
	}
	assert.NoError(t, s.Err())
	expect.EQ(t, got, []Record{
		{Chrom: "chr1", Start: 100, End: 200, NFields: 3},
		{Chrom: "chr1", Start: 150, End: 250, Strand: genome.Minus, HasStrand: true, NFields: 6},
		{Chrom: "chr2", Start: 0, End: 10, Strand: genome.Plus, HasStrand: true, NFields: 4},
		{Chrom: "chrUn_gl000220", Start: 5, End: 6, NFields: 3},
		{Chrom: "chr1", Start: 300, End: 400, NFields: 4},
	})
}

func TestScannerOneBased(t *testing.T) {
	s := NewScanner(strings.NewReader("chr1\t1\t10\n"), ReadOpts{OneBasedInput: true})
	expect.True(t, s.Scan())
	expect.EQ(t, s.Record().Range(), interval.Range{Start: 0, End: 10})
	expect.False(t, s.Scan())
	expect.NoError(t, s.Err())
}

func TestScannerErrors(t *testing.T) {
	for _, input := range []string{
		"chr1\t100\n",
		"chr1\tx\t200\n",
		"chr1\t300\t200\n",
		"chr1\t-5\t200\n",
		"chr1\t1\t2\tn\t0\t?\n",
	} {
		s := NewScanner(strings.NewReader(input), DefaultReadOpts)
		expect.False(t, s.Scan(), input)
		expect.True(t, errors.Is(errors.Invalid, s.Err()), input)
	}
}

func testQuery(t *testing.T) *genome.Query {
	q, err := genome.NewQuery("hg19", []genome.ChromSize{{Name: "chr1", Length: 1000}, {Name: "chr2", Length: 100}})
	assert.NoError(t, err)
	return q
}

func TestReadLocationsSkipsUnknownChromosomes(t *testing.T) {
	q := testQuery(t)
	var locs []genome.Location
	report, err := ReadLocations(strings.NewReader(testBED+"chrM\t1\t2\nchrM\t3\t4\n"), q, DefaultReadOpts, func(l genome.Location) {
		locs = append(locs, l)
	})
	assert.NoError(t, err)
	expect.EQ(t, report.Records, 3)
	expect.EQ(t, report.Names, []string{"chrUn_gl000220", "chrM"})
	expect.EQ(t, len(locs), 4)
	expect.EQ(t, locs[1].Strand, genome.Minus)
	expect.EQ(t, locs[2].Chromosome.Name, "chr2")
}

func TestWriteAndReadBack(t *testing.T) {
	q := testQuery(t)
	chr1, chr2 := q.Chromosomes()[0], q.Chromosomes()[1]
	locs := []genome.Location{
		genome.NewLocation(1, 5, chr1, genome.Plus),
		genome.NewLocation(7, 9, chr1, genome.Minus),
		genome.NewLocation(0, 100, chr2, genome.Minus),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, WriteOpts{WithStrand: true})
	for _, l := range locs {
		assert.NoError(t, w.Write(l))
	}
	assert.NoError(t, w.Flush())
	expect.EQ(t, buf.String(), "chr1\t1\t5\t.\t0\t+\nchr1\t7\t9\t.\t0\t-\nchr2\t0\t100\t.\t0\t-\n")

	var got []genome.Location
	_, err := ReadLocations(&buf, q, DefaultReadOpts, func(l genome.Location) { got = append(got, l) })
	assert.NoError(t, err)
	expect.EQ(t, got, locs)
}

func TestOpenCreateGzip(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "bed")
	defer cleanup()
	ctx := vcontext.Background()
	q := testQuery(t)

	for _, name := range []string{"plain.bed", "compressed.bed.gz"} {
		path := filepath.Join(tmpDir, name)
		out, closeOut, err := Create(ctx, path)
		assert.NoError(t, err)
		w := NewWriter(out, WriteOpts{})
		assert.NoError(t, w.Write(genome.NewLocation(10, 20, q.Chromosomes()[0], genome.Plus)))
		assert.NoError(t, w.Flush())
		assert.NoError(t, closeOut())

		in, closeIn, err := Open(ctx, path)
		assert.NoError(t, err)
		n := 0
		_, err = ReadLocations(in, q, DefaultReadOpts, func(l genome.Location) {
			expect.EQ(t, l.Range, interval.Range{Start: 10, End: 20})
			n++
		})
		assert.NoError(t, err)
		assert.NoError(t, closeIn())
		expect.EQ(t, n, 1, name)
	}
}
