package interval

import (
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedListKeepsOverlaps(t *testing.T) {
	l := NewSortedList([]Range{{20, 25}, {0, 100}, {5, 10}, {5, 10}, {7, 7}})
	expect.EQ(t, l.Len(), 5)
	expect.EQ(t, l.Ranges(), []Range{{0, 100}, {5, 10}, {5, 10}, {7, 7}, {20, 25}})
	expect.EQ(t, l.Merge().Ranges(), []Range{{0, 100}})
}

func TestSortedListLongRangeBeforeQuery(t *testing.T) {
	// [0, 100) starts long before the query but still overlaps it.
	l := NewSortedList([]Range{{0, 100}, {10, 20}, {30, 40}})
	expect.True(t, l.OverlapsRange(50, 60))
	expect.True(t, l.Includes(50, 60))
	expect.False(t, l.Includes(50, 101))
	expect.EQ(t, l.Intersect(15, 35), []Range{{15, 35}, {15, 20}, {30, 35}})
	expect.False(t, l.OverlapsRange(100, 200))
}

func TestSortedListMatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ranges := randomRanges(r, 200, 2000)
	for i := 0; i < 10; i++ {
		ranges = append(ranges, Range{Start: PosType(r.Intn(2000)), End: PosType(2000 + r.Intn(500))})
	}
	l := NewSortedList(ranges)
	for i := 0; i < 500; i++ {
		q := randomRanges(r, 1, 2500)[0]
		overlaps, includes := false, false
		for _, rg := range ranges {
			if rg.Start < q.End && rg.End > q.Start {
				overlaps = true
			}
			if rg.Includes(q) {
				includes = true
			}
		}
		assert.Equal(t, overlaps, l.OverlapsRange(q.Start, q.End), "query %v", q)
		assert.Equal(t, includes, l.Includes(q.Start, q.End), "query %v", q)
	}
}

func TestSortedListOverlap(t *testing.T) {
	a := NewSortedList([]Range{{0, 10}, {5, 15}, {40, 50}})
	b := NewMergingList([]Range{{12, 20}})
	expect.EQ(t, a.Overlap(b, 0), []Range{{5, 15}})
	expect.EQ(t, a.OverlapCount(b, 2), 1)
	expect.EQ(t, a.OverlapCount(b, 3), 2)
	expect.EQ(t, a.IntersectList(b), []Range{{12, 15}})
}

func TestSortedListCoverage(t *testing.T) {
	l := NewSortedList([]Range{{0, 10}, {5, 15}, {5, 15}, {20, 30}, {25, 25}})
	runs, err := l.Coverage()
	require.NoError(t, err)
	expect.EQ(t, runs, []CoverageRun{
		{Range{0, 5}, 1},
		{Range{5, 10}, 3},
		{Range{10, 15}, 2},
		{Range{20, 30}, 1},
	})

	runs, err = NewSortedList(nil).Coverage()
	require.NoError(t, err)
	expect.EQ(t, len(runs), 0)
}
