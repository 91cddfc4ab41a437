package interval

import (
	"fmt"
	"math"
	"sort"

	"github.com/grailbio/base/log"
)

// PosType is the type used to represent interval coordinates.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Range is a half-open interval [Start, End).  Start <= End always holds;
// Start == End is a valid empty range which covers nothing.
type Range struct {
	Start PosType
	End   PosType
}

// NewRange returns [start, end).  It panics if end < start.
func NewRange(start, end PosType) Range {
	if end < start {
		log.Panicf("interval.NewRange: end %d < start %d", end, start)
	}
	return Range{Start: start, End: end}
}

// Length returns the number of positions covered by r.
func (r Range) Length() PosType {
	return r.End - r.Start
}

// Empty returns whether r covers no position.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Compare orders ranges by start, then by end.  It returns -1, 0 or 1.
func (r Range) Compare(other Range) int {
	switch {
	case r.Start < other.Start:
		return -1
	case r.Start > other.Start:
		return 1
	case r.End < other.End:
		return -1
	case r.End > other.End:
		return 1
	}
	return 0
}

// Less is shorthand for r.Compare(other) < 0.
func (r Range) Less(other Range) bool {
	return r.Compare(other) < 0
}

// Intersects returns whether r and other share a position, with the usual
// convention that an empty range strictly inside the other one intersects it.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Intersection returns the overlap of r and other.  The result is empty (and
// anchored at the larger start) when they don't intersect.
func (r Range) Intersection(other Range) Range {
	start := maxPos(r.Start, other.Start)
	end := minPos(r.End, other.End)
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// Contains returns whether pos lies inside r.
func (r Range) Contains(pos PosType) bool {
	return r.Start <= pos && pos < r.End
}

// Includes returns whether other is entirely within r.
func (r Range) Includes(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Flank returns r expanded by n positions on both sides.  The start is
// clamped at 0.
func (r Range) Flank(n PosType) Range {
	start := r.Start - n
	if start < 0 {
		start = 0
	}
	return Range{Start: start, End: r.End + n}
}

// Minus returns the parts of r that are not covered by any of others, in
// increasing order.  others may overlap each other and need not be sorted.
// Empty pieces are never reported.
func (r Range) Minus(others []Range) []Range {
	covered := make([]Range, len(others))
	copy(covered, others)
	sortRanges(covered)
	var result []Range
	cur := r.Start
	for _, o := range covered {
		if o.End <= cur || o.Empty() {
			continue
		}
		if o.Start >= r.End {
			break
		}
		if o.Start > cur {
			result = append(result, Range{Start: cur, End: o.Start})
		}
		cur = o.End
		if cur >= r.End {
			return result
		}
	}
	if cur < r.End {
		result = append(result, Range{Start: cur, End: r.End})
	}
	return result
}

// String formats r as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

func sortRanges(ranges []Range) {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Less(ranges[j]) })
}

func minPos(a, b PosType) PosType {
	if a < b {
		return a
	}
	return b
}

func maxPos(a, b PosType) PosType {
	if a > b {
		return a
	}
	return b
}
