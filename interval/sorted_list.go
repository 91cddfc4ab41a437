package interval

import "sort"

// SortedList is an immutable multiset of ranges ordered by (start, end).
// Overlapping, duplicate and empty ranges are all kept.
type SortedList struct {
	starts []PosType
	ends   []PosType
	// maxEnds[i] = max(ends[0..i]).  It is nondecreasing, so the first range
	// that can reach past a position is found by binary search even though
	// a long range may start well before its shorter successors.
	maxEnds []PosType
}

// NewSortedList sorts a copy of ranges by (start, end).  An empty input
// yields an empty list.
func NewSortedList(ranges []Range) *SortedList {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sortRanges(sorted)
	l := &SortedList{
		starts:  make([]PosType, len(sorted)),
		ends:    make([]PosType, len(sorted)),
		maxEnds: make([]PosType, len(sorted)),
	}
	var maxEnd PosType
	for i, r := range sorted {
		l.starts[i] = r.Start
		l.ends[i] = r.End
		if i == 0 || r.End > maxEnd {
			maxEnd = r.End
		}
		l.maxEnds[i] = maxEnd
	}
	return l
}

// Len returns the number of stored ranges.
func (l *SortedList) Len() int {
	return len(l.starts)
}

// At returns the i'th range.
func (l *SortedList) At(i int) Range {
	return Range{Start: l.starts[i], End: l.ends[i]}
}

// Ranges returns a copy of the stored ranges.
func (l *SortedList) Ranges() []Range {
	return Ranges(l)
}

// lookup returns the leftmost index whose range could end after pos.
func (l *SortedList) lookup(pos PosType) int {
	return sort.Search(len(l.maxEnds), func(i int) bool { return l.maxEnds[i] > pos })
}

// OverlapsRange returns whether some stored range intersects [start, end).
func (l *SortedList) OverlapsRange(start, end PosType) bool {
	for i := l.lookup(start); i < len(l.starts) && l.starts[i] < end; i++ {
		if l.ends[i] > start {
			return true
		}
	}
	return false
}

// Includes returns whether a single stored range contains all of
// [start, end).
func (l *SortedList) Includes(start, end PosType) bool {
	i := sort.Search(len(l.maxEnds), func(i int) bool { return l.maxEnds[i] >= end })
	for ; i < len(l.starts) && l.starts[i] <= start; i++ {
		if l.ends[i] >= end {
			return true
		}
	}
	return false
}

// Intersect returns the non-empty pieces of [start, end) covered by each
// overlapping stored range, in stored order.  Pieces may overlap when the
// stored ranges do.
func (l *SortedList) Intersect(start, end PosType) []Range {
	var result []Range
	for i := l.lookup(start); i < len(l.starts) && l.starts[i] < end; i++ {
		piece := Range{Start: maxPos(l.starts[i], start), End: minPos(l.ends[i], end)}
		if !piece.Empty() {
			result = append(result, piece)
		}
	}
	return result
}

// Overlap returns the ranges of l that intersect other once widened by flank
// on both sides.
func (l *SortedList) Overlap(other List, flank PosType) []Range {
	return Overlap(l, other, flank)
}

// OverlapCount counts the ranges Overlap would return.
func (l *SortedList) OverlapCount(other List, flank PosType) int {
	return OverlapCount(l, other, flank)
}

// IntersectList returns the pieces of l covered by other's ranges.
func (l *SortedList) IntersectList(other List) []Range {
	return IntersectList(l, other)
}

// Merge coalesces the stored ranges into a MergingList.
func (l *SortedList) Merge() *MergingList {
	b := mergingBuilder{endpoints: make([]PosType, 0, 2*len(l.starts))}
	for i := range l.starts {
		b.add(l.starts[i], l.ends[i])
	}
	return b.list()
}
