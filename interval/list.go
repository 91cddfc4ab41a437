package interval

// List is the read-only contract shared by SortedList and MergingList.
type List interface {
	// Len returns the number of stored ranges.
	Len() int
	// At returns the i'th range in (start, end) order.
	At(i int) Range
	// OverlapsRange returns whether some stored range intersects [start, end).
	OverlapsRange(start, end PosType) bool
	// Includes returns whether some stored range contains all of [start, end).
	Includes(start, end PosType) bool
	// Intersect returns the non-empty pieces of [start, end) covered by the
	// stored ranges, one per overlapping stored range.
	Intersect(start, end PosType) []Range
}

// Ranges copies the contents of l to a slice.
func Ranges(l List) []Range {
	n := l.Len()
	result := make([]Range, n)
	for i := 0; i < n; i++ {
		result[i] = l.At(i)
	}
	return result
}

// Overlap returns the ranges of l that intersect other after being expanded
// by flank positions on both sides (start clamped at 0), in l's order.
func Overlap(l, other List, flank PosType) []Range {
	var result []Range
	n := l.Len()
	for i := 0; i < n; i++ {
		r := l.At(i)
		f := r.Flank(flank)
		if other.OverlapsRange(f.Start, f.End) {
			result = append(result, r)
		}
	}
	return result
}

// OverlapCount is len(Overlap(l, other, flank)) without the allocation.
func OverlapCount(l, other List, flank PosType) int {
	count := 0
	n := l.Len()
	for i := 0; i < n; i++ {
		f := l.At(i).Flank(flank)
		if other.OverlapsRange(f.Start, f.End) {
			count++
		}
	}
	return count
}

// IntersectList returns the pieces of l covered by other's ranges, in other's
// order.
func IntersectList(l, other List) []Range {
	var result []Range
	n := other.Len()
	for i := 0; i < n; i++ {
		r := other.At(i)
		result = append(result, l.Intersect(r.Start, r.End)...)
	}
	return result
}
