package interval

// MergingList is an immutable set of disjoint, non-adjacent, non-empty
// ranges.  Building one coalesces every pair of ranges that overlap or
// touch, and drops empty ranges.
type MergingList struct {
	// endpoints holds start0, end0, start1, end1, ... and is strictly
	// increasing.
	endpoints []PosType
}

// NewMergingList sorts ranges by (start, end) and merges overlapping and
// touching ones in a single pass.  ranges is not modified.  An empty input
// yields an empty list.
func NewMergingList(ranges []Range) *MergingList {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sortRanges(sorted)
	return mergeSorted(sorted)
}

// mergeSorted builds a MergingList from ranges already in (start, end)
// order.
func mergeSorted(sorted []Range) *MergingList {
	b := mergingBuilder{endpoints: make([]PosType, 0, 2*len(sorted))}
	for _, r := range sorted {
		b.add(r.Start, r.End)
	}
	return b.list()
}

// mergingBuilder appends ranges in nondecreasing start order, extending the
// last run whenever the new range starts at or before its end.
type mergingBuilder struct {
	endpoints []PosType
}

func (b *mergingBuilder) add(start, end PosType) {
	if start >= end {
		return
	}
	n := len(b.endpoints)
	if n > 0 && start <= b.endpoints[n-1] {
		if end > b.endpoints[n-1] {
			b.endpoints[n-1] = end
		}
		return
	}
	b.endpoints = append(b.endpoints, start, end)
}

func (b *mergingBuilder) list() *MergingList {
	return &MergingList{endpoints: b.endpoints}
}

// Len returns the number of disjoint runs.
func (l *MergingList) Len() int {
	return len(l.endpoints) / 2
}

// At returns the i'th run.
func (l *MergingList) At(i int) Range {
	return Range{Start: l.endpoints[2*i], End: l.endpoints[2*i+1]}
}

// Ranges returns a copy of the runs.
func (l *MergingList) Ranges() []Range {
	return Ranges(l)
}

// Length returns the number of positions covered.
func (l *MergingList) Length() int64 {
	var total int64
	for i := 0; i < len(l.endpoints); i += 2 {
		total += int64(l.endpoints[i+1] - l.endpoints[i])
	}
	return total
}

// Contains returns whether pos is covered.
func (l *MergingList) Contains(pos PosType) bool {
	return newEndpointIndex(pos, l.endpoints).inside()
}

// firstRunEndingAfter returns the index of the first run whose end is >
// pos, or Len() if there is none.
func (l *MergingList) firstRunEndingAfter(pos PosType) int {
	return newEndpointIndex(pos, l.endpoints).run()
}

// OverlapsRange returns whether some run intersects [start, end).
func (l *MergingList) OverlapsRange(start, end PosType) bool {
	i := l.firstRunEndingAfter(start)
	return i < l.Len() && l.endpoints[2*i] < end
}

// Includes returns whether a single run contains all of [start, end).
func (l *MergingList) Includes(start, end PosType) bool {
	ei := newEndpointIndex(start, l.endpoints)
	i := ei.run()
	if !ei.inside() {
		// start sits in a gap (or exactly on a run end); only the run to the
		// left can still include an empty query ending at its end.
		i--
	}
	return i >= 0 && end <= l.endpoints[2*i+1] && l.endpoints[2*i] <= start
}

// Intersect returns the non-empty pieces of [start, end) covered by the
// list, in increasing order.
func (l *MergingList) Intersect(start, end PosType) []Range {
	var result []Range
	n := l.Len()
	for i := l.firstRunEndingAfter(start); i < n && l.endpoints[2*i] < end; i++ {
		piece := Range{Start: maxPos(l.endpoints[2*i], start), End: minPos(l.endpoints[2*i+1], end)}
		if !piece.Empty() {
			result = append(result, piece)
		}
	}
	return result
}

// IntersectionLength returns the number of positions of [start, end) that
// are covered.
func (l *MergingList) IntersectionLength(start, end PosType) int64 {
	var total int64
	n := l.Len()
	for i := l.firstRunEndingAfter(start); i < n && l.endpoints[2*i] < end; i++ {
		if s, e := maxPos(l.endpoints[2*i], start), minPos(l.endpoints[2*i+1], end); s < e {
			total += int64(e - s)
		}
	}
	return total
}

// Overlap returns the runs of l that intersect other once widened by flank on
// both sides.
func (l *MergingList) Overlap(other List, flank PosType) []Range {
	return Overlap(l, other, flank)
}

// OverlapCount counts the runs Overlap would return.
func (l *MergingList) OverlapCount(other List, flank PosType) int {
	return OverlapCount(l, other, flank)
}

// IntersectList returns the pieces of l covered by other's ranges.
func (l *MergingList) IntersectList(other List) []Range {
	return IntersectList(l, other)
}

// Or returns the union of l and other.
func (l *MergingList) Or(other *MergingList) *MergingList {
	a, b := l.endpoints, other.endpoints
	out := mergingBuilder{endpoints: make([]PosType, 0, len(a)+len(b))}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i] <= b[j]) {
			out.add(a[i], a[i+1])
			i += 2
		} else {
			out.add(b[j], b[j+1])
			j += 2
		}
	}
	return out.list()
}

// And returns the intersection of l and other.
func (l *MergingList) And(other *MergingList) *MergingList {
	a, b := l.endpoints, other.endpoints
	out := mergingBuilder{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		out.add(maxPos(a[i], b[j]), minPos(a[i+1], b[j+1]))
		if a[i+1] < b[j+1] {
			i += 2
		} else {
			j += 2
		}
	}
	return out.list()
}

// Minus returns the positions covered by l but not by other.
func (l *MergingList) Minus(other *MergingList) *MergingList {
	a, b := l.endpoints, other.endpoints
	out := mergingBuilder{}
	j := 0
	for i := 0; i < len(a); i += 2 {
		cur, end := a[i], a[i+1]
		for j < len(b) && b[j+1] <= cur {
			j += 2
		}
		for k := j; k < len(b) && b[k] < end; k += 2 {
			out.add(cur, b[k])
			if b[k+1] > cur {
				cur = b[k+1]
			}
		}
		out.add(cur, end)
	}
	return out.list()
}

// Complement returns the gaps of l within [0, limit).
func (l *MergingList) Complement(limit PosType) *MergingList {
	all := &MergingList{}
	if limit > 0 {
		all.endpoints = []PosType{0, limit}
	}
	return all.Minus(l)
}

// Equal returns whether l and other cover exactly the same positions.
func (l *MergingList) Equal(other *MergingList) bool {
	if len(l.endpoints) != len(other.endpoints) {
		return false
	}
	for i, e := range l.endpoints {
		if other.endpoints[i] != e {
			return false
		}
	}
	return true
}

// Scanner returns a UnionScanner positioned at the first run.
func (l *MergingList) Scanner() UnionScanner {
	return newUnionScanner(l.endpoints)
}

// Cursor answers Contains queries against l.  Queries at nondecreasing
// positions are answered with exponential search from the previous answer,
// which is much cheaper than a fresh binary search.  A Cursor is not safe for
// concurrent use; create one per goroutine.
type Cursor struct {
	endpoints    []PosType
	idx          endpointIndex
	lastPosPlus1 PosType
	isSequential bool
}

// NewCursor returns a Cursor over l.
func (l *MergingList) NewCursor() *Cursor {
	return &Cursor{endpoints: l.endpoints}
}

// Contains returns whether pos is covered.
func (c *Cursor) Contains(pos PosType) bool {
	posPlus1 := pos + 1
	if c.isSequential && posPlus1 >= c.lastPosPlus1 {
		c.idx.advance(pos, c.endpoints)
	} else {
		c.idx = newEndpointIndex(pos, c.endpoints)
		c.isSequential = true
	}
	c.lastPosPlus1 = posPlus1
	return c.idx.inside()
}
