package interval

import "sort"

// A MergingList stores its disjoint runs as one strictly increasing sequence
// of endpoints {start0, end0, start1, end1, ...}.  For the runs
//   [5, 17) U [20, 25)
// the endpoints are {5, 17, 20, 25}.
//
// With this layout, searching for the first endpoint > pos answers most
// questions about pos directly: an odd index means pos is inside run idx/2,
// and an even index means pos lies in the gap before run idx/2.

// searchEndpoints returns the index of the first element of a that is >= x,
// or len(a) if there is none.
func searchEndpoints(a []PosType, x PosType) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// expsearchEndpoints is searchEndpoints for callers that already know the
// answer is at least idx.  It probes a[idx], a[idx+1], a[idx+3], a[idx+7]...
// and then bisects the last gap, which beats a full binary search when
// queries arrive in increasing order.
func expsearchEndpoints(a []PosType, x PosType, idx int) int {
	step := 1
	lo := idx
	hi := len(a)
	for idx < hi {
		if a[idx] >= x {
			hi = idx
			break
		}
		lo = idx + 1
		idx += step
		step *= 2
	}
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] >= x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// endpointIndex is the result of searchEndpoints(endpoints, pos+1) for some
// pos.  Note the "+1": it lines the search up with half-open runs.
type endpointIndex int

func newEndpointIndex(pos PosType, endpoints []PosType) endpointIndex {
	return endpointIndex(searchEndpoints(endpoints, pos+1))
}

// inside returns whether the position lies in a run.
func (ei endpointIndex) inside() bool {
	return ei&1 != 0
}

// run returns the run containing the position, or the next run if the
// position is in a gap.
func (ei endpointIndex) run() int {
	return int(ei) >> 1
}

// advance moves the index to newPos, which must not be smaller than the
// position the index currently refers to.
func (ei *endpointIndex) advance(newPos PosType, endpoints []PosType) {
	*ei = endpointIndex(expsearchEndpoints(endpoints, newPos+1, int(*ei)))
}

// UnionScanner iterates over the positions covered by a MergingList:
//   us := list.Scanner()
//   var start, end interval.PosType
//   for us.Scan(&start, &end, limit) {
//     for pos := start; pos < end; pos++ {
//       // ...
//     }
//   }
// A later Scan call with a larger limit picks up where the previous one
// stopped.
type UnionScanner struct {
	endpoints []PosType
	// pos is the next position to report; it is either inside a run or
	// PosTypeMax.
	pos PosType
	// idx == searchEndpoints(endpoints, pos+1).
	idx int
}

func newUnionScanner(endpoints []PosType) UnionScanner {
	us := UnionScanner{endpoints: endpoints, pos: PosTypeMax}
	if len(endpoints) > 0 {
		us.pos = endpoints[0]
		us.idx = 1
	}
	return us
}

// Pos returns the next position to be reported, or PosTypeMax when the
// scanner is exhausted.
func (us *UnionScanner) Pos() PosType {
	return us.pos
}

// Scan stores the next covered stretch below limit in [*start, *end) and
// returns true, or returns false once nothing below limit is left.
func (us *UnionScanner) Scan(start, end *PosType, limit PosType) bool {
	if us.pos >= limit {
		return false
	}
	*start = us.pos
	runEnd := us.endpoints[us.idx]
	if runEnd > limit {
		us.pos = limit
		*end = limit
		return true
	}
	*end = runEnd
	us.idx++
	if us.idx >= len(us.endpoints) {
		us.pos = PosTypeMax
	} else {
		us.pos = us.endpoints[us.idx]
		us.idx++
	}
	return true
}
