package interval

import (
	"github.com/biogo/store/step"
	"github.com/pkg/errors"
)

// CoverageRun is a maximal stretch of positions covered by the same number
// of ranges.
type CoverageRun struct {
	Range
	Depth int
}

type depth int

func (d depth) Equal(e step.Equaler) bool { return d == e.(depth) }

func incDepth(e step.Equaler) step.Equaler { return e.(depth) + 1 }

// Coverage returns the runs of positions covered by at least one stored
// range, together with the number of ranges covering them, in increasing
// order.  Adjacent runs always differ in depth.
func (l *SortedList) Coverage() ([]CoverageRun, error) {
	n := len(l.starts)
	if n == 0 || l.starts[0] >= l.maxEnds[n-1] {
		return nil, nil
	}
	sv, err := step.New(int(l.starts[0]), int(l.maxEnds[n-1]), depth(0))
	if err != nil {
		return nil, errors.Wrapf(err, "interval.Coverage: [%d, %d)", l.starts[0], l.maxEnds[n-1])
	}
	for i := range l.starts {
		if l.starts[i] >= l.ends[i] {
			continue
		}
		if err := sv.ApplyRange(int(l.starts[i]), int(l.ends[i]), incDepth); err != nil {
			return nil, errors.Wrapf(err, "interval.Coverage: %v", l.At(i))
		}
	}
	var runs []CoverageRun
	sv.Do(func(start, end int, e step.Equaler) {
		if d := int(e.(depth)); d > 0 {
			runs = append(runs, CoverageRun{Range: Range{Start: PosType(start), End: PosType(end)}, Depth: d})
		}
	})
	return runs, nil
}
