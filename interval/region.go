package interval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Region is a range on a named contig.
type Region struct {
	Contig string
	Range
}

// ParseRegionString parses a region string of one of the forms
//   [contig]:[1-based first pos]-[last pos]
//   [contig]:[1-based pos]
//   [contig]
// returning the contig and 0-based half-open boundaries.  The range
// [0, PosTypeMax - 1) is returned when there is no positional restriction.
func ParseRegionString(region string) (Region, error) {
	if region == "" {
		return Region{}, errors.New("interval.ParseRegionString: empty region string")
	}
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		return Region{Contig: region, Range: Range{Start: 0, End: PosTypeMax - 1}}, nil
	}
	if colonPos == 0 {
		return Region{}, errors.Errorf("interval.ParseRegionString: empty contig in %q", region)
	}
	result := Region{Contig: region[:colonPos]}
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		pos1, err := strconv.ParseInt(rangeStr, 10, 32)
		if err != nil {
			return Region{}, errors.Wrapf(err, "interval.ParseRegionString: %q", region)
		}
		if pos1 <= 0 {
			return Region{}, errors.Errorf("interval.ParseRegionString: position %v out of range", rangeStr)
		}
		result.Range = Range{Start: PosType(pos1 - 1), End: PosType(pos1)}
		return result, nil
	}
	start1, err := strconv.Atoi(rangeStr[:dashPos])
	if err != nil {
		return Region{}, errors.Wrapf(err, "interval.ParseRegionString: %q", region)
	}
	if start1 <= 0 {
		return Region{}, errors.Errorf("interval.ParseRegionString: position %v out of range", rangeStr[:dashPos])
	}
	end, err := strconv.Atoi(rangeStr[dashPos+1:])
	if err != nil {
		return Region{}, errors.Wrapf(err, "interval.ParseRegionString: %q", region)
	}
	// end == PosTypeMax is rejected so that PosTypeMax stays usable as a
	// sentinel.
	if end < start1 || end >= PosTypeMax {
		return Region{}, errors.Errorf("interval.ParseRegionString: invalid range %v", rangeStr)
	}
	result.Range = Range{Start: PosType(start1 - 1), End: PosType(end)}
	return result, nil
}

// String formats r the way ParseRegionString reads it.
func (r Region) String() string {
	return r.Contig + ":" + strconv.Itoa(int(r.Start)+1) + "-" + strconv.Itoa(int(r.End))
}
