// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package locations

// Metric scores the relationship between two location sets over the same
// genome query.
type Metric interface {
	Calc(a, b *MergingList) (float64, error)
}

// MetricFunc adapts a function to Metric.
type MetricFunc func(a, b *MergingList) (float64, error)

// Calc calls fn(a, b).
func (fn MetricFunc) Calc(a, b *MergingList) (float64, error) {
	return fn(a, b)
}

// Jaccard is |a and b| / |a or b| in covered positions, 0 when both are
// empty.
var Jaccard Metric = MetricFunc(func(a, b *MergingList) (float64, error) {
	and, err := a.And(b)
	if err != nil {
		return 0, err
	}
	or, err := a.Or(b)
	if err != nil {
		return 0, err
	}
	if or.Length() == 0 {
		return 0, nil
	}
	return float64(and.Length()) / float64(or.Length()), nil
})

// Coverage is the fraction of the positions of a also covered by b, 0 when
// a is empty.
var Coverage Metric = MetricFunc(func(a, b *MergingList) (float64, error) {
	and, err := a.And(b)
	if err != nil {
		return 0, err
	}
	if a.Length() == 0 {
		return 0, nil
	}
	return float64(and.Length()) / float64(a.Length()), nil
})
