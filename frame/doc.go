// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
Package frame implements an immutable, typed, columnar table.

A Frame is an ordered list of uniquely labeled columns of the same length.
Each Column stores one flat slice of a single primitive kind (int8, int16,
int32, int64, float32, float64, string, bool or enum ordinal), so numeric
data can be handed to downstream code without copying through the
SliceAs* accessors.

Frames and columns never change once built.  Every transformation (Filter,
Reorder, Resize, Only, With, the joins) returns a new Frame; columns that a
transformation does not touch are shared between the old and the new frame.
Mutable construction goes through Builder and ColumnBuilder, which are frozen
into columns by Build.

Labels are looked up by content through a per-frame index.

Frames round-trip through a tab-separated text format: a comment line
listing the column types ("# Int; Double; String"), a line with the labels,
then one line per row.
*/
package frame
