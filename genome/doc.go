// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*Package genome describes the coordinate system genomic intervals live in:
  a genome Query (build name plus an ordered set of chromosomes with
  lengths), strands, Locations, and fixed-key maps from chromosome (or
  chromosome x strand) to per-chromosome values.

  A Map or StrandMap gets a value for every key of its Query at construction
  time, optionally computing them in parallel; construction returns only
  after every value is in place.  After that, point reads and writes are safe
  from any number of goroutines.
*/
package genome
