/*Package interval implements containers of half-open [start, end) intervals
  on a single coordinate axis, optimized for genomic coordinates.

  Two containers are provided.  SortedList keeps every interval it was built
  from (overlaps and duplicates included), ordered by (start, end).
  MergingList coalesces overlapping and touching intervals into maximal
  disjoint runs, and supports linear-time union/intersection/difference
  against another MergingList.

  Both answer overlap, containment and intersection queries with binary
  search followed by a short forward scan.  Every position is assumed to fit
  in a PosType, which is int32 since that's what BAM/BED coordinates are
  limited to in practice.
*/
package interval
