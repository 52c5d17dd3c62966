package overlap

import (
	"iter"
	"sort"
)

// Interval is a 0-based half-open [Start, End) range on some reference
// sequence.
type Interval struct {
	Start, End int
}

// Union is a static merged view of a feature set: per reference sequence,
// the disjoint ascending intervals covering the same positions as the
// input features, with overlapping and touching inputs merged.  Unlike
// Detector it does not retain the features themselves, and membership
// queries cost a binary search with no rebuild bookkeeping.
//
// Each reference sequence's intervals are stored as a sorted endpoint
// sequence of length 2N: element 2k is interval #k's start and element
// 2k+1 its end.  An endpoint search landing at an odd index is therefore
// inside an interval.
type Union struct {
	refNames  []string
	endpoints map[string][]int
}

// NewUnion builds a Union from the given features, which may be unsorted
// and may repeat or overlap one another.  A feature with start < 0 or
// start >= end is rejected with *InvalidFeatureError, as in Detector.Add.
func NewUnion[F Span](features ...F) (*Union, error) {
	u := &Union{endpoints: make(map[string][]int)}
	byRef := make(map[string][]Interval)
	for _, f := range features {
		start, end := f.Start(), f.End()
		if start < 0 || start >= end {
			return nil, &InvalidFeatureError{RefName: f.RefName(), Start: start, End: end}
		}
		name := f.RefName()
		if _, seen := byRef[name]; !seen {
			u.refNames = append(u.refNames, name)
		}
		byRef[name] = append(byRef[name], Interval{start, end})
	}
	for _, name := range u.refNames {
		ivs := byRef[name]
		sort.Slice(ivs, func(i, j int) bool {
			if ivs[i].Start != ivs[j].Start {
				return ivs[i].Start < ivs[j].Start
			}
			return ivs[i].End < ivs[j].End
		})
		endpoints := make([]int, 0, 2*len(ivs))
		prev := ivs[0]
		for _, iv := range ivs[1:] {
			if iv.Start > prev.End {
				endpoints = append(endpoints, prev.Start, prev.End)
				prev = iv
			} else if iv.End > prev.End {
				prev.End = iv.End
			}
		}
		u.endpoints[name] = append(endpoints, prev.Start, prev.End)
	}
	return u, nil
}

// NewUnionFromSeq builds a Union from a feature sequence, e.g. a
// Detector's All.
func NewUnionFromSeq[F Span](features iter.Seq[F]) (*Union, error) {
	var collected []F
	for f := range features {
		collected = append(collected, f)
	}
	return NewUnion(collected...)
}

// Contains reports whether position pos on refName falls inside one of the
// merged intervals.  Unknown reference names simply report false.
func (u *Union) Contains(refName string, pos int) bool {
	return sort.SearchInts(u.endpoints[refName], pos+1)&1 == 1
}

// Overlaps reports whether [start, end) on refName intersects any merged
// interval, under the same half-open convention as Detector.Overlapping.
func (u *Union) Overlaps(refName string, start, end int) bool {
	endpoints := u.endpoints[refName]
	idx := sort.SearchInts(endpoints, start+1)
	if idx&1 == 1 {
		// endpoints[idx] is an interval end > start; the interval
		// overlaps iff its own start precedes the query end.
		return endpoints[idx-1] < end
	}
	return idx != len(endpoints) && endpoints[idx] < end
}

// Intervals returns the merged intervals for refName in ascending order,
// or nil if the reference sequence was never seen.  The slice is a copy.
func (u *Union) Intervals(refName string) []Interval {
	endpoints := u.endpoints[refName]
	if endpoints == nil {
		return nil
	}
	ivs := make([]Interval, len(endpoints)/2)
	for i := range ivs {
		ivs[i] = Interval{endpoints[2*i], endpoints[2*i+1]}
	}
	return ivs
}

// RefNames returns the reference sequence names in the order first seen
// by NewUnion.
func (u *Union) RefNames() []string {
	return u.refNames
}
