package overlap

import (
	"fmt"
	"iter"

	"github.com/biogo/store/interval"
)

// Span is the capability a value needs to participate in overlap queries:
// a reference-sequence name and a 0-based half-open [start, end) range on
// it. Feature types from encoding/bed satisfy Span; so does any other type
// with these accessors.
type Span interface {
	RefName() string
	Start() int
	End() int
}

// InvalidFeatureError is returned by Add when a feature's coordinates do
// not form a valid half-open interval.
type InvalidFeatureError struct {
	RefName    string
	Start, End int
}

func (e *InvalidFeatureError) Error() string {
	return fmt.Sprintf("overlap: invalid feature %s:[%d,%d): start must be nonnegative and less than end",
		e.RefName, e.Start, e.End)
}

// entry is the interval-tree element for one stored feature.  Its ID is
// the feature's position in its reference sequence's feature list, which
// is unique within the tree and never reused.
type entry struct {
	start, end int
	pos        uintptr
}

func (e entry) Overlap(b interval.IntRange) bool {
	// Half-open overlap: touching ranges do not match.
	return e.start < b.End && e.end > b.Start
}

func (e entry) ID() uintptr { return e.pos }

func (e entry) Range() interval.IntRange { return interval.IntRange{Start: e.start, End: e.end} }

// partition bundles one reference sequence's state: the features in
// insertion order, the interval tree over their ranges, and whether the
// tree needs a fixup before the next query.  Keeping the three together
// means an Add can never leave one map in sync and another not.
type partition[F Span] struct {
	features []F
	tree     interval.IntTree
	dirty    bool
}

// reindex re-finalizes the tree if entries were inserted since the last
// query on this reference sequence.
func (p *partition[F]) reindex() {
	if p.dirty {
		p.tree.AdjustRanges()
		p.dirty = false
	}
}

// Detector answers overlap queries over a growing set of features.
// Features on different reference sequences never interact: a query on
// one reference neither consults nor rebuilds any other reference's
// index.
//
// To mix concrete feature types in one detector, instantiate it with a
// shared interface type, e.g. Detector[Span].
//
// A Detector is not safe for concurrent use; callers that share one
// across goroutines must synchronize externally.
type Detector[F Span] struct {
	refNames []string
	parts    map[string]*partition[F]
}

// New returns a Detector holding the given features, if any.
func New[F Span](features ...F) (*Detector[F], error) {
	d := &Detector[F]{parts: make(map[string]*partition[F])}
	if err := d.Add(features...); err != nil {
		return nil, err
	}
	return d, nil
}

// Add stores the given features, in order.  Each feature is appended to
// its reference sequence's feature list and inserted into that
// reference's index without re-finalizing it; the first query to touch
// the reference pays the one-time fixup instead.
//
// A feature with start < 0 or start >= end is rejected with
// *InvalidFeatureError.  Features added before the offending one stay
// added.
func (d *Detector[F]) Add(features ...F) error {
	for _, f := range features {
		start, end := f.Start(), f.End()
		if start < 0 || start >= end {
			return &InvalidFeatureError{RefName: f.RefName(), Start: start, End: end}
		}
		name := f.RefName()
		p := d.parts[name]
		if p == nil {
			p = &partition[F]{}
			d.parts[name] = p
			d.refNames = append(d.refNames, name)
		}
		e := entry{start: start, end: end, pos: uintptr(len(p.features))}
		if err := p.tree.Insert(e, true); err != nil {
			return err
		}
		p.features = append(p.features, f)
		p.dirty = true
	}
	return nil
}

// lookup returns the partition for refName with its index ready for
// querying, or nil if no feature on refName has ever been added.
func (d *Detector[F]) lookup(refName string) *partition[F] {
	p := d.parts[refName]
	if p != nil {
		p.reindex()
	}
	return p
}

// Overlapping returns a lazy sequence of the stored features on query's
// reference sequence whose range overlaps query's under the half-open
// convention: f.Start() < query.End() && f.End() > query.Start().
// Touching ranges do not overlap.  A reference sequence the detector has
// never seen yields an empty sequence, not an error.
//
// Result order follows the index and is not part of the contract.  The
// query may be any Span implementation; it need not be the stored type.
func (d *Detector[F]) Overlapping(query Span) iter.Seq[F] {
	return func(yield func(F) bool) {
		p := d.lookup(query.RefName())
		if p == nil {
			return
		}
		q := entry{start: query.Start(), end: query.End()}
		p.tree.DoMatching(func(e interval.IntInterface) bool {
			return !yield(p.features[e.ID()])
		}, q)
	}
}

// Overlaps reports whether at least one stored feature overlaps query.
// It stops at the first match rather than collecting them all.
func (d *Detector[F]) Overlaps(query Span) bool {
	p := d.lookup(query.RefName())
	if p == nil {
		return false
	}
	q := entry{start: query.Start(), end: query.End()}
	found := false
	p.tree.DoMatching(func(interval.IntInterface) bool {
		found = true
		return true
	}, q)
	return found
}

// Enclosing returns a lazy sequence of the stored features that wholly
// contain query: f.Start() <= query.Start() && query.End() <= f.End().
func (d *Detector[F]) Enclosing(query Span) iter.Seq[F] {
	return func(yield func(F) bool) {
		p := d.lookup(query.RefName())
		if p == nil {
			return
		}
		qs, qe := query.Start(), query.End()
		q := entry{start: qs, end: qe}
		p.tree.DoMatching(func(e interval.IntInterface) bool {
			if r := e.Range(); r.Start <= qs && qe <= r.End {
				return !yield(p.features[e.ID()])
			}
			return false
		}, q)
	}
}

// EnclosedBy returns a lazy sequence of the stored features wholly
// contained by query: query.Start() <= f.Start() && f.End() <= query.End().
func (d *Detector[F]) EnclosedBy(query Span) iter.Seq[F] {
	return func(yield func(F) bool) {
		p := d.lookup(query.RefName())
		if p == nil {
			return
		}
		qs, qe := query.Start(), query.End()
		q := entry{start: qs, end: qe}
		p.tree.DoMatching(func(e interval.IntInterface) bool {
			if r := e.Range(); qs <= r.Start && r.End <= qe {
				return !yield(p.features[e.ID()])
			}
			return false
		}, q)
	}
}

// All returns every stored feature: reference sequences in the order
// first seen, and features within a reference in insertion order.  The
// order is stable across queries, which never reorder storage.
func (d *Detector[F]) All() iter.Seq[F] {
	return func(yield func(F) bool) {
		for _, name := range d.refNames {
			for _, f := range d.parts[name].features {
				if !yield(f) {
					return
				}
			}
		}
	}
}
