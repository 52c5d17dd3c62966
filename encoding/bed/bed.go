// Package bed provides typed records for the BED family of genomic
// interval formats (BED2 through BED12, bedGraph, BedPE), a text codec
// for them, and file-level helpers that handle gzip and bgzf
// transparently.  All coordinates are 0-based half-open.
//
// Linear records satisfy the overlap package's Span interface and can be
// stored in an overlap.Detector directly.
package bed

import (
	"github.com/pkg/errors"
)

// Span is a located half-open interval: a reference sequence name plus a
// [start, end) range on it.  Every linear record in this package is a
// Span; Bed2 (a point) and BedPE (a pair) are not, but their Territory
// methods return Spans.
type Span interface {
	RefName() string
	Start() int
	End() int
}

// Record is implemented by every BED record type in this package.
//
// Validate checks that the record's coordinates form valid half-open
// intervals; UnmarshalText calls it after parsing, so decoded records are
// always valid.  Territory returns the intervals a record covers: the
// record itself for linear types, the single covered position for Bed2,
// and both sides for BedPE.
type Record interface {
	Validate() error
	Territory() []Span
}

func validateSpan(kind, chrom string, start, end int) error {
	if start < 0 || start >= end {
		return errors.Errorf("bed: invalid %s %s:[%d,%d): start must be nonnegative and less than end",
			kind, chrom, start, end)
	}
	return nil
}

// Bed2 is a BED record describing a single 0-based position: a 1-length
// point.  It carries no end coordinate and therefore is not a Span; use
// Territory for the covered interval.
type Bed2 struct {
	Chrom      string
	ChromStart int
}

func (b Bed2) RefName() string { return b.Chrom }
func (b Bed2) Start() int      { return b.ChromStart }

// Validate checks that the point has a nonnegative position.
func (b Bed2) Validate() error {
	if b.ChromStart < 0 {
		return errors.Errorf("bed: invalid Bed2 %s:%d: start must be nonnegative", b.Chrom, b.ChromStart)
	}
	return nil
}

// Territory returns the 1-length interval covered by the point.
func (b Bed2) Territory() []Span {
	return []Span{Bed3{Chrom: b.Chrom, ChromStart: b.ChromStart, ChromEnd: b.ChromStart + 1}}
}

// Bed3 is the minimal linear BED record: an interval on one reference
// sequence.
type Bed3 struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
}

func (b Bed3) RefName() string { return b.Chrom }
func (b Bed3) Start() int      { return b.ChromStart }
func (b Bed3) End() int        { return b.ChromEnd }

func (b Bed3) Validate() error {
	return validateSpan("Bed3", b.Chrom, b.ChromStart, b.ChromEnd)
}

// Territory returns the record itself.
func (b Bed3) Territory() []Span { return []Span{b} }

// Bed4 is a linear BED record with a name.  An empty Name is the missing
// value and encodes as ".".
type Bed4 struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Name       string
}

func (b Bed4) RefName() string { return b.Chrom }
func (b Bed4) Start() int      { return b.ChromStart }
func (b Bed4) End() int        { return b.ChromEnd }

func (b Bed4) Validate() error {
	return validateSpan("Bed4", b.Chrom, b.ChromStart, b.ChromEnd)
}

func (b Bed4) Territory() []Span { return []Span{b} }

// Bed5 is a linear BED record with a name and a score.  A nil Score is
// the missing value and encodes as ".".
type Bed5 struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Name       string
	Score      *int
}

func (b Bed5) RefName() string { return b.Chrom }
func (b Bed5) Start() int      { return b.ChromStart }
func (b Bed5) End() int        { return b.ChromEnd }

func (b Bed5) Validate() error {
	return validateSpan("Bed5", b.Chrom, b.ChromStart, b.ChromEnd)
}

func (b Bed5) Territory() []Span { return []Span{b} }

// Bed6 is a linear BED record with a name, score, and strand.
type Bed6 struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Name       string
	Score      *int
	Strand     Strand
}

func (b Bed6) RefName() string { return b.Chrom }
func (b Bed6) Start() int      { return b.ChromStart }
func (b Bed6) End() int        { return b.ChromEnd }

func (b Bed6) Validate() error {
	return validateSpan("Bed6", b.Chrom, b.ChromStart, b.ChromEnd)
}

func (b Bed6) Territory() []Span { return []Span{b} }

// Bed12 is the full UCSC BED record, adding display and block structure
// on top of Bed6.  ThickStart, ThickEnd, ItemRGB, and BlockCount are
// optional (nil encodes as "."); BlockSizes and BlockStarts are
// comma-separated integer lists.
type Bed12 struct {
	Chrom       string
	ChromStart  int
	ChromEnd    int
	Name        string
	Score       *int
	Strand      Strand
	ThickStart  *int
	ThickEnd    *int
	ItemRGB     *Color
	BlockCount  *int
	BlockSizes  []int
	BlockStarts []int
}

func (b Bed12) RefName() string { return b.Chrom }
func (b Bed12) Start() int      { return b.ChromStart }
func (b Bed12) End() int        { return b.ChromEnd }

func (b Bed12) Validate() error {
	return validateSpan("Bed12", b.Chrom, b.ChromStart, b.ChromEnd)
}

func (b Bed12) Territory() []Span { return []Span{b} }

// BedGraph is a linear record carrying a continuous-valued signal over
// its interval.
type BedGraph struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Value      float64
}

func (b BedGraph) RefName() string { return b.Chrom }
func (b BedGraph) Start() int      { return b.ChromStart }
func (b BedGraph) End() int        { return b.ChromEnd }

func (b BedGraph) Validate() error {
	return validateSpan("BedGraph", b.Chrom, b.ChromStart, b.ChromEnd)
}

func (b BedGraph) Territory() []Span { return []Span{b} }

// BedPE describes a pair of intervals, possibly on different reference
// sequences, per the bedtools BEDPE format.  Name and Score are shared
// by both sides; each side has its own strand.
type BedPE struct {
	Chrom1      string
	ChromStart1 int
	ChromEnd1   int
	Chrom2      string
	ChromStart2 int
	ChromEnd2   int
	Name        string
	Score       *int
	Strand1     Strand
	Strand2     Strand
}

// First returns the pair's first interval as a Bed6, carrying the shared
// name and score and the side's strand.
func (b BedPE) First() Bed6 {
	return Bed6{
		Chrom:      b.Chrom1,
		ChromStart: b.ChromStart1,
		ChromEnd:   b.ChromEnd1,
		Name:       b.Name,
		Score:      b.Score,
		Strand:     b.Strand1,
	}
}

// Second returns the pair's second interval as a Bed6.
func (b BedPE) Second() Bed6 {
	return Bed6{
		Chrom:      b.Chrom2,
		ChromStart: b.ChromStart2,
		ChromEnd:   b.ChromEnd2,
		Name:       b.Name,
		Score:      b.Score,
		Strand:     b.Strand2,
	}
}

// Validate checks both sides of the pair.
func (b BedPE) Validate() error {
	if err := validateSpan("BedPE first interval", b.Chrom1, b.ChromStart1, b.ChromEnd1); err != nil {
		return err
	}
	return validateSpan("BedPE second interval", b.Chrom2, b.ChromStart2, b.ChromEnd2)
}

// Territory returns both sides of the pair.
func (b BedPE) Territory() []Span {
	return []Span{b.First(), b.Second()}
}

var (
	_ Record = Bed2{}
	_ Record = Bed3{}
	_ Record = Bed4{}
	_ Record = Bed5{}
	_ Record = Bed6{}
	_ Record = Bed12{}
	_ Record = BedGraph{}
	_ Record = BedPE{}

	_ Span = Bed3{}
	_ Span = Bed4{}
	_ Span = Bed5{}
	_ Span = Bed6{}
	_ Span = Bed12{}
	_ Span = BedGraph{}
)
