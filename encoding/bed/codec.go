package bed

import (
	"encoding"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// missingField is the text standing in for a missing optional value.
const missingField = "."

// tokenize splits a record line into its whitespace-separated tokens.
// Any run of characters <= ' ' is a delimiter, so tab- and
// space-delimited BED bodies (and stray trailing newlines) all tokenize
// the same way.
func tokenize(line []byte) []string {
	var tokens []string
	for pos := 0; pos < len(line); {
		for pos < len(line) && line[pos] <= ' ' {
			pos++
		}
		if pos == len(line) {
			break
		}
		start := pos
		for pos < len(line) && line[pos] > ' ' {
			pos++
		}
		tokens = append(tokens, string(line[start:pos]))
	}
	return tokens
}

// decoder walks a tokenized record, converting one field per call with a
// sticky first error.
type decoder struct {
	tokens []string
	next   int
	err    error
}

func newDecoder(text []byte, nFields int) (*decoder, error) {
	tokens := tokenize(text)
	if len(tokens) != nFields {
		return nil, errors.Errorf("bed: expected %d fields but found %d in record %q",
			nFields, len(tokens), strings.Join(tokens, " "))
	}
	return &decoder{tokens: tokens}, nil
}

func (d *decoder) take() string {
	v := d.tokens[d.next]
	d.next++
	return v
}

func (d *decoder) fail(name, typ, value string) {
	if d.err == nil {
		d.err = errors.Errorf("bed: cannot parse field %s of type %s from %q in record %q",
			name, typ, value, strings.Join(d.tokens, " "))
	}
}

func (d *decoder) str(dst *string) {
	*dst = d.take()
}

// name reads an optional string field; "." decodes to the empty string.
func (d *decoder) name(dst *string) {
	if v := d.take(); v == missingField {
		*dst = ""
	} else {
		*dst = v
	}
}

func (d *decoder) int(dst *int, name string) {
	v := d.take()
	n, err := strconv.Atoi(v)
	if err != nil {
		d.fail(name, "int", v)
		return
	}
	*dst = n
}

func (d *decoder) optInt(dst **int, name string) {
	v := d.take()
	if v == missingField {
		*dst = nil
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		d.fail(name, "int", v)
		return
	}
	*dst = &n
}

func (d *decoder) float(dst *float64, name string) {
	v := d.take()
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.fail(name, "float", v)
		return
	}
	*dst = f
}

func (d *decoder) strand(dst *Strand, name string) {
	v := d.take()
	s, err := ParseStrand(v)
	if err != nil {
		d.fail(name, "strand", v)
		return
	}
	*dst = s
}

// color reads an optional color field; both "." and the UCSC convention
// "0" decode to nil.
func (d *decoder) color(dst **Color, name string) {
	v := d.take()
	if v == missingField || v == "0" {
		*dst = nil
		return
	}
	c, err := ParseColor(v)
	if err != nil {
		d.fail(name, "color", v)
		return
	}
	*dst = &c
}

// ints reads a comma-separated integer list, tolerating the trailing
// commas UCSC block lists carry.
func (d *decoder) ints(dst *[]int, name string) {
	v := d.take()
	trimmed := strings.TrimRight(v, ",")
	parts := strings.Split(trimmed, ",")
	xs := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			d.fail(name, "int list", v)
			return
		}
		xs[i] = n
	}
	*dst = xs
}

func nameText(s string) string {
	if s == "" {
		return missingField
	}
	return s
}

func optIntText(p *int) string {
	if p == nil {
		return missingField
	}
	return strconv.Itoa(*p)
}

func colorText(c *Color) string {
	if c == nil {
		return missingField
	}
	return c.String()
}

func intsText(xs []int) string {
	if len(xs) == 0 {
		return missingField
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func floatText(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func marshalFields(fields ...string) ([]byte, error) {
	return []byte(strings.Join(fields, "\t")), nil
}

// MarshalText renders the record as a tab-delimited BED2 body line,
// without a trailing newline.
func (b Bed2) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart))
}

// UnmarshalText parses and validates a BED2 body line.  Fields may be
// separated by any whitespace.
func (b *Bed2) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 2)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b Bed3) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd))
}

func (b *Bed3) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 3)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b Bed4) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd),
		nameText(b.Name))
}

func (b *Bed4) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 4)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	d.name(&b.Name)
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b Bed5) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd),
		nameText(b.Name), optIntText(b.Score))
}

func (b *Bed5) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 5)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	d.name(&b.Name)
	d.optInt(&b.Score, "score")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b Bed6) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd),
		nameText(b.Name), optIntText(b.Score), b.Strand.String())
}

func (b *Bed6) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 6)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	d.name(&b.Name)
	d.optInt(&b.Score, "score")
	d.strand(&b.Strand, "strand")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b Bed12) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd),
		nameText(b.Name), optIntText(b.Score), b.Strand.String(),
		optIntText(b.ThickStart), optIntText(b.ThickEnd), colorText(b.ItemRGB),
		optIntText(b.BlockCount), intsText(b.BlockSizes), intsText(b.BlockStarts))
}

func (b *Bed12) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 12)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	d.name(&b.Name)
	d.optInt(&b.Score, "score")
	d.strand(&b.Strand, "strand")
	d.optInt(&b.ThickStart, "thickStart")
	d.optInt(&b.ThickEnd, "thickEnd")
	d.color(&b.ItemRGB, "itemRgb")
	d.optInt(&b.BlockCount, "blockCount")
	d.ints(&b.BlockSizes, "blockSizes")
	d.ints(&b.BlockStarts, "blockStarts")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b BedGraph) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom, strconv.Itoa(b.ChromStart), strconv.Itoa(b.ChromEnd),
		floatText(b.Value))
}

func (b *BedGraph) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 4)
	if err != nil {
		return err
	}
	d.str(&b.Chrom)
	d.int(&b.ChromStart, "chromStart")
	d.int(&b.ChromEnd, "chromEnd")
	d.float(&b.Value, "value")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

func (b BedPE) MarshalText() ([]byte, error) {
	return marshalFields(b.Chrom1, strconv.Itoa(b.ChromStart1), strconv.Itoa(b.ChromEnd1),
		b.Chrom2, strconv.Itoa(b.ChromStart2), strconv.Itoa(b.ChromEnd2),
		nameText(b.Name), optIntText(b.Score), b.Strand1.String(), b.Strand2.String())
}

func (b *BedPE) UnmarshalText(text []byte) error {
	d, err := newDecoder(text, 10)
	if err != nil {
		return err
	}
	d.str(&b.Chrom1)
	d.int(&b.ChromStart1, "start1")
	d.int(&b.ChromEnd1, "end1")
	d.str(&b.Chrom2)
	d.int(&b.ChromStart2, "start2")
	d.int(&b.ChromEnd2, "end2")
	d.name(&b.Name)
	d.optInt(&b.Score, "score")
	d.strand(&b.Strand1, "strand1")
	d.strand(&b.Strand2, "strand2")
	if d.err != nil {
		return d.err
	}
	return b.Validate()
}

var (
	_ encoding.TextMarshaler = Bed2{}
	_ encoding.TextMarshaler = Bed3{}
	_ encoding.TextMarshaler = Bed4{}
	_ encoding.TextMarshaler = Bed5{}
	_ encoding.TextMarshaler = Bed6{}
	_ encoding.TextMarshaler = Bed12{}
	_ encoding.TextMarshaler = BedGraph{}
	_ encoding.TextMarshaler = BedPE{}

	_ encoding.TextUnmarshaler = (*Bed2)(nil)
	_ encoding.TextUnmarshaler = (*Bed3)(nil)
	_ encoding.TextUnmarshaler = (*Bed4)(nil)
	_ encoding.TextUnmarshaler = (*Bed5)(nil)
	_ encoding.TextUnmarshaler = (*Bed6)(nil)
	_ encoding.TextUnmarshaler = (*Bed12)(nil)
	_ encoding.TextUnmarshaler = (*BedGraph)(nil)
	_ encoding.TextUnmarshaler = (*BedPE)(nil)
)
