package bed

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func intp(v int) *int { return &v }

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		name    string
		rec     Record
		wantErr string
	}{
		{"bed2", Bed2{"chr1", 0}, ""},
		{"bed2 negative", Bed2{"chr1", -4}, "invalid Bed2 chr1:-4: start must be nonnegative"},
		{"bed3", Bed3{"chr1", 1, 5}, ""},
		{"bed3 reversed", Bed3{"chr1", 5, 1}, "invalid Bed3 chr1:[5,1)"},
		{"bed3 empty", Bed3{"chr1", 3, 3}, "invalid Bed3 chr1:[3,3)"},
		{"bed3 negative", Bed3{"chr1", -1, 5}, "invalid Bed3 chr1:[-1,5)"},
		{"bed6", Bed6{"chr1", 1, 5, "x", nil, StrandFwd}, ""},
		{"bed12 reversed", Bed12{Chrom: "chr1", ChromStart: 9, ChromEnd: 2}, "invalid Bed12"},
		{"bedgraph", BedGraph{"chr1", 1, 2, 0.5}, ""},
		{"bedgraph empty", BedGraph{"chr1", 2, 2, 0.5}, "invalid BedGraph"},
		{"bedpe", BedPE{"chr1", 1, 2, "chr2", 3, 4, "p", nil, StrandNone, StrandNone}, ""},
		{"bedpe first bad", BedPE{"chr1", 2, 1, "chr2", 3, 4, "p", nil, StrandNone, StrandNone},
			"invalid BedPE first interval chr1:[2,1)"},
		{"bedpe second bad", BedPE{"chr1", 1, 2, "chr2", 4, 3, "p", nil, StrandNone, StrandNone},
			"invalid BedPE second interval chr2:[4,3)"},
	} {
		err := tt.rec.Validate()
		if tt.wantErr == "" {
			expect.NoError(t, err)
		} else {
			assert.NotNil(t, err)
			assert.HasSubstr(t, err.Error(), tt.wantErr)
		}
	}
}

func TestTerritory(t *testing.T) {
	expect.EQ(t, Bed2{"chr1", 5}.Territory(), []Span{Bed3{"chr1", 5, 6}})
	expect.EQ(t, Bed3{"chr1", 1, 9}.Territory(), []Span{Bed3{"chr1", 1, 9}})

	b12 := Bed12{Chrom: "chr1", ChromStart: 2, ChromEnd: 10}
	expect.EQ(t, b12.Territory(), []Span{b12})

	pe := BedPE{"chr1", 1, 2, "chr2", 3, 4, "pair", intp(30), StrandFwd, StrandRev}
	expect.EQ(t, pe.Territory(), []Span{pe.First(), pe.Second()})
}

func TestBedPESides(t *testing.T) {
	pe := BedPE{"chr1", 1, 2, "chr2", 3, 4, "pair", intp(30), StrandFwd, StrandRev}
	expect.EQ(t, pe.First(), Bed6{"chr1", 1, 2, "pair", intp(30), StrandFwd})
	expect.EQ(t, pe.Second(), Bed6{"chr2", 3, 4, "pair", intp(30), StrandRev})
}

func TestStrand(t *testing.T) {
	expect.EQ(t, StrandNone.String(), ".")
	expect.EQ(t, StrandFwd.String(), "+")
	expect.EQ(t, StrandRev.String(), "-")

	expect.EQ(t, StrandFwd.Opposite(), StrandRev)
	expect.EQ(t, StrandRev.Opposite(), StrandFwd)
	expect.EQ(t, StrandNone.Opposite(), StrandNone)

	for _, tt := range []struct {
		text string
		want Strand
	}{
		{".", StrandNone},
		{"+", StrandFwd},
		{"-", StrandRev},
	} {
		got, err := ParseStrand(tt.text)
		expect.NoError(t, err)
		expect.EQ(t, got, tt.want)
	}

	_, err := ParseStrand("x")
	assert.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), `invalid strand "x"`)
}

func TestColor(t *testing.T) {
	c, err := ParseColor("255,0,128")
	expect.NoError(t, err)
	expect.EQ(t, c, Color{255, 0, 128})
	expect.EQ(t, c.String(), "255,0,128")

	for _, tt := range []struct {
		text string
		want string
	}{
		{"1,2", "expected three comma-separated values"},
		{"1,2,3,4", "expected three comma-separated values"},
		{"256,0,0", "values must be integers in [0, 255]"},
		{"-1,0,0", "values must be integers in [0, 255]"},
		{"a,b,c", "values must be integers in [0, 255]"},
	} {
		_, err := ParseColor(tt.text)
		assert.NotNil(t, err)
		assert.HasSubstr(t, err.Error(), tt.want)
	}
}
