package bed

import (
	"bytes"
	"encoding"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func writeOne[T encoding.TextMarshaler](t *testing.T, rec T, want string) {
	b := new(bytes.Buffer)
	w := NewWriter[T](b)
	assert.NoError(t, w.Write(rec))
	expect.EQ(t, b.String(), want)
}

func TestWriteRecords(t *testing.T) {
	b := new(bytes.Buffer)
	w := NewWriter[Bed3](b)
	assert.NoError(t, w.Write(Bed3{"chr1", 1, 2}))
	assert.NoError(t, w.Write(Bed3{"chr2", 3, 9}))
	expect.EQ(t, b.String(), "chr1\t1\t2\nchr2\t3\t9\n")
}

func TestWriteAllTypes(t *testing.T) {
	writeOne(t, Bed2{"chr1", 1}, "chr1\t1\n")
	writeOne(t, Bed3{"chr1", 1, 2}, "chr1\t1\t2\n")
	writeOne(t, Bed4{"chr1", 1, 2, "foo"}, "chr1\t1\t2\tfoo\n")
	writeOne(t, Bed5{"chr1", 1, 2, "foo", intp(3)}, "chr1\t1\t2\tfoo\t3\n")
	writeOne(t, Bed6{"chr1", 1, 2, "foo", intp(3), StrandFwd}, "chr1\t1\t2\tfoo\t3\t+\n")
	writeOne(t, Bed12{
		Chrom:       "chr1",
		ChromStart:  2,
		ChromEnd:    10,
		Name:        "bed12",
		Score:       intp(2),
		Strand:      StrandFwd,
		ThickStart:  intp(3),
		ThickEnd:    intp(4),
		ItemRGB:     &Color{101, 2, 32},
		BlockCount:  intp(2),
		BlockSizes:  []int{1, 2},
		BlockStarts: []int{0, 6},
	}, "chr1\t2\t10\tbed12\t2\t+\t3\t4\t101,2,32\t2\t1,2\t0,6\n")
	writeOne(t, BedGraph{"chr1", 1, 2, 0.2}, "chr1\t1\t2\t0.2\n")
	writeOne(t, BedPE{"chr1", 1, 2, "chr2", 3, 4, "foo", intp(5), StrandFwd, StrandRev},
		"chr1\t1\t2\tchr2\t3\t4\tfoo\t5\t+\t-\n")
}

func TestWriteComment(t *testing.T) {
	b := new(bytes.Buffer)
	w := NewWriter[Bed2](b)
	assert.NoError(t, w.WriteComment("hello mom!"))
	assert.NoError(t, w.Write(Bed2{"chr1", 1}))
	assert.NoError(t, w.WriteComment("hello\ndad!"))
	assert.NoError(t, w.Write(Bed2{"chr2", 2}))
	expect.EQ(t, b.String(), "# hello mom!\nchr1\t1\n# hello\n# dad!\nchr2\t2\n")
}

// Comments already carrying a comment prefix pass through verbatim.
func TestWritePrefixedComment(t *testing.T) {
	b := new(bytes.Buffer)
	w := NewWriter[Bed2](b)
	assert.NoError(t, w.WriteComment("track this-is-fine"))
	assert.NoError(t, w.WriteComment("browser is mario's enemy?"))
	assert.NoError(t, w.WriteComment("hello\nmom!"))
	assert.NoError(t, w.Write(Bed2{"chr1", 1}))
	assert.NoError(t, w.WriteComment("# hello dad!"))
	assert.NoError(t, w.Write(Bed2{"chr2", 2}))
	expect.EQ(t, b.String(),
		"track this-is-fine\nbrowser is mario's enemy?\n# hello\n# mom!\nchr1\t1\n# hello dad!\nchr2\t2\n")
}
