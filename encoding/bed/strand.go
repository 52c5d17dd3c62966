package bed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Strand is the orientation of a stranded BED record.
type Strand int

const (
	// StrandNone is the missing strand, written as ".".
	StrandNone Strand = iota
	// StrandFwd is the forward (5' to 3') strand, written as "+".
	StrandFwd
	// StrandRev is the reverse strand, written as "-".
	StrandRev
)

// strandToASCIITable is the Strand -> ASCII mapping.
var strandToASCIITable = [...]byte{'.', '+', '-'}

func (s Strand) String() string {
	return string(strandToASCIITable[s])
}

// Opposite returns the reverse orientation.  The missing strand has no
// opposite and is returned unchanged.
func (s Strand) Opposite() Strand {
	switch s {
	case StrandFwd:
		return StrandRev
	case StrandRev:
		return StrandFwd
	}
	return StrandNone
}

// ParseStrand converts "+", "-", or "." to a Strand.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case ".":
		return StrandNone, nil
	case "+":
		return StrandFwd, nil
	case "-":
		return StrandRev, nil
	}
	return StrandNone, errors.Errorf("bed: invalid strand %q: expected \"+\", \"-\", or \".\"", s)
}

// Color is an RGB display color for a BED record, written as "r,g,b".
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseColor converts an "r,g,b" string with each component in [0, 255].
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, errors.Errorf("bed: invalid color %q: expected three comma-separated values", s)
	}
	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > 255 {
			return Color{}, errors.Errorf("bed: invalid color %q: values must be integers in [0, 255]", s)
		}
		rgb[i] = uint8(v)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}
