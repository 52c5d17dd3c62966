package bed

import (
	"bufio"
	"encoding"
	"io"
	"strings"
)

// commentPrefixes are the line prefixes treated as comments: skipped by
// Scanner, and passed through verbatim by Writer.WriteComment.
var commentPrefixes = []string{"#", "browser", "track"}

func isComment(line string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// recordPtr constrains PT to be a pointer to the record type T that can
// parse a body line.  Given T explicitly, PT is inferred.
type recordPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Scanner reads records of a single BED type from a stream, skipping
// blank and comment lines.  The Scan method parses the next record,
// returning a boolean indicating whether it succeeded.  Scanners are not
// threadsafe.
//
//	sc := bed.NewScanner[bed.Bed6](r)
//	var rec bed.Bed6
//	for sc.Scan(&rec) {
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type Scanner[T any, PT recordPtr[T]] struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a Scanner for record type T reading from r.
func NewScanner[T any, PT recordPtr[T]](r io.Reader) *Scanner[T, PT] {
	return &Scanner[T, PT]{b: bufio.NewScanner(r)}
}

// Scan parses the next record into rec.  Once Scan returns false, it
// never returns true again; check Err to distinguish end of stream from
// a read or parse error.
func (s *Scanner[T, PT]) Scan(rec PT) bool {
	if s.err != nil {
		return false
	}
	for s.b.Scan() {
		line := strings.TrimSpace(s.b.Text())
		if line == "" || isComment(line) {
			continue
		}
		if s.err = rec.UnmarshalText([]byte(line)); s.err != nil {
			return false
		}
		return true
	}
	s.err = s.b.Err()
	return false
}

// Err returns the first error encountered, or nil if scanning stopped at
// the end of the stream.
func (s *Scanner[T, PT]) Err() error {
	return s.err
}
