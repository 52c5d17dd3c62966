package bed

import (
	"context"
	"encoding"
	"io"
	"runtime"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bgzf"
	"github.com/klauspost/compress/gzip"
)

// File extensions conventionally carried by BED-family files.  WriteAll
// compresses output whose path ends in one of the gzip or bgzf
// extensions; ReadAll sniffs content instead of trusting the name.
const (
	Extension      = ".bed"
	GraphExtension = ".bedgraph"
	PEExtension    = ".bedpe"
	TrackExtension = ".track"
	GzExtension    = ".gz"
	GzipExtension  = ".gzip"
	BgzExtension   = ".bgz"
	BgzipExtension = ".bgzip"
)

// ReadAll reads every record of type T from the file at path, which may
// be plain text, gzip, or bgzf compressed.  Comment and blank lines are
// skipped.  path may name any scheme grailbio/base/file supports.
func ReadAll[T any, PT recordPtr[T]](ctx context.Context, path string) (records []T, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, "couldn't open BED file:", path)
	}
	defer file.CloseAndReport(ctx, infile, &err)
	reader, _ := compress.NewReader(infile.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()
	sc := NewScanner[T, PT](reader)
	var rec T
	for sc.Scan(PT(&rec)) {
		records = append(records, rec)
	}
	if serr := sc.Err(); serr != nil {
		return nil, errors.E(serr, "error reading BED file:", path)
	}
	log.Debug.Printf("bed: read %d records from %s", len(records), path)
	return records, nil
}

// WriteAll writes records to the file at path, one body line each,
// gzip-compressing when path ends in .gz/.gzip and bgzf-compressing when
// it ends in .bgz/.bgzip.
func WriteAll[T encoding.TextMarshaler](ctx context.Context, path string, records []T) (err error) {
	var outfile file.File
	if outfile, err = file.Create(ctx, path); err != nil {
		return errors.E(err, "couldn't create BED file:", path)
	}
	defer file.CloseAndReport(ctx, outfile, &err)
	var w io.Writer = outfile.Writer(ctx)
	switch {
	case strings.HasSuffix(path, BgzExtension) || strings.HasSuffix(path, BgzipExtension):
		bgzfWriter := bgzf.NewWriter(w, runtime.GOMAXPROCS(0))
		defer func() {
			if e := bgzfWriter.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = bgzfWriter
	case strings.HasSuffix(path, GzExtension) || strings.HasSuffix(path, GzipExtension):
		gzipWriter := gzip.NewWriter(w)
		defer func() {
			if e := gzipWriter.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gzipWriter
	}
	bedWriter := NewWriter[T](w)
	for _, rec := range records {
		if werr := bedWriter.Write(rec); werr != nil {
			return errors.E(werr, "error writing to BED file:", path)
		}
	}
	log.Debug.Printf("bed: wrote %d records to %s", len(records), path)
	return nil
}
