// Package loader reads simulation result logs: one JSON object per line,
// optionally gzip-compressed.
package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single record. Long games with full round logs run to
// a few hundred kilobytes.
var maxLineSize = 16 * 1024 * 1024

// RawRecord is one parsed line. Line is 1-based.
type RawRecord struct {
	Line int
	Doc  map[string]any
}

// LoadFile opens path and returns its records in file order. Unparseable
// lines are reported to sink and skipped; blank lines are ignored.
func LoadFile(path string, sink WarningSink) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	records, err := Load(r, sink)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Load reads records from r. It returns ErrEmptyOrAllInvalid when r holds no
// parseable record.
func Load(r io.Reader, sink WarningSink) ([]RawRecord, error) {
	if sink == nil {
		sink = SlogSink{}
	}

	br := bufio.NewReaderSize(r, 64*1024)

	var (
		records []RawRecord
		buf     []byte
		tooLong bool
		line    int
	)
	for {
		chunk, err := br.ReadSlice('\n')
		switch {
		case tooLong:
			// Discard the rest of an oversized line.
		case len(buf)+len(chunk) > maxLineSize:
			tooLong = true
			buf = buf[:0]
		default:
			buf = append(buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		atEOF := err != nil
		if atEOF && len(chunk) == 0 && len(buf) == 0 && !tooLong {
			break
		}

		line++
		if tooLong {
			sink.LineSkipped(line, &ParseError{Line: line, Err: ErrLineTooLong})
		} else if text := bytes.TrimSpace(buf); len(text) > 0 {
			doc, err := parseLine(text)
			if err != nil {
				sink.LineSkipped(line, &ParseError{Line: line, Err: err})
			} else {
				records = append(records, RawRecord{Line: line, Doc: doc})
			}
		}
		buf, tooLong = buf[:0], false
		if atEOF {
			break
		}
	}

	if len(records) == 0 {
		return nil, ErrEmptyOrAllInvalid
	}
	return records, nil
}

func parseLine(text []byte) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", doc)
	}
	return obj, nil
}
