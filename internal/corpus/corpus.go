// Package corpus opens sentence corpora from local files or remote URLs.
package corpus

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"iter"
	"net/http"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	ErrUnexpectedStatus errorkit.Error = "unexpected response status"
	ErrMalformedLine    errorkit.Error = "malformed corpus line"
)

// DefaultColumn is the sentence column of the tab separated sentence collections
// where the first column is the sentence id.
const DefaultColumn = 1

const maxLineSize = 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// HTTPClient is used to fetch remote corpora.
var HTTPClient = http.DefaultClient

// Open opens a corpus for reading.
// Locations starting with http:// or https:// are downloaded, anything else is a file path.
// Gzip compressed content is decompressed on the fly.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	rc, err := open(ctx, location)
	if err != nil {
		return nil, err
	}
	return decompress(rc)
}

func open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return os.Open(location)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || 300 <= resp.StatusCode {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, ErrUnexpectedStatus.F("GET %s: %d", location, resp.StatusCode)
	}
	return resp.Body, nil
}

func decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		_ = rc.Close()
		return nil, err
	}
	if !bytes.Equal(magic, gzipMagic) {
		return readCloser{Reader: br, close: rc.Close}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return readCloser{Reader: gz, close: func() error {
		return errorkit.Merge(gz.Close(), rc.Close())
	}}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error { return rc.close() }

// Sentences yields the given tab separated column of every non-empty line of rc.
// A line without the column yields ErrMalformedLine, and the iteration goes on
// if the consumer keeps ranging.
// rc is closed when the iteration ends.
func Sentences(rc io.ReadCloser, column int) iter.Seq2[string, error] {
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lines := iterkit.BufioScanner[string](scanner, rc)
	return func(yield func(string, error) bool) {
		var lineNo int
		for line, err := range lines {
			if err != nil {
				yield("", err)
				return
			}
			lineNo++
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			fields := strings.Split(line, "\t")
			if column < 0 || len(fields) <= column {
				if !yield("", ErrMalformedLine.F("line %d has no column %d", lineNo, column)) {
					return
				}
				continue
			}
			if !yield(fields[column], nil) {
				return
			}
		}
	}
}
