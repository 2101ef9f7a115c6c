// Package sink writes processed lookup results as plain text or as
// tab-separated rows.
package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/heartmarshall/zhdict/internal/format"
	"github.com/spf13/afero"
)

// Writer writes one record per result. It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	format  string
	tsv     *csv.Writer
	written int
}

// New creates a Writer on out in the given output format.
func New(out io.Writer, outputFormat string) (*Writer, error) {
	w := &Writer{out: out, format: outputFormat}
	switch outputFormat {
	case config.OutputFormatText:
	case config.OutputFormatTSV:
		w.tsv = csv.NewWriter(out)
		w.tsv.Comma = '\t'
	default:
		return nil, fmt.Errorf("sink: unknown format %q", outputFormat)
	}
	return w, nil
}

// Open creates (or truncates) path on fs, creating parent directories, and
// returns a Writer on it. Close releases the file.
func Open(fs afero.Fs, path, outputFormat string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sink: create dir: %w", err)
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: create file: %w", err)
	}
	w, err := New(f, outputFormat)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f
	return w, nil
}

// Write renders res and writes it.
func (w *Writer) Write(_ context.Context, res domain.LookupResult) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.tsv != nil {
		err = w.writeRows(res)
	} else {
		err = w.writeText(res)
	}
	if err != nil {
		return fmt.Errorf("sink: write %q: %w", res.Request.Word, err)
	}
	w.written++
	return nil
}

// Close flushes buffered output and closes the underlying file, if any.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tsv != nil {
		w.tsv.Flush()
		if err := w.tsv.Error(); err != nil {
			return fmt.Errorf("sink: flush: %w", err)
		}
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Text renders a result the way the text sink writes it: a header line with
// the word and its type, the formatted entry, then the labelled gloss.
func Text(res domain.LookupResult) string {
	var b strings.Builder
	b.WriteString(res.Request.Word)
	if res.WordType != "" {
		b.WriteString(" [" + res.WordType.String() + "]")
	}
	b.WriteByte('\n')
	if res.Formatted != "" {
		b.WriteString(res.Formatted + "\n")
	}
	if g := format.Gloss(res.Gloss); g != "" {
		b.WriteString(g + "\n")
	}
	return b.String()
}

func (w *Writer) writeText(res domain.LookupResult) error {
	text := Text(res)
	if w.written > 0 {
		text = "\n" + text
	}
	_, err := io.WriteString(w.out, text)
	return err
}

// writeRows writes the sheet layout with the word type in a fourth column
// of the first row.
func (w *Writer) writeRows(res domain.LookupResult) error {
	for i, row := range format.Rows(res.Request.Word, res.Entry, res.Gloss) {
		wordType := ""
		if i == 0 {
			wordType = res.WordType.String()
		}
		if err := w.tsv.Write([]string{row[0], row[1], row[2], wordType}); err != nil {
			return err
		}
	}
	w.tsv.Flush()
	return w.tsv.Error()
}
