// Package vocab converts the pinyin column of a vocabulary list from tone
// numbers to tone marks.
//
// A vocabulary list is a delimited file with a header row naming at least a
// Mandarin term column, a numbered pinyin column and a translation column.
// The converted list is written back as term, pinyin, translation records
// without a header.
package vocab

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/go-pinyin-tones/internal/pinyin"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedRecord is returned for unparsable rows, rows with the wrong
	// number of fields, or a header that lacks a required column.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrWriteFailure is returned when the output cannot be created or written.
	ErrWriteFailure = errors.New("write failure")
)

// Entry is one vocabulary record.
type Entry struct {
	Term        string
	Pinyin      string
	Translation string
}

func (e Entry) record() []string {
	return []string{e.Term, e.Pinyin, e.Translation}
}

// Columns names the header cells the three fields are read from.
type Columns struct {
	Term        string
	Pinyin      string
	Translation string
}

// DefaultColumns returns the header names used by the original word lists.
func DefaultColumns() Columns {
	return Columns{Term: "Mandarin", Pinyin: "Pinyin", Translation: "German"}
}

// Stats summarises one transform run.
type Stats struct {
	Rows       int
	Duplicates int
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	delimiter rune
	columns   Columns
	normalize bool
	convert   func(string) string
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		delimiter: ',',
		columns:   DefaultColumns(),
		normalize: false,
		convert:   pinyin.NumbersToMarks,
		logger:    slog.Default(),
	}
}

// Option configures a Transformer.
type Option func(*options)

// WithDelimiter sets the field delimiter used for both input and output.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithColumns sets the header names of the term, pinyin and translation columns.
func WithColumns(c Columns) Option {
	return func(o *options) { o.columns = c }
}

// WithNormalize toggles Unicode NFC normalization of the pinyin field before
// conversion. It is off by default so fields pass through byte for byte.
func WithNormalize(on bool) Option {
	return func(o *options) { o.normalize = on }
}

// WithConvert replaces the pinyin conversion function.
func WithConvert(fn func(string) string) Option {
	return func(o *options) { o.convert = fn }
}

// WithLogger sets the slog.Logger that receives duplicate-term warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// Transformer
// ---------------------------------------------------------------------------

// Transformer rewrites vocabulary lists.
type Transformer struct {
	opts options
	log  *slog.Logger
}

// New returns a Transformer configured by optFns.
func New(optFns ...Option) *Transformer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Transformer{opts: opts, log: opts.logger}
}

// TransformFile reads the list at inPath and writes the converted list to
// outPath. The list is written to a temporary file next to outPath and
// renamed over it only once every record converted, so a failed run leaves
// any existing outPath as it was.
func (t *Transformer) TransformFile(ctx context.Context, inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
		}
		return Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*")
	if err != nil {
		return Stats{}, fmt.Errorf("%w: create %s: %w", ErrWriteFailure, outPath, err)
	}
	tmpPath := out.Name()
	defer func() { _ = os.Remove(tmpPath) }()
	if err := out.Chmod(0o644); err != nil {
		_ = out.Close()
		return Stats{}, fmt.Errorf("%w: chmod %s: %w", ErrWriteFailure, tmpPath, err)
	}

	stats, err := t.Transform(ctx, in, out)
	closeErr := out.Close()
	if err != nil {
		return stats, err
	}
	if closeErr != nil {
		return stats, fmt.Errorf("%w: close %s: %w", ErrWriteFailure, outPath, closeErr)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return stats, fmt.Errorf("%w: rename %s: %w", ErrWriteFailure, outPath, err)
	}
	return stats, nil
}

// Transform reads a vocabulary list from r and writes the converted records
// to w. Every record is written, in input order. A term that was already seen
// is reported as a warning on the logger and counted in Stats.Duplicates.
func (t *Transformer) Transform(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	cr := csv.NewReader(r)
	cr.Comma = t.opts.delimiter

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("%w: header: %w", ErrMalformedRecord, err)
	}
	idx, err := t.columnIndex(header)
	if err != nil {
		return stats, err
	}

	cw := csv.NewWriter(w)
	cw.Comma = t.opts.delimiter

	seen := make(map[string]struct{})
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		entry := Entry{
			Term:        rec[idx.term],
			Pinyin:      t.convert(rec[idx.pinyin]),
			Translation: rec[idx.translation],
		}

		if _, dup := seen[entry.Term]; dup {
			line, _ := cr.FieldPos(0)
			stats.Duplicates++
			t.log.WarnContext(ctx, "duplicate term",
				slog.String("term", entry.Term),
				slog.Int("line", line),
			)
		} else {
			seen[entry.Term] = struct{}{}
		}

		if err := cw.Write(entry.record()); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		stats.Rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	t.log.DebugContext(ctx, "vocabulary converted",
		slog.Int("rows", stats.Rows),
		slog.Int("duplicates", stats.Duplicates),
	)
	return stats, nil
}

func (t *Transformer) convert(s string) string {
	if t.opts.normalize {
		s = norm.NFC.String(s)
	}
	return t.opts.convert(s)
}

type columnIndex struct {
	term, pinyin, translation int
}

func (t *Transformer) columnIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: header has no %q column", ErrMalformedRecord, name)
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.term, err = lookup(t.opts.columns.Term); err != nil {
		return idx, err
	}
	if idx.pinyin, err = lookup(t.opts.columns.Pinyin); err != nil {
		return idx, err
	}
	if idx.translation, err = lookup(t.opts.columns.Translation); err != nil {
		return idx, err
	}
	return idx, nil
}
