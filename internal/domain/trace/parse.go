// Package trace parses raw tabular gaze recordings into domain traces.
//
// The expected input is delimited text with a header row naming at least
// the three required columns. Column names are exact and case-sensitive;
// extra columns are ignored and column order is free.
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/gazelens/internal/domain/model"
)

// Required column names, matching the recorder's export format.
const (
	ColumnElapsed = "elapsedTime(seconds)"
	ColumnX       = "x"
	ColumnY       = "y"
)

const defaultMaxRows = 250_000

// Option applies a configuration option to the parser.
type Option func(*parser)

// WithMaxRows caps the number of data rows accepted before parsing is
// aborted with ErrTooManyRows. Non-positive values keep the default.
func WithMaxRows(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxRows = n
		}
	}
}

type parser struct {
	maxRows int
}

// Parse converts raw delimited text into an ordered Trace.
// Any malformed input is reported as a wrapped ErrParse so that the
// pipeline can surface it through its single failure boundary.
func Parse(text string, opts ...Option) (model.Trace, error) {
	p := &parser{maxRows: defaultMaxRows}
	for _, opt := range opts {
		opt(p)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrParse, err)
	}

	cols, err := columnIndexes(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var t model.Trace
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: reading row %d: %w", ErrParse, len(t)+1, err)
		}
		if len(t) >= p.maxRows {
			return nil, fmt.Errorf("%w: limit %d", ErrTooManyRows, p.maxRows)
		}
		s, err := parseSample(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrParse, len(t)+1, err)
		}
		t = append(t, s)
	}

	if len(t) == 0 {
		return nil, ErrEmptyTrace
	}
	return t, nil
}

// columns holds the resolved index of each required column in the header.
type columns struct {
	elapsed int
	x       int
	y       int
}

func columnIndexes(header []string) (columns, error) {
	c := columns{elapsed: -1, x: -1, y: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnElapsed:
			c.elapsed = i
		case ColumnX:
			c.x = i
		case ColumnY:
			c.y = i
		}
	}
	switch {
	case c.elapsed < 0:
		return c, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnElapsed)
	case c.x < 0:
		return c, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnX)
	case c.y < 0:
		return c, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnY)
	}
	return c, nil
}

func parseSample(record []string, cols columns) (model.Sample, error) {
	var s model.Sample
	var err error
	if s.ElapsedTime, err = parseCell(record, cols.elapsed, ColumnElapsed); err != nil {
		return s, err
	}
	if s.X, err = parseCell(record, cols.x, ColumnX); err != nil {
		return s, err
	}
	if s.Y, err = parseCell(record, cols.y, ColumnY); err != nil {
		return s, err
	}
	return s, nil
}

func parseCell(record []string, idx int, name string) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %q", ErrBadNumber, name, record[idx])
	}
	return v, nil
}
