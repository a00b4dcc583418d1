// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/tabular/base/enums"
	"cogentcore.org/tabular/base/errors"
	"golang.org/x/text/unicode/norm"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Detect is used during reading a file: reads the first line and detects tabs or commas.
	// When writing, it is the same as Comma.
	Detect Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab

	// Space is the space rune delimiter, for SSV space separated value
	Space
)

var delimNames = []string{"detect", "comma", "tab", "space"}

func (dl Delims) String() string { return enums.String(dl, delimNames) }

// MarshalText implements [encoding.TextMarshaler].
func (dl Delims) MarshalText() ([]byte, error) { return []byte(dl.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dl *Delims) UnmarshalText(text []byte) error {
	v, err := enums.Parse[Delims](string(text), delimNames)
	if err != nil {
		return fmt.Errorf("table.Delims: %w: %w", err, ErrInvalidSpec)
	}
	*dl = v
	return nil
}

// Rune returns the delimiter rune.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Space:
		return ' '
	}
	return ','
}

// DetectDelim returns [Tab] if the first line of data has a tab
// and no comma, and [Comma] otherwise.
func DetectDelim(data []byte) Delims {
	line, _, _ := bytes.Cut(data, []byte{'\n'})
	if bytes.IndexByte(line, '\t') >= 0 && bytes.IndexByte(line, ',') < 0 {
		return Tab
	}
	return Comma
}

// CSVOptions are the options for reading and writing delimited files.
type CSVOptions struct {

	// Delim is the delimiter.
	Delim Delims `toml:"delim" yaml:"delim"`

	// KeyColumn is the name of the column holding the row keys.
	// When reading, the column is removed from the table and its cells
	// become the keys; if empty, rows get dense keys 0..n-1.
	// When writing, the keys are written as a first column of this
	// name; if empty, keys are not written.
	KeyColumn string `toml:"key" yaml:"key"`

	// NoHeaders indicates that there is no header row. When reading,
	// columns are named col_0, col_1, etc.
	NoHeaders bool `toml:"no-headers" yaml:"no-headers"`
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the options).
// See [ReadCSV] for details.
func OpenCSV(filename string, opts CSVOptions) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	dt, err := ReadCSV(bufio.NewReader(fp), opts)
	if err != nil {
		return nil, err
	}
	return dt.WithName(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))), nil
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, opts CSVOptions) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), opts)
}

// ReadCSV reads a table from delimited data, using the Go standard
// encoding/csv reader conforming to the official CSV standard.
// The first record is the header row unless [CSVOptions.NoHeaders].
// Each column is numeric if all of its non-missing values parse as
// numbers, and text otherwise; [MissingTokens] are missing.
// Text is trimmed and normalized to Unicode NFC, so that the same
// category label always compares equal.
// Records with a different number of fields than the header return
// an [ErrShapeMismatch] error.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	delim := opts.Delim
	if delim == Detect {
		delim = DetectDelim(data)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table.ReadCSV: %w", err)
	}
	if len(rec) == 0 {
		return New(nil)
	}
	var hdrs []string
	if opts.NoHeaders {
		hdrs = make([]string, len(rec[0]))
	} else {
		hdrs = rec[0]
		rec = rec[1:]
	}
	for ri, rw := range rec {
		if len(rw) != len(hdrs) {
			return nil, fmt.Errorf("table.ReadCSV: record %d has %d fields but header has %d: %w", ri+1, len(rw), len(hdrs), ErrShapeMismatch)
		}
	}
	cls := make([]Column, len(hdrs))
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		cls[ci] = ColumnFromStrings(hd, rec, ci)
	}
	var keys []Cell
	if opts.KeyColumn != "" {
		ki := -1
		for ci, cl := range cls {
			if cl.Name == opts.KeyColumn {
				ki = ci
				break
			}
		}
		if ki < 0 {
			names := make([]string, len(cls))
			for ci, cl := range cls {
				names[ci] = cl.Name
			}
			return nil, fmt.Errorf("table.ReadCSV: key %w", columnNotFound(opts.KeyColumn, names))
		}
		keys = cls[ki].Cells
		cls = append(cls[:ki], cls[ki+1:]...)
	} else {
		keys = Range(len(rec))
	}
	dt, err := New(keys, cls...)
	if err != nil {
		return nil, fmt.Errorf("table.ReadCSV: %w", err)
	}
	return dt, nil
}

// ColumnFromStrings returns the column with given name from field ci
// of each record, inferring its kind with [InferKind]: numeric if every
// non-missing value parses as a number, text otherwise.
func ColumnFromStrings(name string, rec [][]string, ci int) Column {
	kind := Missing
	for _, rw := range rec {
		switch k := InferKind(rw[ci]); {
		case k == Text:
			kind = Text
		case k == Number && kind == Missing:
			kind = Number
		}
		if kind == Text {
			break
		}
	}
	cl := Column{Name: name, Cells: make([]Cell, len(rec))}
	for ri, rw := range rec {
		str := strings.TrimSpace(rw[ci])
		switch {
		case IsMissingToken(str):
			cl.Cells[ri] = NA()
		case kind == Number:
			cl.Cells[ri] = Parse(str)
		default:
			cl.Cells[ri] = Str(norm.NFC.String(str))
		}
	}
	return cl
}

// InferKind returns the inferred kind of value for the given string:
// [Missing] for one of [MissingTokens], [Number] if it parses as a
// float, and [Text] otherwise.
func InferKind(str string) Kind {
	return Parse(str).Kind()
}

//////// WriteCSV

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the options).
func (dt *Table) SaveCSV(filename string, opts CSVOptions) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, opts)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes a table to delimited data. Missing cells are written
// as empty fields, and numbers use the "Precision" metadata of the table.
// A record of a single empty field is written as "" so that the row is
// kept when reading. Text cells equal to one of [MissingTokens], or that
// parse as numbers, are written as is and so read back by [ReadCSV] as
// missing or numeric cells.
func (dt *Table) WriteCSV(w io.Writer, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.Delim.Rune()
	if !opts.NoHeaders {
		if err := cw.Write(dt.Headers(opts.KeyColumn)); err != nil {
			return err
		}
	}
	prec := dt.meta.Precision()
	rec := make([]string, 0, dt.NumColumns()+1)
	for ri := range dt.NumRows() {
		rec = rec[:0]
		if opts.KeyColumn != "" {
			rec = append(rec, csvField(dt.keys[ri], prec))
		}
		for ci := range dt.NumColumns() {
			rec = append(rec, csvField(dt.cells(ci)[ri], prec))
		}
		if len(rec) == 1 && rec[0] == "" {
			// a blank line would be skipped on reading
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Headers returns the header names, preceded by keyColumn if not empty.
func (dt *Table) Headers(keyColumn string) []string {
	var hdrs []string
	if keyColumn != "" {
		hdrs = append(hdrs, keyColumn)
	}
	return append(hdrs, dt.ColumnNames()...)
}

func csvField(c Cell, prec int) string {
	switch c.Kind() {
	case Missing:
		return ""
	case Number:
		return strconv.FormatFloat(c.num, 'g', prec, 64)
	}
	return c.str
}
