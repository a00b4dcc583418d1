// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlio reads tables from SQL queries and writes tables
// to SQL databases through [database/sql]. The statements it
// generates work with both the sqlite and mysql drivers.
package sqlio

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/tabular/table"
	"golang.org/x/text/unicode/norm"
)

// DefaultBatchSize is the default number of rows per INSERT statement.
const DefaultBatchSize = 500

// DefaultMaxParams is the default limit on bind parameters in one
// statement: the SQLite limit, which is below the MySQL one (65535).
const DefaultMaxParams = 32766

// numericTypes are the database type names whose text values
// are parsed as numbers.
var numericTypes = map[string]bool{
	"INT": true, "INTEGER": true, "TINYINT": true, "SMALLINT": true, "MEDIUMINT": true, "BIGINT": true,
	"UNSIGNED INT": true, "UNSIGNED BIGINT": true, "UNSIGNED TINYINT": true, "UNSIGNED SMALLINT": true,
	"DECIMAL": true, "NUMERIC": true, "FLOAT": true, "DOUBLE": true, "REAL": true,
}

// Query runs the query and returns its result rows as a table.
// If keyColumn is not empty, that result column becomes the row keys,
// and otherwise the rows get dense keys 0..n-1. NULL values are missing.
func Query(ctx context.Context, db *sql.DB, query, keyColumn string, args ...any) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlio.Query: %w", err)
	}
	defer rows.Close()
	cts, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("sqlio.Query: %w", err)
	}
	cls := make([]table.Column, len(cts))
	numeric := make([]bool, len(cts))
	for i, ct := range cts {
		cls[i].Name = ct.Name()
		numeric[i] = numericTypes[strings.ToUpper(ct.DatabaseTypeName())]
	}
	vals := make([]any, len(cts))
	ptrs := make([]any, len(cts))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sqlio.Query: %w", err)
		}
		for i, v := range vals {
			cls[i].Cells = append(cls[i].Cells, cellOf(v, numeric[i]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlio.Query: %w", err)
	}
	var keys []table.Cell
	if keyColumn != "" {
		ki := -1
		names := make([]string, len(cls))
		for i, cl := range cls {
			names[i] = cl.Name
			if cl.Name == keyColumn {
				ki = i
			}
		}
		if ki < 0 {
			return nil, fmt.Errorf("sqlio.Query: key column %q not in result columns %v: %w", keyColumn, names, table.ErrInvalidSpec)
		}
		keys = cls[ki].Cells
		if keys == nil {
			keys = []table.Cell{}
		}
		cls = append(cls[:ki], cls[ki+1:]...)
	}
	dt, err := table.New(keys, cls...)
	if err != nil {
		return nil, fmt.Errorf("sqlio.Query: %w", err)
	}
	slog.Debug("sql query", "rows", dt.NumRows(), "columns", dt.NumColumns())
	return dt, nil
}

// cellOf returns the cell for a scanned value.
func cellOf(v any, numeric bool) table.Cell {
	switch x := v.(type) {
	case nil:
		return table.NA()
	case int64:
		return table.Float(float64(x))
	case float64:
		return table.Float(x)
	case bool:
		if x {
			return table.Int(1)
		}
		return table.Int(0)
	case []byte:
		return textCell(string(x), numeric)
	case string:
		return textCell(x, numeric)
	}
	return table.Str(fmt.Sprint(v))
}

func textCell(s string, numeric bool) table.Cell {
	if numeric {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return table.Float(f)
		}
	}
	return table.Str(norm.NFC.String(s))
}

// WriteOptions are the options for [Write].
type WriteOptions struct {

	// KeyColumn is the name of the SQL column for the row keys.
	// If empty, keys are not written.
	KeyColumn string `toml:"key" yaml:"key"`

	// BatchSize is the number of rows per INSERT statement,
	// [DefaultBatchSize] if 0. It is reduced for wide tables so that
	// a statement has at most MaxParams bind parameters.
	BatchSize int `toml:"batch-size" yaml:"batch-size"`

	// MaxParams is the maximum number of bind parameters the driver
	// accepts in one statement, [DefaultMaxParams] if 0.
	MaxParams int `toml:"max-params" yaml:"max-params"`

	// Replace drops any existing table of the same name first.
	Replace bool `toml:"replace" yaml:"replace"`
}

// Write writes the table to the SQL table with the given name,
// creating it if it does not exist, with a DOUBLE column for each
// numeric column and a TEXT column otherwise. The rows are inserted
// in batches within a single transaction. Missing cells are NULL.
func Write(ctx context.Context, db *sql.DB, name string, dt *table.Table, opts WriteOptions) error {
	if err := dt.Validate(); err != nil {
		return fmt.Errorf("sqlio.Write: %w", err)
	}
	names := dt.Headers(opts.KeyColumn)
	if len(names) == 0 {
		return fmt.Errorf("sqlio.Write: table %q has no columns: %w", name, table.ErrInvalidSpec)
	}
	var defs []string
	if opts.KeyColumn != "" {
		defs = append(defs, Quote(opts.KeyColumn)+" "+sqlType(table.TypeOf(dt.Keys())))
	}
	for _, cl := range dt.Columns() {
		defs = append(defs, Quote(cl.Name)+" "+sqlType(cl.Type()))
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlio.Write: %w", err)
	}
	defer tx.Rollback()
	if opts.Replace {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+Quote(name)); err != nil {
			return fmt.Errorf("sqlio.Write: %w", err)
		}
	}
	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", Quote(name), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("sqlio.Write: %w", err)
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	maxParams := opts.MaxParams
	if maxParams <= 0 {
		maxParams = DefaultMaxParams
	}
	batch = max(1, min(batch, maxParams/len(names)))
	quoted := make([]string, len(names))
	for i, nm := range names {
		quoted[i] = Quote(nm)
	}
	place := "(" + strings.TrimSuffix(strings.Repeat("?,", len(names)), ",") + ")"
	n := dt.NumRows()
	for st := 0; st < n; st += batch {
		ed := min(st+batch, n)
		var buf strings.Builder
		buf.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", Quote(name), strings.Join(quoted, ", ")))
		args := make([]any, 0, (ed-st)*len(names))
		for ri := st; ri < ed; ri++ {
			if ri > st {
				buf.WriteString(",")
			}
			buf.WriteString(place)
			if opts.KeyColumn != "" {
				args = append(args, argOf(dt.Key(ri)))
			}
			for _, c := range dt.Row(ri) {
				args = append(args, argOf(c))
			}
		}
		if _, err := tx.ExecContext(ctx, buf.String(), args...); err != nil {
			return fmt.Errorf("sqlio.Write: rows %d..%d: %w", st, ed, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlio.Write: %w", err)
	}
	slog.Debug("sql write", "table", name, "rows", n)
	return nil
}

// Quote returns the identifier quoted with backticks.
func Quote(id string) string {
	return "`" + strings.ReplaceAll(id, "`", "``") + "`"
}

func sqlType(ct table.ColumnType) string {
	if ct == table.Numeric {
		return "DOUBLE"
	}
	return "TEXT"
}

// argOf returns the statement argument for a cell.
func argOf(c table.Cell) any {
	if f, ok := c.Float(); ok {
		return f
	}
	if s, ok := c.Text(); ok {
		return s
	}
	return nil
}
