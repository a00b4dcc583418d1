// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline runs a configured sequence of table operations:
// loading sources, joining, imputing, encoding and writing the result.
package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/tabular/encode"
	"cogentcore.org/tabular/impute"
	"cogentcore.org/tabular/join"
	"cogentcore.org/tabular/sqlio"
	"cogentcore.org/tabular/table"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// SQLiteDriver is the database/sql driver name used for SQLite files.
const SQLiteDriver = "sqlite"

// Result is the result of [Run].
type Result struct {
	// RunID identifies the run in the log.
	RunID string

	// Sources are the loaded source tables, in config order.
	Sources []*table.Table

	// Table is the final table.
	Table *table.Table

	// Imputed is the imputation result, nil if there was none.
	Imputed *impute.Result

	// Duration is how long the run took.
	Duration time.Duration
}

// Run runs the pipeline of the given config: it loads all sources
// concurrently, joins or merges them, then imputes, one-hot encodes
// and writes the result as configured. The config is not modified.
// The context is checked between stages.
func Run(ctx context.Context, config *Config) (*Result, error) {
	st := time.Now()
	cfg, err := config.Clone()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline.Run: %w", err)
	}
	res := &Result{RunID: uuid.NewString()}
	log := slog.With("run", res.RunID)

	log.Info("loading", "sources", len(cfg.Sources))
	res.Sources, err = Load(ctx, cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run: %w", err)
	}
	dt := res.Sources[0]
	switch {
	case cfg.Merge != nil:
		log.Info("merging", "on", cfg.Merge.On, "how", cfg.Merge.How.String())
		dt, err = join.Merge(res.Sources[0], res.Sources[1], cfg.Merge.On, cfg.Merge.How)
	case len(res.Sources) > 1:
		log.Info("joining", "spec", cfg.Join.String())
		dt, err = join.Join(res.Sources, cfg.Join)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run: %w", err)
	}
	if cfg.Impute != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Info("imputing", "default", cfg.Impute.Default.String(), "columns", len(cfg.Impute.Columns))
		ir, err := impute.Impute(dt, *cfg.Impute)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}
		if len(ir.AllMissing) > 0 {
			log.Warn("columns all missing", "columns", ir.AllMissing)
			if cfg.RequireFilled {
				return nil, fmt.Errorf("pipeline.Run: %w", ir.Err())
			}
		}
		res.Imputed = ir
		dt = ir.Table
	}
	if len(cfg.OneHot) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Info("encoding", "columns", cfg.OneHot)
		dt, err = encode.OneHot(dt, cfg.OneHot...)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}
	}
	res.Table = dt
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeOutput(ctx, &cfg.Output, dt, log); err != nil {
		return nil, fmt.Errorf("pipeline.Run: %w", err)
	}
	res.Duration = time.Since(st)
	log.Info("done", "rows", dt.NumRows(), "columns", dt.NumColumns(), "duration", res.Duration)
	return res, nil
}

// Load loads the source tables concurrently, returning them in the
// given order. The first error cancels the other loads.
func Load(ctx context.Context, sources []Source) ([]*table.Table, error) {
	tables := make([]*table.Table, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i := range sources {
		src := &sources[i]
		g.Go(func() error {
			dt, err := LoadSource(ctx, src)
			if err != nil {
				return fmt.Errorf("source %q: %w", src.Label(), err)
			}
			slog.Debug("loaded", "source", src.Label(), "rows", dt.NumRows(), "columns", dt.NumColumns())
			tables[i] = dt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// LoadSource loads one source table: from a SQL query if the source
// has a driver, from a SQLite file if Path has SQLite content, and
// from a delimited text file otherwise.
func LoadSource(ctx context.Context, src *Source) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var dt *table.Table
	var err error
	switch {
	case src.Driver != "":
		dt, err = querySource(ctx, src.Driver, src.DSN, src)
	case IsSQLite(src.Path):
		if src.Query == "" {
			return nil, fmt.Errorf("SQLite file %q needs a query: %w", src.Path, table.ErrInvalidSpec)
		}
		dt, err = querySource(ctx, SQLiteDriver, src.Path, src)
	default:
		dt, err = table.OpenCSV(src.Path, src.CSV)
	}
	if err != nil {
		return nil, err
	}
	return dt.WithName(src.Label()), nil
}

func querySource(ctx context.Context, driver, dsn string, src *Source) (*table.Table, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqlio.Query(ctx, db, src.Query, src.Key)
}

// IsSQLite returns true if the file exists and has SQLite database content.
func IsSQLite(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && n == 0 {
		return false
	}
	kind, err := filetype.Match(head[:n])
	return err == nil && kind.Extension == "sqlite"
}

func writeOutput(ctx context.Context, out *Output, dt *table.Table, log *slog.Logger) error {
	if out.Path != "" {
		log.Info("saving", "path", out.Path)
		if err := dt.SaveCSV(out.Path, out.CSV); err != nil {
			return err
		}
	}
	if out.Table != "" {
		log.Info("writing", "driver", out.Driver, "table", out.Table)
		db, err := sql.Open(out.Driver, out.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := sqlio.Write(ctx, db, out.Table, dt, out.SQL); err != nil {
			return err
		}
	}
	return nil
}
