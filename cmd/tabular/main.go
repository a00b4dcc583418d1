// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tabular joins, imputes and encodes labeled tables
// read from delimited text files and SQL databases.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/tabular/base/errors"
	_ "github.com/go-sql-driver/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errors.Log(err)
		stop()
		os.Exit(1)
	}
}
