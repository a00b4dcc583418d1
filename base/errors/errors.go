// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors has helpers for errors that are logged instead of
// returned, and wraps the standard library functions used with them,
// so that it can be imported in place of the standard errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the error with the location of the caller if it is non-nil,
// and returns it. Use it where an error cannot be returned further:
//
//	errors.Log(dt.SaveCSV(fn, opts))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Ignore1 returns the value of a function returning a value and an
// error, for functions whose zero value is the right result on error:
//
//	name := errors.Ignore1(metadata.Get[string](md, "Name"))
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the function name, file and line of the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

// New is the standard library [errors.New].
func New(text string) error { return errors.New(text) }

// Is is the standard library [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
