// Copyright (c) 2021 6 River Systems
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

//go:build cgo
// +build cgo

package db

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// in CGO mode, use the github.com/mattn/go-sqlite3 driver
const sqliteDriver = "sqlite3"

// SQLiteDSN builds a DSN for the sqlite driver with the toolkit's pragma
// defaults: foreign keys on, WAL journaling, a busy timeout, and immediate
// transaction locking.
func SQLiteDSN(filename string, fileScheme, memory bool) string {
	if strings.HasPrefix(filename, "/") {
		// sqlite:relativepath or sqlite:///some/abs/path
		filename = "//" + filename
	}
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename = filename + ".sqlite3"
	}
	scheme := "sqlite"
	if fileScheme {
		scheme = "file"
	}
	q := url.Values{
		"_fk":           []string{"true"},
		"_journal_mode": []string{"wal"},
		"cache":         []string{"private"},
		"_busy_timeout": []string{"10000"},
		// BEGIN IMMEDIATE so write transactions fail fast instead of
		// deadlocking on lock upgrade
		"_txlock": []string{"immediate"},
	}
	if memory {
		// memory mode needs either shared cache or a single connection.
		// shared cache produces unfixable "table is locked" errors, so Open
		// caps the pool at one connection instead.
		q.Set("mode", "memory")
	}
	return fmt.Sprintf("%s:%s?%s", scheme, filename, q.Encode())
}
