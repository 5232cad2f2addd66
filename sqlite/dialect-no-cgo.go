//go:build !cgo
// +build !cgo

package sqlite

import "github.com/relkit/sqlfault"

// Dialect in non-CGO mode cannot inspect driver result codes; everything
// classifies as the generic database category.
type Dialect struct{}

var _ sqlfault.Dialect = Dialect{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) Classify(err error) *sqlfault.Class { return sqlfault.Database }

func (Dialect) IsDisconnect(err error) bool { return false }
