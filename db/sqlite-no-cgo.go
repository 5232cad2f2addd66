//go:build !cgo
// +build !cgo

package db

// without CGO there is no sqlite driver; Open reports NotSupported for
// sqlite URLs
const sqliteDriver = ""

func SQLiteDSN(filename string, fileScheme, memory bool) string {
	return filename
}
