//go:build !sqlite_cgo

package sqlite

// Pure Go драйвер, CGO не нужен.
//
//	CGO_ENABLED=0 go build ./...

import (
	_ "modernc.org/sqlite"
)

const DriverName = "sqlite"
