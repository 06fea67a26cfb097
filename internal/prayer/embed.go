package prayer

import (
	"embed"
	"io/fs"
)

// The built-in prayer directory, used when no prayer directory exists on disk.
//
//go:embed all:preces
var embedded embed.FS

// DefaultFS returns the built-in prayer directory.
func DefaultFS() (fs.FS, error) {
	return fs.Sub(embedded, "preces")
}
