//go:build !unix

package durable

import "os"

// SyncFile falls back to the portable os.File.Sync on non-unix platforms.
func SyncFile(f *os.File) error {
	return f.Sync()
}
