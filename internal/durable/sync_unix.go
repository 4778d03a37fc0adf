//go:build unix

package durable

import (
	"os"

	"golang.org/x/sys/unix"
)

// SyncFile flushes f's data to stable storage via fdatasync.
func SyncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
