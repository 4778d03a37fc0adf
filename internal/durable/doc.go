// Package durable provides a thin fsync-on-write helper used when
// persisting a serialized hive to disk, so a crash right after a save
// cannot leave a truncated file.
package durable
