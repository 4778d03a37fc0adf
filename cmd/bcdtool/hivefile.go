package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joshuapare/bcdkit/cmd/bcdtool/logger"
	"github.com/joshuapare/bcdkit/internal/durable"
	"github.com/joshuapare/bcdkit/pkg/bcd"
)

// loadStore reads and decodes the hive file at path into a fresh store
// using the default capacity limits. op identifies the calling subcommand,
// for structured logging.
func loadStore(op, path string) (*bcd.Store, error) {
	log := logger.WithOp(op, path)
	start := time.Now()

	buffer, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read hive", "error", err)
		return nil, fmt.Errorf("failed to read hive: %w", err)
	}

	store := bcd.NewStore(bcd.DefaultLimits())
	if err := bcd.Load(store, buffer); err != nil {
		log.Error("failed to decode hive", "error", err)
		return nil, fmt.Errorf("failed to decode hive: %w", err)
	}

	log.Debug("loaded store", "objects", store.ObjectCount(), "bytes", len(buffer), "elapsed", time.Since(start))
	return store, nil
}

// saveStore serializes store and writes it to path, fsyncing before close
// so a crash immediately after the write can't leave a truncated hive.
func saveStore(op, path string, store *bcd.Store) error {
	log := logger.WithOp(op, path)
	start := time.Now()

	buffer := bcd.SerializeToHive(store)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		log.Error("failed to open hive for writing", "error", err)
		return fmt.Errorf("failed to open hive for writing: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buffer); err != nil {
		log.Error("failed to write hive", "error", err)
		return fmt.Errorf("failed to write hive: %w", err)
	}
	if err := durable.SyncFile(f); err != nil {
		log.Error("failed to sync hive to disk", "error", err)
		return fmt.Errorf("failed to sync hive to disk: %w", err)
	}

	log.Debug("saved store", "objects", store.ObjectCount(), "bytes", len(buffer), "elapsed", time.Since(start))
	return nil
}

// findObject looks up an object by its GUID text form, returning a
// user-facing error if the id doesn't parse or isn't present.
func findObject(store *bcd.Store, idText string) (*bcd.Object, error) {
	id, err := bcd.ParseGuid(idText)
	if err != nil {
		return nil, fmt.Errorf("invalid object id %q: %w", idText, err)
	}
	obj, ok := store.FindObjectByID(id)
	if !ok {
		return nil, fmt.Errorf("object %s not found", id.String())
	}
	return obj, nil
}
