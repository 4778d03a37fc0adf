package regf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bcdkit/internal/buf"
)

// Hive is a parsed, read-only view over a hive byte buffer. The buffer must
// outlive the Hive; Key and Value values returned from it borrow slices of
// it directly rather than copying, per the read-only reader's memory
// discipline.
type Hive struct {
	buffer     []byte
	cellRegion []byte
}

// Key is a navigable handle to a named-key cell, recomputed (not cached)
// from the underlying buffer on each traversal call.
type Key struct {
	offset int32
	rec    nkRecord
}

// Value is a navigable handle to a value cell.
type Value struct {
	rec vkRecord
}

// Open validates the base block and parses the root key. It returns
// ErrTruncated if the buffer is smaller than the 4096-byte base block and
// ErrSignatureMismatch if the magic does not read "regf".
func Open(buffer []byte) (*Hive, error) {
	if len(buffer) < BaseBlockSize {
		return nil, fmt.Errorf("open: %w", ErrTruncated)
	}
	if !bytes.Equal(buffer[:4], Signature) {
		return nil, fmt.Errorf("open: %w", ErrSignatureMismatch)
	}
	h := &Hive{
		buffer:     buffer,
		cellRegion: buffer[BaseBlockSize:],
	}
	if _, err := h.RootKey(); err != nil {
		return nil, fmt.Errorf("open: root key: %w", err)
	}
	return h, nil
}

func (h *Hive) keyAt(offset int32) (Key, error) {
	cell, err := resolveCell(h.cellRegion, int(offset))
	if err != nil {
		return Key{}, err
	}
	rec, err := decodeNK(cell)
	if err != nil {
		return Key{}, err
	}
	return Key{offset: offset, rec: rec}, nil
}

// RootKey returns the hive's root key, read from the base block's root-cell
// offset field.
func (h *Hive) RootKey() (Key, error) {
	rootOffset := buf.I32LE(h.buffer[RootCellOffsetField:])
	return h.keyAt(rootOffset)
}

// KeyName returns the raw name bytes of k as a string.
func (h *Hive) KeyName(k Key) string {
	return string(k.rec.Name)
}

// SubKeyCount returns the number of subkeys resolvable under k. A
// malformed or absent subkey list yields 0, not an error.
func (h *Hive) SubKeyCount(k Key) int {
	offsets := h.subkeyOffsets(k)
	return len(offsets)
}

func (h *Hive) subkeyOffsets(k Key) []int32 {
	if k.rec.SubkeyCount == 0 || k.rec.SubkeyListOffset < 0 {
		return nil
	}
	cell, err := resolveCell(h.cellRegion, int(k.rec.SubkeyListOffset))
	if err != nil {
		return nil
	}
	offsets, err := decodeSubkeyList(cell)
	if err != nil {
		return nil
	}
	if uint32(len(offsets)) > k.rec.SubkeyCount {
		offsets = offsets[:k.rec.SubkeyCount]
	}
	return offsets
}

// SubKeyAt returns the i'th subkey of k. Returns ErrNotFound if i is out of
// range or the child cell does not resolve.
func (h *Hive) SubKeyAt(k Key, i int) (Key, error) {
	offsets := h.subkeyOffsets(k)
	if i < 0 || i >= len(offsets) {
		return Key{}, fmt.Errorf("subkey %d: %w", i, ErrNotFound)
	}
	child, err := h.keyAt(offsets[i])
	if err != nil {
		return Key{}, fmt.Errorf("subkey %d: %w", i, ErrNotFound)
	}
	return child, nil
}

// ValueCount returns the number of values resolvable under k.
func (h *Hive) ValueCount(k Key) int {
	return len(h.valueOffsets(k))
}

func (h *Hive) valueOffsets(k Key) []int32 {
	if k.rec.ValueCount == 0 || k.rec.ValueListOffset < 0 {
		return nil
	}
	cell, err := resolveCell(h.cellRegion, int(k.rec.ValueListOffset))
	if err != nil {
		return nil
	}
	offsets, err := decodeValueList(cell, k.rec.ValueCount)
	if err != nil {
		return nil
	}
	return offsets
}

// ValueAt returns the i'th value of k.
func (h *Hive) ValueAt(k Key, i int) (Value, error) {
	offsets := h.valueOffsets(k)
	if i < 0 || i >= len(offsets) {
		return Value{}, fmt.Errorf("value %d: %w", i, ErrNotFound)
	}
	cell, err := resolveCell(h.cellRegion, int(offsets[i]))
	if err != nil {
		return Value{}, fmt.Errorf("value %d: %w", i, ErrNotFound)
	}
	rec, err := decodeVK(cell)
	if err != nil {
		return Value{}, fmt.Errorf("value %d: %w", i, ErrNotFound)
	}
	return Value{rec: rec}, nil
}

// ValueName returns the raw name bytes of v as a string.
func (h *Hive) ValueName(v Value) string {
	return string(v.rec.Name)
}

// ValueType returns v's registry value type.
func (h *Hive) ValueType(v Value) uint32 {
	return v.rec.Type
}

// ValueData returns v's payload bytes: the inline bytes if DataSize <= 4,
// otherwise the out-of-line cell-region slice at DataOffset. Returns
// (nil, false) if the out-of-line region does not resolve.
func (h *Hive) ValueData(v Value) ([]byte, bool) {
	size := int(v.rec.DataSize)
	if size == 0 {
		return nil, true
	}
	if size <= InlineDataMax {
		return v.rec.Inline[:size], true
	}
	data, ok := buf.Slice(h.cellRegion, int(v.rec.DataOffset), size)
	if !ok {
		return nil, false
	}
	return data, true
}

// ValueDataAsU32 reinterprets v's payload as a little-endian uint32. ok is
// false if the data is unresolvable or shorter than 4 bytes.
func (h *Hive) ValueDataAsU32(v Value) (val uint32, ok bool) {
	data, resolved := h.ValueData(v)
	if !resolved || len(data) < 4 {
		return 0, false
	}
	return buf.U32LE(data), true
}
