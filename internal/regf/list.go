package regf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bcdkit/internal/buf"
)

// decodeSubkeyList extracts child nk offsets from an lf cell. The reader
// accepts both the hashed 8-byte-per-entry layout (offset + 4-byte name
// hint) and the simplified 4-byte-offset-only layout this package's writer
// emits, distinguishing them by how many entries of each size would fit
// exactly within the cell.
func decodeSubkeyList(cell Cell) ([]int32, error) {
	b := cell.Data
	if len(b) < lfEntriesOff {
		return nil, fmt.Errorf("lf: %w", ErrTruncated)
	}
	if !bytes.Equal(b[lfSignatureOffset:lfSignatureOffset+2], LFSignature) {
		return nil, fmt.Errorf("lf: %w", ErrSignatureMismatch)
	}
	count := int(buf.U16LE(b[lfCountOff:]))
	entries := b[lfEntriesOff:]

	entrySize := lfEntrySizeSimple
	if count*lfEntrySizeHashed+lfEntriesOff <= len(b) && count*lfEntrySizeSimple+lfEntriesOff != len(b) {
		entrySize = lfEntrySizeHashed
	}
	if count*entrySize+lfEntriesOff > len(b) {
		return nil, fmt.Errorf("lf: %d entries of size %d exceed cell: %w", count, entrySize, ErrTruncated)
	}
	out := make([]int32, count)
	for i := 0; i < count; i++ {
		out[i] = buf.I32LE(entries[i*entrySize:])
	}
	return out, nil
}

// encodeSubkeyList builds an lf cell payload from child nk offsets, using
// the simplified 4-byte-offset-only entry layout.
func encodeSubkeyList(offsets []int32) []byte {
	payload := make([]byte, lfEntriesOff+len(offsets)*lfEntrySizeSimple)
	copy(payload[lfSignatureOffset:], LFSignature)
	buf.PutU16LE(payload[lfCountOff:], uint16(len(offsets)))
	for i, off := range offsets {
		buf.PutI32LE(payload[lfEntriesOff+i*lfEntrySizeSimple:], off)
	}
	return payload
}

// decodeValueList reads an unheaded cell body of count 4-byte vk offsets.
func decodeValueList(cell Cell, count uint32) ([]int32, error) {
	need := int(count) * 4
	if need == 0 {
		return nil, nil
	}
	body := cell.Data[CellHeaderSize:]
	if len(body) < need {
		return nil, fmt.Errorf("value list: %w", ErrTruncated)
	}
	out := make([]int32, count)
	for i := uint32(0); i < count; i++ {
		out[i] = buf.I32LE(body[i*4:])
	}
	return out, nil
}

// encodeValueList builds an unheaded value-list cell payload.
func encodeValueList(offsets []int32) []byte {
	payload := make([]byte, len(offsets)*4)
	for i, off := range offsets {
		buf.PutI32LE(payload[i*4:], off)
	}
	return payload
}
