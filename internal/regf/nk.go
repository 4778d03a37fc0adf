package regf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bcdkit/internal/buf"
)

// nkRecord is the decoded payload of a named-key ("nk") cell.
//
// Field offsets, relative to the cell start including its own 4-byte size
// header:
//
//	Offset  Size  Field
//	0x04    2     Signature "nk"
//	0x14    2     Subkey count (legacy)
//	0x1c    4     Offset to subkey-list cell (or -1)
//	0x24    4     Value count
//	0x28    4     Offset to value-list cell (or -1)
//	0x48    2     Key name length
//	0x4c    n     Key name bytes, no terminator
type nkRecord struct {
	SubkeyCount      uint32
	SubkeyListOffset int32
	ValueCount       uint32
	ValueListOffset  int32
	Name             []byte
}

func decodeNK(cell Cell) (nkRecord, error) {
	b := cell.Data
	if len(b) < nkFixedSize {
		return nkRecord{}, fmt.Errorf("nk: %w", ErrTruncated)
	}
	if !bytes.Equal(b[nkSignatureOffset:nkSignatureOffset+2], NKSignature) {
		return nkRecord{}, fmt.Errorf("nk: %w", ErrSignatureMismatch)
	}
	subkeyCount := buf.U16LE(b[nkSubkeyCountOff:])
	subkeyListOff := buf.I32LE(b[nkSubkeyListOff:])
	valueCount := buf.U32LE(b[nkValueCountOff:])
	valueListOff := buf.I32LE(b[nkValueListOff:])
	nameLen := int(buf.U16LE(b[nkNameLenOff:]))

	name, ok := buf.Slice(b, nkNameOff, nameLen)
	if !ok {
		return nkRecord{}, fmt.Errorf("nk: name (%d bytes at %d): %w", nameLen, nkNameOff, ErrTruncated)
	}
	return nkRecord{
		SubkeyCount:      uint32(subkeyCount),
		SubkeyListOffset: subkeyListOff,
		ValueCount:       valueCount,
		ValueListOffset:  valueListOff,
		Name:             name,
	}, nil
}

// encodeNK produces the bytes of an nk cell payload (everything after the
// 4-byte size header) for a key named name with the given child offsets.
func encodeNK(name string, subkeyListOffset, valueListOffset int32, subkeyCount, valueCount uint32) []byte {
	nameBytes := []byte(name)
	total := nkFixedSize + len(nameBytes)
	payload := make([]byte, total)
	copy(payload[nkSignatureOffset:], NKSignature)
	buf.PutU16LE(payload[nkSubkeyCountOff:], uint16(subkeyCount))
	buf.PutI32LE(payload[nkSubkeyListOff:], subkeyListOffset)
	buf.PutU32LE(payload[nkValueCountOff:], valueCount)
	buf.PutI32LE(payload[nkValueListOff:], valueListOffset)
	buf.PutU16LE(payload[nkNameLenOff:], uint16(len(nameBytes)))
	copy(payload[nkNameOff:], nameBytes)
	return payload
}
