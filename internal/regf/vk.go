package regf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bcdkit/internal/buf"
)

// vkRecord is the decoded payload of a value ("vk") cell.
//
//	Offset  Size  Field
//	0x04    2     Signature "vk"
//	0x06    2     Name length
//	0x08    4     Data size in bytes
//	0x0c    4     Data offset, or inline data when DataSize <= 4
//	0x10    4     Registry value type
//	0x18    n     Name bytes, no terminator
type vkRecord struct {
	DataSize   uint32
	DataOffset int32
	Inline     [4]byte // valid iff DataSize <= InlineDataMax
	Type       uint32
	Name       []byte
}

func decodeVK(cell Cell) (vkRecord, error) {
	b := cell.Data
	if len(b) < vkFixedSize {
		return vkRecord{}, fmt.Errorf("vk: %w", ErrTruncated)
	}
	if !bytes.Equal(b[vkSignatureOffset:vkSignatureOffset+2], VKSignature) {
		return vkRecord{}, fmt.Errorf("vk: %w", ErrSignatureMismatch)
	}
	nameLen := int(buf.U16LE(b[vkNameLenOff:]))
	dataSize := buf.U32LE(b[vkDataSizeOff:])
	dataOffset := buf.I32LE(b[vkDataOff:])
	valType := buf.U32LE(b[vkTypeOff:])

	name, ok := buf.Slice(b, vkNameOff, nameLen)
	if !ok {
		return vkRecord{}, fmt.Errorf("vk: name (%d bytes at %d): %w", nameLen, vkNameOff, ErrTruncated)
	}
	var inline [4]byte
	copy(inline[:], b[vkDataOff:vkDataOff+4])
	return vkRecord{
		DataSize:   dataSize,
		DataOffset: dataOffset,
		Inline:     inline,
		Type:       valType,
		Name:       name,
	}, nil
}

// encodeVK produces the bytes of a vk cell payload. When len(data) <=
// InlineDataMax the bytes are stored directly in the data-offset field and
// dataOffset is ignored; otherwise dataOffset must be the out-of-line data's
// cell-region offset.
func encodeVK(name string, data []byte, valueType uint32, dataOffset int32) []byte {
	nameBytes := []byte(name)
	payload := make([]byte, vkFixedSize+len(nameBytes))
	copy(payload[vkSignatureOffset:], VKSignature)
	buf.PutU16LE(payload[vkNameLenOff:], uint16(len(nameBytes)))
	buf.PutU32LE(payload[vkDataSizeOff:], uint32(len(data)))
	buf.PutU32LE(payload[vkTypeOff:], valueType)
	if len(data) <= InlineDataMax {
		copy(payload[vkDataOff:vkDataOff+4], data)
	} else {
		buf.PutI32LE(payload[vkDataOff:], dataOffset)
	}
	copy(payload[vkNameOff:], nameBytes)
	return payload
}
