package regf

import "github.com/joshuapare/bcdkit/internal/buf"

// ValueSpec is a value the writer emits as a vk cell plus, when needed, an
// out-of-line data region.
type ValueSpec struct {
	Name string
	Type uint32
	Data []byte
}

// ObjectSpec is a single key the writer emits under the root, carrying its
// values.
type ObjectSpec struct {
	KeyName string
	Values  []ValueSpec
}

// writer accumulates cell-region bytes. Every emitted cell and out-of-line
// data region is 4-byte aligned, matching CellAlignment.
type writer struct {
	region []byte
}

func (w *writer) emitCell(payload []byte) int32 {
	cellSize := align4(len(payload) + CellHeaderSize)
	buffer := make([]byte, cellSize)
	buf.PutI32LE(buffer, -int32(cellSize))
	copy(buffer[CellHeaderSize:], payload)
	offset := int32(len(w.region))
	w.region = append(w.region, buffer...)
	return offset
}

// emitHeaderedCell emits a payload built by encodeNK/encodeVK/
// encodeSubkeyList, which reserve an unused leading 4-byte gap at the start
// of their output so their field writes land at the same cell-start-
// inclusive offsets decodeNK/decodeVK/decodeSubkeyList read from. emitCell
// supplies the real 4-byte size header itself, so that reserved gap is
// dropped here first rather than both ending up in the cell.
func (w *writer) emitHeaderedCell(payload []byte) int32 {
	return w.emitCell(payload[CellHeaderSize:])
}

// emitRaw writes data with no cell header, a documented divergence from
// real Windows hives for out-of-line value data.
func (w *writer) emitRaw(data []byte) int32 {
	aligned := align4(len(data))
	buffer := make([]byte, aligned)
	copy(buffer, data)
	offset := int32(len(w.region))
	w.region = append(w.region, buffer...)
	return offset
}

// Serialize emits a complete hive buffer for the given objects, in order:
// each object's value cells (and out-of-line data), its value-list cell,
// its nk cell; then the root's subkey-list cell, the root nk cell (named
// "Objects"), and the 4096-byte base block.
func Serialize(objects []ObjectSpec) []byte {
	w := &writer{}
	objectOffsets := make([]int32, 0, len(objects))

	for _, obj := range objects {
		valueOffsets := make([]int32, 0, len(obj.Values))
		for _, val := range obj.Values {
			dataOffset := int32(-1)
			if len(val.Data) > InlineDataMax {
				dataOffset = w.emitRaw(val.Data)
			}
			payload := encodeVK(val.Name, val.Data, val.Type, dataOffset)
			valueOffsets = append(valueOffsets, w.emitHeaderedCell(payload))
		}

		valueListOffset := int32(-1)
		if len(valueOffsets) > 0 {
			valueListOffset = w.emitCell(encodeValueList(valueOffsets))
		}

		nkPayload := encodeNK(obj.KeyName, -1, valueListOffset, 0, uint32(len(valueOffsets)))
		objectOffsets = append(objectOffsets, w.emitHeaderedCell(nkPayload))
	}

	subkeyListOffset := int32(-1)
	if len(objectOffsets) > 0 {
		subkeyListOffset = w.emitHeaderedCell(encodeSubkeyList(objectOffsets))
	}

	rootPayload := encodeNK("Objects", subkeyListOffset, -1, uint32(len(objectOffsets)), 0)
	rootOffset := w.emitHeaderedCell(rootPayload)

	out := make([]byte, BaseBlockSize, BaseBlockSize+len(w.region))
	copy(out[:4], Signature)
	buf.PutI32LE(out[RootCellOffsetField:], rootOffset)
	out = append(out, w.region...)
	return out
}
