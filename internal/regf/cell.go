package regf

import (
	"fmt"

	"github.com/joshuapare/bcdkit/internal/buf"
)

// Cell is a single allocation within the cell region. Size is the absolute
// magnitude of the on-disk signed length, including its own 4-byte header.
type Cell struct {
	Offset int // offset of the cell's size header, relative to the cell region
	Size   int
	Data   []byte // the whole cell, size header included, i.e. Data[4:6] is the two-letter signature of an nk/vk/lf cell
}

// resolveCell decodes the cell at the given cell-region offset. cellRegion is
// the hive buffer with the 4096-byte base block already stripped. It enforces
// spec's bounds rule: cellStart + cellSize <= len(cellRegion).
func resolveCell(cellRegion []byte, offset int) (Cell, error) {
	if offset < 0 {
		return Cell{}, fmt.Errorf("cell at %d: %w", offset, ErrCellUnresolvable)
	}
	header, ok := buf.Slice(cellRegion, offset, CellHeaderSize)
	if !ok {
		return Cell{}, fmt.Errorf("cell at %d: %w", offset, ErrTruncated)
	}
	raw := buf.I32LE(header)
	size := int(raw)
	if size < 0 {
		size = -size
	}
	if size < CellHeaderSize {
		return Cell{}, fmt.Errorf("cell at %d: declared size %d too small: %w", offset, size, ErrCellUnresolvable)
	}
	end, ok := buf.AddOverflowSafe(offset, size)
	if !ok || end > len(cellRegion) {
		return Cell{}, fmt.Errorf("cell at %d: size %d exceeds buffer: %w", offset, size, ErrCellUnresolvable)
	}
	return Cell{
		Offset: offset,
		Size:   size,
		Data:   cellRegion[offset:end],
	}, nil
}

// align4 rounds n up to the next 4-byte boundary.
func align4(n int) int {
	return (n + CellAlignment - 1) &^ (CellAlignment - 1)
}
