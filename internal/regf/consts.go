package regf

var (
	// Signature is the four-byte magic at the start of every hive buffer.
	Signature = []byte{'r', 'e', 'g', 'f'}

	// NKSignature identifies a named-key cell payload.
	NKSignature = []byte{'n', 'k'}
	// VKSignature identifies a value cell payload.
	VKSignature = []byte{'v', 'k'}
	// LFSignature identifies a subkey-list cell (hashed or simplified offset-only variant).
	LFSignature = []byte{'l', 'f'}
)

const (
	// BaseBlockSize is the fixed size of the hive base block.
	BaseBlockSize = 0x1000

	// RootCellOffsetField is the byte offset, within the base block, of the
	// signed 32-bit root-cell offset (relative to the start of the cell region).
	RootCellOffsetField = 0x24

	// CellHeaderSize is the size of a cell's signed-length header.
	CellHeaderSize = 4

	// CellAlignment is the byte boundary every cell size is rounded up to.
	CellAlignment = 4

	// nk cell field offsets, relative to the cell start (including its own
	// 4-byte size header, so the "nk" signature itself sits at +4, not +0).
	nkSignatureOffset = 0x04
	nkSubkeyCountOff  = 0x14
	nkSubkeyListOff   = 0x1c
	nkValueCountOff   = 0x24
	nkValueListOff    = 0x28
	nkNameLenOff      = 0x48
	nkNameOff         = 0x4c
	nkFixedSize       = nkNameOff // payload bytes before the variable name tail

	// vk cell field offsets, relative to the cell start including the size header.
	vkSignatureOffset = 0x04
	vkNameLenOff      = 0x06
	vkDataSizeOff      = 0x08
	vkDataOff          = 0x0c
	vkTypeOff          = 0x10
	vkNameOff          = 0x18
	vkFixedSize        = vkNameOff

	// lf cell layout: signature at +4, count (u16) at +6, entries starting at +8.
	lfSignatureOffset = 0x04
	lfCountOff        = 0x06
	lfEntriesOff      = 0x08
	// lfEntrySizeHashed is the hashed (offset + 4-byte name hint) entry size;
	// lfEntrySizeSimple is the offset-only variant the writer emits.
	lfEntrySizeHashed = 8
	lfEntrySizeSimple = 4

	// InlineDataMax is the largest data size stored inline in the vk
	// data-offset field instead of in a separate cell.
	InlineDataMax = 4

	// Registry value types relevant to the BCD mapper.
	RegNone      = 0
	RegSZ        = 1
	RegExpandSZ  = 2
	RegBinary    = 3
	RegDWORD     = 4
	RegMultiSZ   = 7
	RegQWORD     = 11
)
