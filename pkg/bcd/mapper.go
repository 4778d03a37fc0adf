package bcd

import (
	"log/slog"

	"github.com/joshuapare/bcdkit/internal/buf"
	"github.com/joshuapare/bcdkit/internal/regf"
)

// Load parses buffer as a hive and populates store via LoadFromHive. It is
// the usual entry point for callers that only have raw bytes.
func Load(store *Store, buffer []byte) error {
	const op = "Load"
	h, err := regf.Open(buffer)
	if err != nil {
		return newErr(KindParse, op, err)
	}
	return LoadFromHive(store, h)
}

// LoadFromHive walks h's root key's immediate subkeys (no recursion),
// treating each subkey name as a GUID and each of its values as an element
// keyed by an 8-hex-digit element-type name. Per-subkey and per-value
// parse failures are skipped, not fatal; a capacity failure while adding an
// object is fatal and returned immediately.
func LoadFromHive(store *Store, h *regf.Hive) error {
	const op = "LoadFromHive"
	store.Reset()

	root, err := h.RootKey()
	if err != nil {
		return newErr(KindParse, op, err)
	}

	subkeyCount := h.SubKeyCount(root)
	for i := 0; i < subkeyCount; i++ {
		key, err := h.SubKeyAt(root, i)
		if err != nil {
			continue
		}
		id, err := ParseGuid(h.KeyName(key))
		if err != nil {
			slog.Debug("bcd: skipping subkey with unparseable name", "name", h.KeyName(key))
			continue
		}
		obj := NewObject(id, 0, store.Limits())

		valueCount := h.ValueCount(key)
		for v := 0; v < valueCount; v++ {
			val, err := h.ValueAt(key, v)
			if err != nil {
				continue
			}
			elementType, ok := parseElementTypeHex(h.ValueName(val))
			if !ok {
				slog.Debug("bcd: skipping value with unparseable name", "name", h.ValueName(val))
				continue
			}

			el := elementFromValue(h, val, elementType, store.Limits())
			if err := obj.AddElement(el); err != nil {
				break
			}
		}

		if err := store.AddObject(obj); err != nil {
			return newErr(KindCapacity, op, err)
		}
	}
	return nil
}

// elementFromValue maps a hive value's registry type to an Element kind and
// payload, per the BCD element-kind mapping rules: string types collapse to
// KindString, DWORD/QWORD to KindInteger, BINARY to KindBinary, and anything
// else or unresolvable to KindUnknown.
func elementFromValue(h *regf.Hive, val regf.Value, elementType uint32, limits Limits) Element {
	data, ok := h.ValueData(val)
	if !ok {
		return Element{Type: elementType, Kind: KindUnknown}
	}

	switch h.ValueType(val) {
	case regf.RegSZ, regf.RegExpandSZ, regf.RegMultiSZ:
		copyLen := len(data)
		if max := limits.MaxStringLen - 1; copyLen > max {
			copyLen = max
		}
		s := data[:copyLen]
		if idx := indexByte(s, 0); idx >= 0 {
			s = s[:idx]
		}
		return Element{Type: elementType, Kind: KindString, String: string(s)}

	case regf.RegDWORD:
		v, ok := h.ValueDataAsU32(val)
		if !ok {
			return Element{Type: elementType, Kind: KindUnknown}
		}
		return Element{Type: elementType, Kind: KindInteger, Integer: uint64(v)}

	case regf.RegQWORD:
		if len(data) < 8 {
			return Element{Type: elementType, Kind: KindUnknown}
		}
		return Element{Type: elementType, Kind: KindInteger, Integer: buf.U64LE(data)}

	case regf.RegBinary:
		copyLen := len(data)
		if copyLen > limits.MaxBinarySize {
			copyLen = limits.MaxBinarySize
		}
		return Element{Type: elementType, Kind: KindBinary, Binary: append([]byte(nil), data[:copyLen]...)}

	default:
		return Element{Type: elementType, Kind: KindUnknown}
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// SerializeToHive encodes store into a regf hive buffer: each object's
// elements become vk cells keyed by 8-lower-hex-digit element-type names,
// collected into a per-object value list and nk cell, rooted under a
// subkey list and root nk cell.
func SerializeToHive(store *Store) []byte {
	specs := make([]regf.ObjectSpec, 0, store.ObjectCount())
	for _, obj := range store.Objects() {
		values := make([]regf.ValueSpec, 0, obj.ElementCount())
		for _, el := range obj.Elements() {
			regType, data := encodeElement(el)
			values = append(values, regf.ValueSpec{
				Name: formatElementTypeHex(el.Type),
				Type: regType,
				Data: data,
			})
		}
		specs = append(specs, regf.ObjectSpec{
			KeyName: obj.ID.String(),
			Values:  values,
		})
	}
	return regf.Serialize(specs)
}

// encodeElement chooses the registry type and serializes the payload for
// el: String->SZ, Boolean->DWORD, Integer->QWORD, Binary->BINARY,
// Unknown->BINARY with empty data.
func encodeElement(el Element) (regType uint32, data []byte) {
	switch el.Kind {
	case KindString:
		b := append([]byte(el.String), 0)
		return regf.RegSZ, b
	case KindBoolean:
		v := uint32(0)
		if el.Boolean {
			v = 1
		}
		b := make([]byte, 4)
		buf.PutU32LE(b, v)
		return regf.RegDWORD, b
	case KindInteger:
		b := make([]byte, 8)
		buf.PutU64LE(b, el.Integer)
		return regf.RegQWORD, b
	case KindBinary:
		return regf.RegBinary, el.Binary
	default:
		return regf.RegBinary, nil
	}
}
