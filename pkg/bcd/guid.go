package bcd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Guid is a 128-bit object identifier in the 4-2-2-1-1-6 field layout.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Equal reports field-wise equality.
func (g Guid) Equal(o Guid) bool {
	return g.Data1 == o.Data1 && g.Data2 == o.Data2 && g.Data3 == o.Data3 && g.Data4 == o.Data4
}

// String formats g in canonical lowercase "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}" form.
func (g Guid) String() string {
	return fmt.Sprintf("{%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func parseHex(text string, nibbles int) (uint64, bool) {
	if len(text) < nibbles {
		return 0, false
	}
	var v uint64
	for i := 0; i < nibbles; i++ {
		d, ok := hexDigit(text[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint64(d)
	}
	return v, true
}

// ParseGuid requires exact length 38, a leading '{' and trailing '}', and
// dashes at positions 9, 14, 19, 24 (0-indexed). Hex digits are
// case-insensitive. Any violation returns a *Error with KindParse.
func ParseGuid(text string) (Guid, error) {
	const op = "ParseGuid"
	if len(text) != 38 || text[0] != '{' || text[37] != '}' {
		return Guid{}, newErr(KindParse, op, fmt.Errorf("malformed guid %q", text))
	}
	for _, pos := range []int{9, 14, 19, 24} {
		if text[pos] != '-' {
			return Guid{}, newErr(KindParse, op, fmt.Errorf("expected '-' at position %d in %q", pos, text))
		}
	}

	data1, ok := parseHex(text[1:9], 8)
	if !ok {
		return Guid{}, newErr(KindParse, op, fmt.Errorf("bad data1 in %q", text))
	}
	data2, ok := parseHex(text[10:14], 4)
	if !ok {
		return Guid{}, newErr(KindParse, op, fmt.Errorf("bad data2 in %q", text))
	}
	data3, ok := parseHex(text[15:19], 4)
	if !ok {
		return Guid{}, newErr(KindParse, op, fmt.Errorf("bad data3 in %q", text))
	}

	var data4 [8]byte
	pairs := []string{text[20:22], text[22:24], text[25:27], text[27:29], text[29:31], text[31:33], text[33:35], text[35:37]}
	for i, pair := range pairs {
		v, ok := parseHex(pair, 2)
		if !ok {
			return Guid{}, newErr(KindParse, op, fmt.Errorf("bad data4[%d] in %q", i, text))
		}
		data4[i] = byte(v)
	}

	return Guid{
		Data1: uint32(data1),
		Data2: uint16(data2),
		Data3: uint16(data3),
		Data4: data4,
	}, nil
}

// GenerateGuid produces a random Guid with the top bit of Data1 cleared, per
// spec. Randomness is sourced via github.com/google/uuid's generator rather
// than a hand-rolled crypto/rand shuffle.
func GenerateGuid() Guid {
	raw := uuid.New()
	b := raw[:]
	g := Guid{
		Data1: (uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])) & 0x7fffffff,
		Data2: uint16(b[4])<<8 | uint16(b[5]),
		Data3: uint16(b[6])<<8 | uint16(b[7]),
	}
	copy(g.Data4[:], b[8:16])
	return g
}

// parseElementTypeHex decodes a value name of any digit count as hex, a
// permissive parse that accepts whatever width a source hive happens to use
// rather than insisting on exactly 8 digits.
func parseElementTypeHex(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(name); i++ {
		d, ok := hexDigit(name[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint64(d)
	}
	return uint32(v), true
}

// formatElementTypeHex renders t as 8 lowercase hex digits.
func formatElementTypeHex(t uint32) string {
	return strings.ToLower(fmt.Sprintf("%08x", t))
}

// ParseElementTypeHex is the exported form of parseElementTypeHex, for
// callers (such as the CLI) that accept a raw hex element type from a user
// rather than looking one up by registered name.
func ParseElementTypeHex(name string) (uint32, bool) {
	return parseElementTypeHex(name)
}
