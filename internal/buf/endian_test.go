package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}
	if got := I32LE(data); got != 0x67452301 {
		t.Fatalf("I32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 {
		t.Fatalf("U16LE short should be 0")
	}
	if U32LE(short) != 0 || U32BE(short) != 0 || U64LE(short) != 0 || I32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestPutHelpersRoundTrip(t *testing.T) {
	buf16 := make([]byte, 2)
	PutU16LE(buf16, 0xBEEF)
	if got := U16LE(buf16); got != 0xBEEF {
		t.Fatalf("PutU16LE/U16LE round trip = 0x%x, want 0xbeef", got)
	}

	buf32 := make([]byte, 4)
	PutU32LE(buf32, 0xDEADBEEF)
	if got := U32LE(buf32); got != 0xDEADBEEF {
		t.Fatalf("PutU32LE/U32LE round trip = 0x%x, want 0xdeadbeef", got)
	}

	buf64 := make([]byte, 8)
	PutU64LE(buf64, 0x0102030405060708)
	if got := U64LE(buf64); got != 0x0102030405060708 {
		t.Fatalf("PutU64LE/U64LE round trip = 0x%x, want 0x0102030405060708", got)
	}

	bufI32 := make([]byte, 4)
	PutI32LE(bufI32, -1)
	if got := I32LE(bufI32); got != -1 {
		t.Fatalf("PutI32LE/I32LE round trip = %d, want -1", got)
	}
}
