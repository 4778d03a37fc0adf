package bcd

import (
	"errors"
	"testing"
)

func TestGuidRoundTrip(t *testing.T) {
	const text = "{9dea862c-5cdd-4e70-acc1-f32b344d4795}"
	id, err := ParseGuid(text)
	if err != nil {
		t.Fatalf("ParseGuid(%q): %v", text, err)
	}
	if id.Data1 != 0x9dea862c || id.Data2 != 0x5cdd || id.Data3 != 0x4e70 {
		t.Fatalf("unexpected fields: %+v", id)
	}
	want := [8]byte{0xac, 0xc1, 0xf3, 0x2b, 0x34, 0x4d, 0x47, 0x95}
	if id.Data4 != want {
		t.Fatalf("data4 = %x, want %x", id.Data4, want)
	}
	if got := id.String(); got != text {
		t.Fatalf("String() = %q, want %q", got, text)
	}
}

func TestGuidStringFormat(t *testing.T) {
	id := Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{4, 5, 6, 7, 8, 9, 10, 11}}
	got := id.String()
	if len(got) != 38 {
		t.Fatalf("len = %d, want 38", len(got))
	}
	if got[0] != '{' || got[37] != '}' {
		t.Fatalf("missing braces: %q", got)
	}
}

func TestParseGuidRejectsMalformed(t *testing.T) {
	cases := []string{
		"9dea862c-5cdd-4e70-acc1-f32b344d4795",     // missing braces
		"{9dea862c-5cdd-4e70-acc1-f32b344d47}",     // short
		"{9deag862c-5cdd-4e70-acc1-f32b344d4795}",  // non-hex
		"{9dea862c-5cdd-4e70-acc1-f32b344d4795",    // missing trailing brace
		"{9dea862c_5cdd-4e70-acc1-f32b344d4795}",   // wrong dash position
	}
	for _, tc := range cases {
		_, err := ParseGuid(tc)
		if err == nil {
			t.Fatalf("ParseGuid(%q): expected error, got nil", tc)
		}
		var bcdErr *Error
		if !errors.As(err, &bcdErr) || bcdErr.Kind != KindParse {
			t.Fatalf("ParseGuid(%q): expected KindParse, got %v", tc, err)
		}
	}
}

func TestGenerateGuidClearsTopBit(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := GenerateGuid()
		if g.Data1&0x80000000 != 0 {
			t.Fatalf("Data1 top bit set: %#x", g.Data1)
		}
	}
}

func TestGuidEqual(t *testing.T) {
	a := Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	b := a
	if !a.Equal(b) {
		t.Fatalf("expected equal")
	}
	b.Data4[7] = 0
	if a.Equal(b) {
		t.Fatalf("expected not equal")
	}
}
