package bcd

import "testing"

func TestLookupElementByName(t *testing.T) {
	id, kind, ok := LookupElementByName("timeout")
	if !ok || id != 0x25000004 || kind != KindInteger {
		t.Fatalf("LookupElementByName(timeout) = %#x, %v, %v", id, kind, ok)
	}

	if _, _, ok := LookupElementByName("Timeout"); ok {
		t.Fatalf("lookup should be case-sensitive on name")
	}
}

func TestLookupElementByID(t *testing.T) {
	name, kind, ok := LookupElementByID(0x26000010)
	if !ok || name != "bootdebug" || kind != KindBoolean {
		t.Fatalf("LookupElementByID(0x26000010) = %q, %v, %v", name, kind, ok)
	}

	if _, _, ok := LookupElementByID(0xffffffff); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestBootManagerIDMatchesSpec(t *testing.T) {
	want := "{9dea862c-5cdd-4e70-acc1-f32b344d4795}"
	if got := BootManagerID.String(); got != want {
		t.Fatalf("BootManagerID.String() = %q, want %q", got, want)
	}
}
