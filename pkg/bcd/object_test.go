package bcd

import (
	"errors"
	"testing"
)

func testObject() *Object {
	id, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	return NewObject(id, 0, DefaultLimits())
}

func TestObjectAddFindRemoveElement(t *testing.T) {
	obj := testObject()
	el := Element{Type: 0x25000004, Kind: KindInteger, Integer: 30}
	if err := obj.AddElement(el); err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	found, ok := obj.FindElement(0x25000004)
	if !ok || found.Integer != 30 {
		t.Fatalf("FindElement: got %+v, %v", found, ok)
	}

	if err := obj.RemoveElement(0x25000004); err != nil {
		t.Fatalf("RemoveElement: %v", err)
	}
	if err := obj.RemoveElement(0x25000004); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second RemoveElement: got %v, want NotFound", err)
	}
}

func TestObjectSetElementIsIdempotentAndUpdates(t *testing.T) {
	obj := testObject()
	first := Element{Type: 0x12000004, Kind: KindString, String: "A"}
	if err := obj.SetElement(first); err != nil {
		t.Fatalf("SetElement: %v", err)
	}
	second := Element{Type: 0x12000004, Kind: KindString, String: "B"}
	if err := obj.SetElement(second); err != nil {
		t.Fatalf("SetElement: %v", err)
	}
	if obj.ElementCount() != 1 {
		t.Fatalf("ElementCount = %d, want 1", obj.ElementCount())
	}
	got, _ := obj.FindElement(0x12000004)
	if got.String != "B" {
		t.Fatalf("String = %q, want B", got.String)
	}

	if err := obj.SetElement(second); err != nil {
		t.Fatalf("repeat SetElement: %v", err)
	}
	if obj.ElementCount() != 1 {
		t.Fatalf("ElementCount after repeat = %d, want 1", obj.ElementCount())
	}
}

func TestObjectAddElementCapacity(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxElementsPerObject = 2
	id, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	obj := NewObject(id, 0, limits)

	if err := obj.AddElement(Element{Type: 1, Kind: KindInteger}); err != nil {
		t.Fatalf("AddElement 1: %v", err)
	}
	if err := obj.AddElement(Element{Type: 2, Kind: KindInteger}); err != nil {
		t.Fatalf("AddElement 2: %v", err)
	}
	if err := obj.AddElement(Element{Type: 3, Kind: KindInteger}); !errors.Is(err, ErrCapacity) {
		t.Fatalf("AddElement 3: got %v, want Capacity", err)
	}
	if obj.ElementCount() != 2 {
		t.Fatalf("ElementCount after failed add = %d, want 2 (no partial write)", obj.ElementCount())
	}
}
