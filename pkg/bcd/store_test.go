package bcd

import (
	"errors"
	"testing"
)

func TestStoreAddDeleteObject(t *testing.T) {
	store := NewStore(DefaultLimits())
	id, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	obj := NewObject(id, 0, store.Limits())
	if err := store.AddObject(obj); err != nil {
		t.Fatalf("AddObject: %v", err)
	}
	if store.ObjectCount() != 1 {
		t.Fatalf("ObjectCount = %d, want 1", store.ObjectCount())
	}

	if err := store.DeleteObject(id); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	if store.ObjectCount() != 0 {
		t.Fatalf("ObjectCount after delete = %d, want 0", store.ObjectCount())
	}

	if err := store.DeleteObject(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteObject: got %v, want NotFound", err)
	}
}

func TestStoreCapacity(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxObjects = 1
	store := NewStore(limits)

	a, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	b, _ := ParseGuid("{00000002-0002-0003-0405-060708090a0b}")

	if err := store.AddObject(NewObject(a, 0, limits)); err != nil {
		t.Fatalf("AddObject a: %v", err)
	}
	if err := store.AddObject(NewObject(b, 0, limits)); !errors.Is(err, ErrCapacity) {
		t.Fatalf("AddObject b: got %v, want Capacity", err)
	}
}

func TestStoreCloneIsDeep(t *testing.T) {
	store := NewStore(DefaultLimits())
	id, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	obj := NewObject(id, 0, store.Limits())
	_ = obj.AddElement(Element{Type: 1, Kind: KindBinary, Binary: []byte{1, 2, 3}})
	_ = store.AddObject(obj)

	clone := store.Clone()
	cloned, _ := clone.FindObjectByID(id)
	cloned.Elements()[0].Binary[0] = 0xff

	original, _ := store.FindObjectByID(id)
	if original.Elements()[0].Binary[0] == 0xff {
		t.Fatalf("clone shares backing array with original")
	}
}

func TestReset(t *testing.T) {
	store := NewStore(DefaultLimits())
	id, _ := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	_ = store.AddObject(NewObject(id, 0, store.Limits()))
	store.Reset()
	if store.ObjectCount() != 0 {
		t.Fatalf("ObjectCount after Reset = %d, want 0", store.ObjectCount())
	}
}
