package bcd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bcdkit/internal/regf"
)

func TestEmptyStoreSerializeLoadRoundTrip(t *testing.T) {
	store := NewStore(DefaultLimits())
	buffer := SerializeToHive(store)

	require.GreaterOrEqual(t, len(buffer), 4096)
	require.Equal(t, 0, len(buffer)%4)
	require.Equal(t, []byte("regf"), buffer[:4])

	loaded := NewStore(DefaultLimits())
	require.NoError(t, Load(loaded, buffer))
	require.Equal(t, 0, loaded.ObjectCount())
}

func TestSerializeLoadRoundTripPreservesObjectsAndElements(t *testing.T) {
	store := NewStore(DefaultLimits())
	id, err := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	require.NoError(t, err)
	obj := NewObject(id, 0, store.Limits())
	require.NoError(t, obj.AddElement(Element{Type: 0x25000004, Kind: KindInteger, Integer: 30}))
	require.NoError(t, obj.AddElement(Element{Type: 0x12000004, Kind: KindString, String: "hello"}))
	require.NoError(t, obj.AddElement(Element{Type: 0x24000002, Kind: KindBinary, Binary: []byte{1, 2, 3}}))
	require.NoError(t, store.AddObject(obj))

	buffer := SerializeToHive(store)

	loaded := NewStore(DefaultLimits())
	require.NoError(t, Load(loaded, buffer))
	require.Equal(t, 1, loaded.ObjectCount())

	got, ok := loaded.FindObjectByID(id)
	require.True(t, ok)
	require.Equal(t, 3, got.ElementCount())

	intEl, ok := got.FindElement(0x25000004)
	require.True(t, ok)
	require.Equal(t, KindInteger, intEl.Kind)
	require.Equal(t, uint64(30), intEl.Integer)

	strEl, ok := got.FindElement(0x12000004)
	require.True(t, ok)
	require.Equal(t, KindString, strEl.Kind)
	require.Equal(t, "hello", strEl.String)

	binEl, ok := got.FindElement(0x24000002)
	require.True(t, ok)
	require.Equal(t, KindBinary, binEl.Kind)
	require.Equal(t, []byte{1, 2, 3}, binEl.Binary)
}

func TestBooleanRoundTripsAsInteger(t *testing.T) {
	store := NewStore(DefaultLimits())
	id, err := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	require.NoError(t, err)
	obj := NewObject(id, 0, store.Limits())
	require.NoError(t, obj.AddElement(Element{Type: 0x26000010, Kind: KindBoolean, Boolean: true}))
	require.NoError(t, store.AddObject(obj))

	buffer := SerializeToHive(store)

	loaded := NewStore(DefaultLimits())
	require.NoError(t, Load(loaded, buffer))
	got, ok := loaded.FindObjectByID(id)
	require.True(t, ok)

	el, ok := got.FindElement(0x26000010)
	require.True(t, ok)
	require.Equal(t, KindInteger, el.Kind, "booleans round-trip as Integer, not Boolean")
	require.Equal(t, uint64(1), el.Integer)
}

func TestLoadSkipsUnparseableSubkeysAndValues(t *testing.T) {
	id, err := ParseGuid("{00000001-0002-0003-0405-060708090a0b}")
	require.NoError(t, err)
	buffer := regf.Serialize([]regf.ObjectSpec{
		{
			KeyName: "not-a-guid",
			Values:  []regf.ValueSpec{{Name: "11000001", Type: regf.RegSZ, Data: []byte("device\x00")}},
		},
		{
			KeyName: id.String(),
			Values: []regf.ValueSpec{
				{Name: "not-hex", Type: regf.RegSZ, Data: []byte("skipped\x00")},
				{Name: "11000001", Type: regf.RegSZ, Data: []byte("device\x00")},
			},
		},
	})

	loaded := NewStore(DefaultLimits())
	require.NoError(t, Load(loaded, buffer))
	require.Equal(t, 1, loaded.ObjectCount())

	got, ok := loaded.FindObjectByID(id)
	require.True(t, ok)
	require.Equal(t, 1, got.ElementCount())
	el, ok := got.FindElement(0x11000001)
	require.True(t, ok)
	require.Equal(t, "device", el.String)
}
