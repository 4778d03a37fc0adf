package bcd

// ElementKind discriminates an Element's payload.
type ElementKind int

const (
	// KindUnknown marks a value that couldn't be classified; no payload.
	KindUnknown ElementKind = iota
	KindInteger
	KindString
	KindBoolean
	KindBinary
)

func (k ElementKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Element is a single typed, named attribute of an Object. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Element struct {
	Type    uint32
	Kind    ElementKind
	Integer uint64
	String  string
	Boolean bool
	Binary  []byte
}

// Well-known object-type sentinels, not interpreted by the core beyond
// identity.
const (
	ObjectTypeBootMgr     uint32 = 0x10100002
	ObjectTypeOSLoader    uint32 = 0x10200003
	ObjectTypeResume      uint32 = 0x10300006
	ObjectTypeInheritance uint32 = 0x12000004
)

// BootManagerID is the well-known boot-manager object GUID.
var BootManagerID = Guid{
	Data1: 0x9dea862c,
	Data2: 0x5cdd,
	Data3: 0x4e70,
	Data4: [8]byte{0xac, 0xc1, 0xf3, 0x2b, 0x34, 0x4d, 0x47, 0x95},
}

// elementMeta is one row of the static element registry table.
type elementMeta struct {
	Name string
	ID   uint32
	Kind ElementKind
}

// elementRegistry is the required minimum set of well-known elements.
var elementRegistry = []elementMeta{
	{"description", 0x12000004, KindString},
	{"device", 0x11000001, KindString},
	{"osdevice", 0x21000001, KindString},
	{"path", 0x12000002, KindString},
	{"systemroot", 0x22000002, KindString},
	{"locale", 0x12000005, KindString},
	{"inherit", 0x14000003, KindBinary},
	{"recoverysequence", 0x24000001, KindBinary},
	{"displayorder", 0x24000002, KindBinary},
	{"bootsequence", 0x24000003, KindBinary},
	{"toolsdisplayorder", 0x24000004, KindBinary},
	{"timeout", 0x25000004, KindInteger},
	{"default", 0x23000003, KindBinary},
	{"bootdebug", 0x26000010, KindBoolean},
	{"bootems", 0x26000020, KindBoolean},
	{"ems", 0x26000022, KindBoolean},
	{"debug", 0x260000e0, KindBoolean},
}

// LookupElementByName looks up a well-known element by its case-sensitive
// friendly name.
func LookupElementByName(name string) (id uint32, kind ElementKind, ok bool) {
	for _, m := range elementRegistry {
		if m.Name == name {
			return m.ID, m.Kind, true
		}
	}
	return 0, KindUnknown, false
}

// LookupElementByID looks up a well-known element by its numeric type.
func LookupElementByID(id uint32) (name string, kind ElementKind, ok bool) {
	for _, m := range elementRegistry {
		if m.ID == id {
			return m.Name, m.Kind, true
		}
	}
	return "", KindUnknown, false
}
