package typetree

// scalarKind names the primitive payload a recognized scalar type-tree tag
// reads; scalarTags maps the tag strings to it. Several tags alias the same
// payload (e.g. "UInt32", "unsigned int" and "Type*" all read a u32).
type scalarKind int

const (
	notScalar scalarKind = iota
	kindI8
	kindU8
	kindI16
	kindU16
	kindI32
	kindU32
	kindI64
	kindU64
	kindF32
	kindF64
	kindBool
)

var scalarTags = map[string]scalarKind{
	"SInt8":                 kindI8,
	"UInt8":                 kindU8,
	"char":                  kindU8,
	"short":                 kindI16,
	"SInt16":                kindI16,
	"UInt16":                kindU16,
	"unsigned short":        kindU16,
	"int":                   kindI32,
	"SInt32":                kindI32,
	"UInt32":                kindU32,
	"unsigned int":          kindU32,
	"Type*":                 kindU32,
	"long long":             kindI64,
	"SInt64":                kindI64,
	"UInt64":                kindU64,
	"unsigned long long":    kindU64,
	"FileSize":               kindU64,
	"float":                 kindF32,
	"double":                kindF64,
	"bool":                  kindBool,
}

func classifyScalar(typeTag string) scalarKind {
	k, ok := scalarTags[typeTag]
	if !ok {
		return notScalar
	}
	return k
}
