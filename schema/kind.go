package schema

// Kind is the closed set of structural shapes a field can take.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindChar
	KindBytes
	KindDecimal
	KindTimestamp
	KindEnum
	KindList
	KindStruct
	KindEmbedded
)

var kindNames = [...]string{
	KindBool:      "bool",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindString:    "string",
	KindChar:      "char",
	KindBytes:     "bytes",
	KindDecimal:   "decimal",
	KindTimestamp: "timestamp",
	KindEnum:      "enum",
	KindList:      "list",
	KindStruct:    "struct",
	KindEmbedded:  "embedded",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsLeaf reports whether the kind occupies exactly one physical column.
// Everything except a struct is a leaf: lists and embedded documents map
// many logical sub-values onto one column.
func (k Kind) IsLeaf() bool {
	return k != KindStruct
}

// HasChild reports whether fields of this kind carry a child schema.
func (k Kind) HasChild() bool {
	return k == KindStruct || k == KindEmbedded
}

// KindFromString resolves a kind name as produced by Kind.String.
func KindFromString(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
