package mapping

// ValueKind tags the in-memory Go type a column maps to.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindUInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat64
	KindDecimal
	KindString
	KindBytes
	KindTime
	KindUUID
	KindXML
)

var kindNames = map[ValueKind]string{
	KindBool:    "bool",
	KindUInt8:   "uint8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindString:  "string",
	KindBytes:   "bytes",
	KindTime:    "time",
	KindUUID:    "uuid",
	KindXML:     "xml",
}

func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
