package rawmem

import (
	"fmt"
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// Kind is the type code of a field in a shared memory segment.
type Kind uint8

const (
	KindNone Kind = iota
	KindDouble
	KindInt64
	KindInt32
	KindInt16
	KindInt8
	KindBool
	KindChar
	KindUnit
	KindArray
)

var kindNames = [...]string{
	KindNone:   "none",
	KindDouble: "double",
	KindInt64:  "int64",
	KindInt32:  "int32",
	KindInt16:  "int16",
	KindInt8:   "int8",
	KindBool:   "bool",
	KindChar:   "char",
	KindUnit:   "unit",
	KindArray:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind returns the Kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) && Kind(i) != KindNone {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: unknown kind %q", ErrBadSchema, s)
}

// Size returns the byte size of a fixed size kind, or 0 for char, unit
// and array fields whose size depends on the schema.
func (k Kind) Size() int {
	switch k {
	case KindDouble, KindInt64:
		return 8
	case KindInt32:
		return 4
	case KindInt16:
		return 2
	case KindInt8, KindBool:
		return 1
	default:
		return 0
	}
}

// Type returns the node type a field of kind k renders to.
func (k Kind) Type() ir.Type {
	switch k {
	case KindDouble:
		return ir.DoubleType
	case KindInt64, KindInt32, KindInt16, KindInt8:
		return ir.IntegerType
	case KindBool:
		return ir.BoolType
	case KindChar:
		return ir.StringType
	case KindUnit:
		return ir.MapType
	case KindArray:
		return ir.ArrayType
	default:
		return ir.NullType
	}
}
