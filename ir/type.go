package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	DoubleType
	StringType
	ArrayType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		MapType:     "Map",
		ArrayType:   "Array",
		StringType:  "String",
		IntegerType: "Integer",
		DoubleType:  "Double",
		BoolType:    "Boolean",
		NullType:    "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Boolean": BoolType,
		"Integer": IntegerType,
		"Double":  DoubleType,
		"String":  StringType,
		"Array":   ArrayType,
		"Map":     MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil

}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		DoubleType,
		StringType,
		ArrayType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	return t == IntegerType || t == DoubleType
}
