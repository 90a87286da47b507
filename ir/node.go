package ir

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Node is a value in a tree.  Type selects which payload fields are live:
// Bool for BoolType, Int for IntegerType, Double for DoubleType, String
// (in stored form) for StringType, Values for ArrayType, and the parallel
// Fields and Values for MapType, where Fields records key insertion order.
//
// A container owns its children.  Nodes passed to Push, Append and the
// other insertion methods become owned by the receiver and must not be
// inserted anywhere else; pass a Clone to keep using the original.
type Node struct {
	Type Type

	Bool   bool
	Int    Integer
	Double Double
	String string

	Fields []string
	Values []*Node
}

type KeyVal struct {
	Key string
	Val *Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromInt returns a signed 8 byte Integer node.
func FromInt(v int64) *Node {
	return FromInteger(NewInt(v, Width64))
}

func FromInteger(i Integer) *Node {
	return &Node{Type: IntegerType, Int: i}
}

func FromInt8(v int8) *Node     { return FromInteger(NewInt(int64(v), Width8)) }
func FromInt16(v int16) *Node   { return FromInteger(NewInt(int64(v), Width16)) }
func FromInt32(v int32) *Node   { return FromInteger(NewInt(int64(v), Width32)) }
func FromUint8(v uint8) *Node   { return FromInteger(NewUint(uint64(v), Width8)) }
func FromUint16(v uint16) *Node { return FromInteger(NewUint(uint64(v), Width16)) }
func FromUint32(v uint32) *Node { return FromInteger(NewUint(uint64(v), Width32)) }
func FromUint64(v uint64) *Node { return FromInteger(NewUint(v, Width64)) }

// FromFloat returns a Double node without precision.
func FromFloat(v float64) *Node {
	return FromDouble(v, NoPrecision)
}

func FromDouble(v float64, precision int) *Node {
	return &Node{Type: DoubleType, Double: Double{Value: v, Precision: precision}}
}

// FromString returns a String node for the raw text v, escaping it into
// stored form.
func FromString(v string) *Node {
	return &Node{Type: StringType, String: Escape(v)}
}

// FromEscaped returns a String node whose stored form is exactly v.
func FromEscaped(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromHex returns a String node holding v as 0x-prefixed, 16 digit upper
// case hex.
func FromHex(v uint64) *Node {
	return FromEscaped(fmt.Sprintf("0x%.16X", v))
}

func NewArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

func NewMap() *Node {
	return &Node{Type: MapType, Fields: []string{}, Values: []*Node{}}
}

// FromSlice returns an Array node owning the nodes in vs.
func FromSlice(vs []*Node) *Node {
	res := NewArray()
	res.Values = append(res.Values, vs...)
	return res
}

// FromKeyVals returns a Map with the given entries in order.  A repeated
// key replaces the earlier entry and moves to the end.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewMap()
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

// FromMap returns a Map with the entries of m in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := NewMap()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Put(k, m[k])
	}
	return res
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep copies n into dst and returns dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Bool = n.Bool
	dst.Int = n.Int
	dst.Double = n.Double
	dst.String = n.String
	dst.Fields = nil
	dst.Values = nil
	switch n.Type {
	case MapType:
		dst.Fields = slices.Clone(n.Fields)
		if dst.Fields == nil {
			dst.Fields = []string{}
		}
		fallthrough
	case ArrayType:
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (n *Node) IsNull() bool      { return n != nil && n.Type == NullType }
func (n *Node) IsBool() bool      { return n != nil && n.Type == BoolType }
func (n *Node) IsInteger() bool   { return n != nil && n.Type == IntegerType }
func (n *Node) IsDouble() bool    { return n != nil && n.Type == DoubleType }
func (n *Node) IsNumber() bool    { return n != nil && n.Type.IsNumber() }
func (n *Node) IsString() bool    { return n != nil && n.Type == StringType }
func (n *Node) IsArray() bool     { return n != nil && n.Type == ArrayType }
func (n *Node) IsMap() bool       { return n != nil && n.Type == MapType }
func (n *Node) IsContainer() bool { return n.IsArray() || n.IsMap() }

// AsMap returns n if it is a Map and nil otherwise.
func (n *Node) AsMap() *Node {
	if n.IsMap() {
		return n
	}
	return nil
}

// AsArray returns n if it is an Array and nil otherwise.
func (n *Node) AsArray() *Node {
	if n.IsArray() {
		return n
	}
	return nil
}

// Len returns the number of children of a container and 0 otherwise.
func (n *Node) Len() int {
	if !n.IsContainer() {
		return 0
	}
	return len(n.Values)
}

// Keys returns a copy of a Map's keys in insertion order.
func (n *Node) Keys() []string {
	if !n.IsMap() {
		return nil
	}
	return slices.Clone(n.Fields)
}

func (n *Node) index(key string) int {
	if !n.IsMap() {
		return -1
	}
	return slices.Index(n.Fields, key)
}

func (n *Node) caseIndex(key string) int {
	if !n.IsMap() {
		return -1
	}
	return slices.IndexFunc(n.Fields, func(f string) bool {
		return strings.EqualFold(f, key)
	})
}

// Get returns the value under key in a Map, or nil.  The key is not
// interpreted as a path.
func (n *Node) Get(key string) *Node {
	i := n.index(key)
	if i < 0 {
		return nil
	}
	return n.Values[i]
}

// FindNoSplit is Get.
func (n *Node) FindNoSplit(key string) *Node {
	return n.Get(key)
}

// FindCase returns the value under the first key equal to key ignoring
// case, or nil.
func (n *Node) FindCase(key string) *Node {
	i := n.caseIndex(key)
	if i < 0 {
		return nil
	}
	return n.Values[i]
}

// Has reports whether a Map holds key.
func (n *Node) Has(key string) bool {
	return n.index(key) >= 0
}

// At returns element i of an Array, or nil.
func (n *Node) At(i int) *Node {
	if !n.IsArray() || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// Push appends v to an Array.
func (n *Node) Push(v *Node) error {
	if !n.IsArray() {
		return fmt.Errorf("%w: push on %s", ErrTypeMismatch, n.typeName())
	}
	n.Values = append(n.Values, v)
	return nil
}

// Pop removes and returns the last element of an Array.
func (n *Node) Pop() *Node {
	return n.RemoveAt(n.Len() - 1)
}

// PopFront removes and returns the first element of an Array.
func (n *Node) PopFront() *Node {
	return n.RemoveAt(0)
}

// RemoveAt removes element i of an Array and returns it.
func (n *Node) RemoveAt(i int) *Node {
	v := n.At(i)
	if v == nil {
		return nil
	}
	n.Values = slices.Delete(n.Values, i, i+1)
	return v
}

// ReplaceAt replaces element i of an Array with v.
func (n *Node) ReplaceAt(i int, v *Node) bool {
	if n.At(i) == nil {
		return false
	}
	n.Values[i] = v
	return true
}

// Extract removes key from a Map and returns its value.  The caller
// becomes the owner of the result.
func (n *Node) Extract(key string) *Node {
	i := n.index(key)
	if i < 0 {
		return nil
	}
	v := n.Values[i]
	n.Fields = slices.Delete(n.Fields, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	return v
}

// Remove deletes key and its value from a Map.
func (n *Node) Remove(key string) bool {
	return n.Extract(key) != nil
}

// Replace substitutes v for the value under key, keeping the key's
// position.  It reports whether key was present.
func (n *Node) Replace(key string, v *Node) bool {
	i := n.index(key)
	if i < 0 {
		return false
	}
	n.Values[i] = v
	return true
}

// Clear removes every child of a container.
func (n *Node) Clear() {
	switch n.Type {
	case MapType:
		n.Fields = n.Fields[:0]
		fallthrough
	case ArrayType:
		n.Values = n.Values[:0]
	}
}

// Put deletes any entry for key in a Map and then appends key with v at the end of
// the key order.  Unlike Append it never splits key on '/'.
func (n *Node) Put(key string, v *Node) {
	n.Extract(key)
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
}

// Visit calls f on n and its descendants in pre-order and post-order.
// When the pre-order call returns false the children of that node are
// skipped.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	desc, err := f(n, false)
	if err != nil {
		return err
	}
	if desc {
		for _, c := range n.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

func (n *Node) typeName() string {
	if n == nil {
		return "nil"
	}
	return n.Type.String()
}
