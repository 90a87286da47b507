// Package rawmem renders value trees from flat memory, such as a shared
// memory segment written by another process, and stores them back.
//
// A schema describes the layout.  It is a Map whose fields are laid out
// in key order with no padding.  Each field is one of
//
//	"double", "int32", ...   a kind name
//	2                        a kind code
//	"char:16"                a NUL terminated string in 16 bytes
//	{...}                    a nested unit
//	[elem, count]            count consecutive elem fields
//
// For example
//
//	{"rpm": "int32", "temp": "double", "tag": "char:8", "pos": ["double", 3]}
//
// occupies 4+8+8+24 bytes.
package rawmem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

var (
	ErrShortMemory = errors.New("short memory")
	ErrBadSchema   = errors.New("bad schema")
)

// Leaf builds a leaf from the bytes of mem at off.  Integer kinds keep
// their width.  A KindChar leaf reads up to the first NUL or the end of
// mem.
func Leaf(mem []byte, off int, kind Kind, order binary.ByteOrder) (*ir.Node, error) {
	if off < 0 || off > len(mem) {
		return nil, fmt.Errorf("%w: offset %d outside %d bytes", ErrShortMemory, off, len(mem))
	}
	if kind == KindChar {
		s := mem[off:]
		if i := bytes.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		return ir.FromString(string(s)), nil
	}
	size := kind.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s is not a leaf kind", ErrBadSchema, kind)
	}
	if off+size > len(mem) {
		return nil, fmt.Errorf("%w: %s at %d needs %d bytes, have %d", ErrShortMemory, kind, off, size, len(mem))
	}
	b := mem[off : off+size]
	switch kind {
	case KindDouble:
		return ir.FromFloat(math.Float64frombits(order.Uint64(b))), nil
	case KindInt64:
		return ir.FromInt(int64(order.Uint64(b))), nil
	case KindInt32:
		return ir.FromInt32(int32(order.Uint32(b))), nil
	case KindInt16:
		return ir.FromInt16(int16(order.Uint16(b))), nil
	case KindInt8:
		return ir.FromInt8(int8(b[0])), nil
	default:
		return ir.FromBool(b[0] != 0), nil
	}
}

type field struct {
	name  string
	kind  Kind
	size  int     // bytes of a char field or of one array element
	count int     // elements of an array field
	elem  *field  // array element
	subs  []field // unit fields
}

func compile(schema *ir.Node) ([]field, error) {
	if !schema.IsMap() {
		return nil, fmt.Errorf("%w: schema is %s, not Map", ErrBadSchema, schema.Type)
	}
	res := make([]field, 0, schema.Len())
	for i, k := range schema.Fields {
		f, err := compileField(k, schema.Values[i])
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

func compileField(name string, v *ir.Node) (field, error) {
	f := field{name: name}
	switch v.Type {
	case ir.StringType:
		s := v.Text()
		if head, n, ok := strings.Cut(s, ":"); ok {
			size, err := strconv.Atoi(n)
			if err != nil || size <= 0 || !strings.EqualFold(head, "char") {
				return f, fmt.Errorf("%w: field %q: bad kind %q", ErrBadSchema, name, s)
			}
			f.kind, f.size = KindChar, size
			return f, nil
		}
		k, err := ParseKind(s)
		if err != nil {
			return f, fmt.Errorf("field %q: %w", name, err)
		}
		f.kind = k
	case ir.IntegerType:
		f.kind = Kind(v.ToInt64())
		if v.ToInt64() < 0 || v.ToInt64() > int64(KindArray) {
			return f, fmt.Errorf("%w: field %q: unknown kind code %s", ErrBadSchema, name, v.Int)
		}
	case ir.MapType:
		subs, err := compile(v)
		if err != nil {
			return f, fmt.Errorf("field %q: %w", name, err)
		}
		f.kind, f.subs = KindUnit, subs
		return f, nil
	case ir.ArrayType:
		if v.Len() != 2 || !v.At(1).IsInteger() || v.At(1).ToInt64() <= 0 {
			return f, fmt.Errorf("%w: field %q: array fields are [elem, count]", ErrBadSchema, name)
		}
		elem, err := compileField(name, v.At(0))
		if err != nil {
			return f, err
		}
		f.kind, f.elem, f.count = KindArray, &elem, int(v.At(1).ToInt64())
		return f, nil
	default:
		return f, fmt.Errorf("%w: field %q is %s", ErrBadSchema, name, v.Type)
	}
	if f.kind.Size() == 0 {
		return f, fmt.Errorf("%w: field %q: %s needs a size", ErrBadSchema, name, f.kind)
	}
	return f, nil
}

func (f *field) width() int {
	switch f.kind {
	case KindChar:
		return f.size
	case KindUnit:
		return width(f.subs)
	case KindArray:
		return f.count * f.elem.width()
	default:
		return f.kind.Size()
	}
}

func width(fs []field) int {
	n := 0
	for i := range fs {
		n += fs[i].width()
	}
	return n
}

// Size returns the number of bytes schema occupies.
func Size(schema *ir.Node) (int, error) {
	fs, err := compile(schema)
	if err != nil {
		return 0, err
	}
	return width(fs), nil
}

// Render builds a Map from mem laid out as schema describes.
func Render(mem []byte, schema *ir.Node, order binary.ByteOrder) (*ir.Node, error) {
	fs, err := compile(schema)
	if err != nil {
		return nil, err
	}
	if n := width(fs); n > len(mem) {
		return nil, fmt.Errorf("%w: schema needs %d bytes, have %d", ErrShortMemory, n, len(mem))
	}
	res, _, err := renderUnit(mem, 0, fs, order)
	return res, err
}

func renderUnit(mem []byte, off int, fs []field, order binary.ByteOrder) (*ir.Node, int, error) {
	res := ir.NewMap()
	for i := range fs {
		v, next, err := render(mem, off, &fs[i], order)
		if err != nil {
			return nil, 0, err
		}
		res.Put(fs[i].name, v)
		off = next
	}
	return res, off, nil
}

func render(mem []byte, off int, f *field, order binary.ByteOrder) (*ir.Node, int, error) {
	switch f.kind {
	case KindUnit:
		return renderUnit(mem, off, f.subs, order)
	case KindArray:
		res := ir.NewArray()
		for range f.count {
			v, next, err := render(mem, off, f.elem, order)
			if err != nil {
				return nil, 0, err
			}
			res.Values = append(res.Values, v)
			off = next
		}
		return res, off, nil
	case KindChar:
		if off+f.size > len(mem) {
			return nil, 0, fmt.Errorf("%w: %q at %d", ErrShortMemory, f.name, off)
		}
		v, err := Leaf(mem[off:off+f.size], 0, KindChar, order)
		return v, off + f.size, err
	default:
		v, err := Leaf(mem, off, f.kind, order)
		return v, off + f.kind.Size(), err
	}
}

// Store writes the leaves of n into mem laid out as schema describes.
// Fields missing from n, and leaf fields holding Null or a container, are
// left untouched.  Values are converted to the field's kind, and integers
// saturate to the field's width; strings longer than a char field are
// truncated so that a terminating NUL fits.
func Store(mem []byte, schema, n *ir.Node, order binary.ByteOrder) error {
	fs, err := compile(schema)
	if err != nil {
		return err
	}
	if w := width(fs); w > len(mem) {
		return fmt.Errorf("%w: schema needs %d bytes, have %d", ErrShortMemory, w, len(mem))
	}
	if !n.IsMap() {
		return fmt.Errorf("%w: store of %s", ir.ErrTypeMismatch, n.Type)
	}
	storeUnit(mem, 0, fs, n, order)
	return nil
}

func storeUnit(mem []byte, off int, fs []field, n *ir.Node, order binary.ByteOrder) {
	for i := range fs {
		f := &fs[i]
		if v := n.Get(f.name); v != nil {
			store(mem, off, f, v, order)
		}
		off += f.width()
	}
}

func store(mem []byte, off int, f *field, v *ir.Node, order binary.ByteOrder) {
	switch f.kind {
	case KindUnit:
		if v.IsMap() {
			storeUnit(mem, off, f.subs, v, order)
		}
		return
	case KindArray:
		if !v.IsArray() {
			return
		}
		w := f.elem.width()
		for i := 0; i < f.count && i < v.Len(); i++ {
			store(mem, off+i*w, f.elem, v.At(i), order)
		}
		return
	}
	if v == nil || !v.Type.IsLeaf() || v.IsNull() {
		return
	}
	switch f.kind {
	case KindChar:
		b := mem[off : off+f.size]
		clear(b)
		copy(b[:f.size-1], v.Text())
	case KindDouble:
		order.PutUint64(mem[off:], math.Float64bits(v.ToDouble()))
	case KindInt64:
		order.PutUint64(mem[off:], uint64(fieldInt(v, f.kind)))
	case KindInt32:
		order.PutUint32(mem[off:], uint32(fieldInt(v, f.kind)))
	case KindInt16:
		order.PutUint16(mem[off:], uint16(fieldInt(v, f.kind)))
	case KindInt8:
		mem[off] = byte(fieldInt(v, f.kind))
	case KindBool:
		mem[off] = 0
		if v.ToBool() {
			mem[off] = 1
		}
	}
}

// fieldInt converts v to a signed integer saturated to the width of k.
func fieldInt(v *ir.Node, k Kind) int64 {
	w := ir.Width(k.Size())
	if v.IsInteger() {
		return v.Int.Convert(w, false).Int64()
	}
	return ir.NewInt(v.ToInt64(), w).Int64()
}
