package gomap

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/goccy/go-yaml"
)

var ErrUnsupported = errors.New("unsupported go value")

// ToAny converts n to plain Go values: map[string]any, []any, int64,
// uint64, float64, string, bool or nil.  Strings are decoded from their
// stored form.  Map order is lost; see ToOrdered.
func ToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.MapType:
		res := make(map[string]any, len(n.Fields))
		for i, k := range n.Fields {
			res[k] = ToAny(n.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	default:
		return leafToAny(n)
	}
}

// ToOrdered is like ToAny but renders maps as yaml.MapSlice so that key
// order survives encoding.
func ToOrdered(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.MapType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, k := range n.Fields {
			res[i] = yaml.MapItem{Key: k, Value: ToOrdered(n.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToOrdered(v)
		}
		return res
	default:
		return leafToAny(n)
	}
}

func leafToAny(n *ir.Node) any {
	switch n.Type {
	case ir.BoolType:
		return n.Bool
	case ir.IntegerType:
		if n.Int.Unsigned() {
			return n.Int.Uint64()
		}
		return n.Int.Int64()
	case ir.DoubleType:
		return n.Double.Value
	case ir.StringType:
		return n.Text()
	default:
		return nil
	}
}

// FromAny converts a Go value to a tree.  Integer kinds keep their width
// and signedness.  Go maps produce sorted keys while yaml.MapSlice keeps
// its order.  An *ir.Node is cloned.
func FromAny(v any) (*ir.Node, error) {
	return fromValue(reflect.ValueOf(v), "")
}

func fromValue(val reflect.Value, path string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if val.CanInterface() {
		switch x := val.Interface().(type) {
		case *ir.Node:
			if x == nil {
				return ir.Null(), nil
			}
			return x.Clone(), nil
		case yaml.MapSlice:
			kvs := make([]ir.KeyVal, 0, len(x))
			for _, item := range x {
				k := fmt.Sprint(item.Key)
				child, err := fromValue(reflect.ValueOf(item.Value), path+"/"+k)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: k, Val: child})
			}
			return ir.FromKeyVals(kvs), nil
		case json.Number:
			if i, err := x.Int64(); err == nil {
				return ir.FromInt(i), nil
			}
			f, err := x.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %q", ErrUnsupported, x, path)
			}
			return ir.FromFloat(f), nil
		case encoding.TextMarshaler:
			if val.Kind() == reflect.Pointer && val.IsNil() {
				return ir.Null(), nil
			}
			text, err := x.MarshalText()
			if err != nil {
				return nil, err
			}
			return ir.FromString(string(text)), nil
		}
	}

	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Int8:
		return ir.FromInt8(int8(val.Int())), nil
	case reflect.Int16:
		return ir.FromInt16(int16(val.Int())), nil
	case reflect.Int32:
		return ir.FromInt32(int32(val.Int())), nil
	case reflect.Int, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint8:
		return ir.FromUint8(uint8(val.Uint())), nil
	case reflect.Uint16:
		return ir.FromUint16(uint16(val.Uint())), nil
	case reflect.Uint32:
		return ir.FromUint32(uint32(val.Uint())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return ir.FromUint64(val.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromValue(val.Elem(), path)
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return ir.Null(), nil
		}
		res := ir.NewArray()
		for i := range val.Len() {
			child, err := fromValue(val.Index(i), fmt.Sprintf("%s:%d", path, i))
			if err != nil {
				return nil, err
			}
			if err := res.Push(child); err != nil {
				return nil, err
			}
		}
		return res, nil
	case reflect.Map:
		if val.IsNil() {
			return ir.Null(), nil
		}
		keys := map[string]reflect.Value{}
		iter := val.MapRange()
		for iter.Next() {
			keys[fmt.Sprint(iter.Key().Interface())] = iter.Value()
		}
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, k := range slices.Sorted(maps.Keys(keys)) {
			child, err := fromValue(keys[k], path+"/"+k)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: child})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %s at %q", ErrUnsupported, val.Type(), path)
	}
}
