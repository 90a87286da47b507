package gomap

import (
	"bytes"
	"math"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders n as YAML, keeping map key order.
func MarshalYAML(n *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToOrdered(n), yaml.Indent(2), yaml.UseLiteralStyleIfMultiline(true))
}

// UnmarshalYAML parses a YAML document, keeping map key order.  Integers
// become signed 8 byte Integers unless they only fit unsigned.  An empty
// document is Null.
func UnmarshalYAML(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Null(), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(normalize(v))
}

func normalize(v any) any {
	switch x := v.(type) {
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
		return x
	case yaml.MapSlice:
		for i := range x {
			x[i].Value = normalize(x[i].Value)
		}
		return x
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	default:
		return v
	}
}
