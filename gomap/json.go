package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MarshalJSON renders n as RFC 8259 JSON in map insertion order.
// Doubles always carry a decimal point so that they read back as
// Doubles.
func MarshalJSON(n *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *ir.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Type {
	case ir.MapType:
		buf.WriteByte('{')
		for i, k := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.DoubleType:
		f := n.Double.Value
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v in JSON", ErrUnsupported, f)
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		buf.WriteString(s)
	case ir.IntegerType:
		buf.WriteString(n.Int.String())
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case ir.StringType:
		return writeJSONString(buf, n.Text())
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON parses RFC 8259 JSON keeping map key order.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	return UnmarshalYAML(d)
}

// ApplyMergePatch applies the RFC 7396 merge patch to a copy of doc.
func ApplyMergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(out)
}

// ApplyPatch applies the RFC 6902 operations in ops to a copy of doc.
func ApplyPatch(doc *ir.Node, ops []byte) (*ir.Node, error) {
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, err
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(d)
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(out)
}
