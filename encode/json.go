package encode

import (
	"github.com/Hertig-family/MicroCPPON/ir"
)

// json renders n as pretty or compact JSON.  Containers open on the line
// of their key and close at its indentation.
func (e *encoder) json(n *ir.Node, depth int) {
	switch n.Type {
	case ir.MapType:
		if len(n.Fields) == 0 {
			e.put(ir.MapType, SepColor, "{}")
			return
		}
		e.put(ir.MapType, SepColor, "{")
		for i, k := range n.Fields {
			if i > 0 {
				e.put(ir.MapType, SepColor, ",")
			}
			e.nl(depth + 1)
			e.put(ir.MapType, FieldColor, `"`+k+`"`)
			e.put(ir.MapType, SepColor, ":")
			if e.pretty {
				e.raw(" ")
			}
			e.json(n.Values[i], depth+1)
		}
		e.nl(depth)
		e.put(ir.MapType, SepColor, "}")
	case ir.ArrayType:
		if len(n.Values) == 0 {
			e.put(ir.ArrayType, SepColor, "[]")
			return
		}
		e.put(ir.ArrayType, SepColor, "[")
		for i, v := range n.Values {
			if i > 0 {
				e.put(ir.ArrayType, SepColor, ",")
			}
			e.nl(depth + 1)
			e.json(v, depth+1)
		}
		e.nl(depth)
		e.put(ir.ArrayType, SepColor, "]")
	default:
		e.put(n.Type, ValueColor, jsonLeaf(n))
	}
}

func jsonLeaf(n *ir.Node) string {
	switch n.Type {
	case ir.BoolType:
		if n.Bool {
			return "true"
		}
		return "false"
	case ir.IntegerType:
		return n.Int.String()
	case ir.DoubleType:
		return n.Double.Format()
	case ir.StringType:
		return `"` + EscapeJSON(n.String) + `"`
	default:
		return "null"
	}
}
