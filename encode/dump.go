package encode

import (
	"strconv"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// dump renders the tab indented debug form.  indent prefixes the opening
// bracket of a container; a container value starts on a fresh line.
func (e *encoder) dump(n *ir.Node, indent string) {
	inner := indent + "\t"
	switch n.Type {
	case ir.MapType:
		e.raw(indent)
		e.put(ir.MapType, SepColor, "{")
		for i, k := range n.Fields {
			if i > 0 {
				e.put(ir.MapType, SepColor, ",")
			}
			e.raw("\n" + inner)
			e.put(ir.MapType, FieldColor, `"`+k+`"`)
			e.put(ir.MapType, SepColor, ": ")
			e.dumpValue(n.Values[i], inner)
		}
		e.raw("\n" + indent)
		e.put(ir.MapType, SepColor, "}")
	case ir.ArrayType:
		e.raw(indent)
		e.put(ir.ArrayType, SepColor, "[")
		for i, v := range n.Values {
			if i > 0 {
				e.put(ir.ArrayType, SepColor, ",")
			}
			e.raw("\n" + inner)
			e.dumpValue(v, inner)
		}
		e.raw("\n" + indent)
		e.put(ir.ArrayType, SepColor, "]")
	default:
		e.put(n.Type, ValueColor, dumpLeaf(n))
	}
}

func (e *encoder) dumpValue(v *ir.Node, indent string) {
	if v.IsContainer() {
		e.raw("\n")
		e.dump(v, indent)
		return
	}
	e.dump(v, "")
}

func dumpLeaf(n *ir.Node) string {
	switch n.Type {
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.IntegerType:
		return n.Int.String()
	case ir.DoubleType:
		return strconv.FormatFloat(n.Double.Value, 'f', 10, 64)
	case ir.StringType:
		return `"` + n.String + `"`
	default:
		return "NULL"
	}
}

// cdump renders n for embedding inside a C string literal.  Quotes are
// backslash escaped and each nested container starts a new literal.
func (e *encoder) cdump(n *ir.Node) {
	switch n.Type {
	case ir.MapType:
		e.raw("{")
		for i, k := range n.Fields {
			if i > 0 {
				e.raw(",")
			}
			e.raw(`\"` + k + `\": `)
			e.cdumpValue(n.Values[i])
		}
		e.raw("}")
	case ir.ArrayType:
		e.raw("[")
		first := true
		for _, v := range n.Values {
			if v.IsNull() {
				continue
			}
			if !first {
				e.raw(",")
			}
			first = false
			e.cdumpValue(v)
		}
		e.raw("]")
	case ir.BoolType:
		e.raw(strconv.FormatBool(n.Bool))
	case ir.IntegerType:
		e.raw(n.Int.String())
	case ir.DoubleType:
		e.raw(strconv.FormatFloat(n.Double.Value, 'f', 16, 64))
	case ir.StringType:
		e.raw(`\"` + n.String + `\"`)
	default:
		e.raw("null")
	}
}

func (e *encoder) cdumpValue(v *ir.Node) {
	if v.IsContainer() {
		e.raw("\"\n\"")
	}
	e.cdump(v)
}
