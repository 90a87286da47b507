package encode

import (
	"strconv"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// appendNet appends the net-string form of n: the decimal byte length
// of the payload, ':', the payload and a one byte type tag.
func appendNet(buf []byte, n *ir.Node) []byte {
	switch n.Type {
	case ir.NullType:
		return appendTagged(buf, nil, '~')
	case ir.BoolType:
		return appendTagged(buf, []byte(strconv.FormatBool(n.Bool)), '!')
	case ir.IntegerType:
		return appendTagged(buf, []byte(n.Int.String()), '#')
	case ir.DoubleType:
		return appendTagged(buf, strconv.AppendFloat(nil, n.Double.Value, 'f', 10, 64), '^')
	case ir.StringType:
		return appendTagged(buf, []byte(n.Text()), ',')
	case ir.ArrayType:
		var body []byte
		for _, v := range n.Values {
			body = appendNet(body, v)
		}
		return appendTagged(buf, body, ']')
	case ir.MapType:
		var body []byte
		for i, k := range n.Fields {
			body = appendTagged(body, []byte(k), ',')
			body = appendNet(body, n.Values[i])
		}
		return appendTagged(buf, body, '}')
	}
	return buf
}

func appendTagged(buf, payload []byte, tag byte) []byte {
	buf = strconv.AppendInt(buf, int64(len(payload)), 10)
	buf = append(buf, ':')
	buf = append(buf, payload...)
	return append(buf, tag)
}
