package parse

import (
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// ParseCSV splits d into records on '\n' and fields on ','.
func ParseCSV(d []byte) *ir.Node {
	return ParseDelimited(d, ',')
}

// ParseTSV splits d into records on '\n' and fields on '\t'.
func ParseTSV(d []byte) *ir.Node {
	return ParseDelimited(d, '\t')
}

// ParseDelimited returns an Array holding one Array of Strings per
// record.  Bytes outside 0x1F-0x7E are dropped and there is no quoting.
// A final record without '\n' is kept unless it is empty.
func ParseDelimited(d []byte, sep byte) *ir.Node {
	res := ir.NewArray()
	line := ir.NewArray()
	var field strings.Builder
	pending := false
	for _, c := range d {
		switch {
		case c == '\n':
			line.Values = append(line.Values, ir.FromString(field.String()))
			res.Values = append(res.Values, line)
			line = ir.NewArray()
			field.Reset()
			pending = false
		case c == sep:
			line.Values = append(line.Values, ir.FromString(field.String()))
			field.Reset()
			pending = true
		case 0x1F <= c && c <= 0x7E:
			field.WriteByte(c)
			pending = true
		}
	}
	if pending {
		line.Values = append(line.Values, ir.FromString(field.String()))
		res.Values = append(res.Values, line)
	}
	return res
}
