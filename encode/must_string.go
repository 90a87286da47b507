package encode

import (
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/ir"
)

// MustString is like String but panics on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func PrettyJSON(node *ir.Node) string {
	return MustString(node, EncodeFormat(format.JSONFormat))
}

func CompactJSON(node *ir.Node) string {
	return MustString(node, EncodeFormat(format.CompactFormat))
}

func NetString(node *ir.Node) string {
	return MustString(node, EncodeFormat(format.NetStringFormat))
}

func Dump(node *ir.Node) string {
	return MustString(node, EncodeFormat(format.DumpFormat))
}

func CDump(node *ir.Node) string {
	return MustString(node, EncodeFormat(format.CDumpFormat))
}
