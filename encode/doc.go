// Package encode renders value trees as text.
//
// # Formats
//
//   - pretty JSON (the default): two space indent, containers open on the
//     line of their key
//   - compact JSON: no whitespace
//   - net-string: length prefixed, the canonical machine format
//   - dump: tab indented debug form
//   - cdump: a form which can be pasted into a C string literal
//   - YAML, through package gomap
//
// JSON output does not use RFC 8259 string escapes.  Bytes which would
// confuse downstream consumers are written as %XX triples instead, see
// EscapeJSON.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("pump")},
//	    {Key: "rpm", Val: ir.FromInt(1200)},
//	})
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.NetStringFormat))
//
//	// or as a string
//	s := encode.CompactJSON(node)
//
// # Related Packages
//
//   - github.com/Hertig-family/MicroCPPON/ir - value trees
//   - github.com/Hertig-family/MicroCPPON/parse - text to value trees
package encode
