// Package parse reads text into value trees.
//
// Two grammars are understood and may be nested inside each other.  The
// permissive grammar is JSON like: quoted map keys, bare true, false and
// null in any case, and numbers which may be hex.  Net-strings have the
// form "len:payload tag" where tag is one of
//
//	,  String    #  Integer   ^  Double   !  Boolean
//	~  Null      }  Map       ]  Array
//
// Wherever a value is expected, a run of digits followed by ':' starts a
// net-string.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"rpm": 1200, "tags": 7:4:fast,]}`))
//	if errors.Is(err, parse.ErrParse) {
//	    ...
//	}
//
// ParseCSV and ParseTSV split line oriented text.  FindTNetStringArg
// probes a net-string for a key without building a tree.  Decoder reads
// a stream of values.
//
// # Related Packages
//
//   - github.com/Hertig-family/MicroCPPON/ir - value trees
//   - github.com/Hertig-family/MicroCPPON/encode - value trees to text
package parse
