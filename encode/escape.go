package encode

import "strings"

var jsonEscapes = [256]string{
	'"':  "%22",
	'{':  "%7B",
	'}':  "%7D",
	'<':  "%3C",
	'>':  "%3E",
	'\\': "%5C",
	'\'': "%60",
	'^':  "%5E",
	'&':  "%26",
	'\r': "%0D",
	'\n': "%0A",
	'\a': "%0A",
	'\t': " ",
}

// EscapeJSON applies the JSON output escapes to the stored form of a
// string.  Bytes without an escape are copied through.
func EscapeJSON(stored string) string {
	i := 0
	for ; i < len(stored); i++ {
		if jsonEscapes[stored[i]] != "" {
			break
		}
	}
	if i == len(stored) {
		return stored
	}
	var b strings.Builder
	b.Grow(len(stored) + 8)
	b.WriteString(stored[:i])
	for ; i < len(stored); i++ {
		c := stored[i]
		if esc := jsonEscapes[c]; esc != "" {
			b.WriteString(esc)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
