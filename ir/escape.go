package ir

import (
	"encoding/base64"
	"strings"
)

// Escape converts raw text to the stored string form: '"', '%' and NUL are
// replaced by %22, %25 and %00.
func Escape(raw string) string {
	if strings.IndexAny(raw, "\"%\x00") == -1 {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw) + 8)
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '"':
			b.WriteString("%22")
		case '%':
			b.WriteString("%25")
		case 0:
			b.WriteString("%00")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape decodes every %XX sequence in a stored string.  A '%' that is
// not followed by two hex digits is kept as is.
func Unescape(stored string) string {
	if strings.IndexByte(stored, '%') == -1 {
		return stored
	}
	var b strings.Builder
	b.Grow(len(stored))
	for i := 0; i < len(stored); i++ {
		c := stored[i]
		if c == '%' && i+2 < len(stored) {
			hi, ok1 := unhex(stored[i+1])
			lo, ok2 := unhex(stored[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FromBase64 returns a String node holding the standard base64 encoding of
// d.
func FromBase64(d []byte) *Node {
	return FromEscaped(base64.StdEncoding.EncodeToString(d))
}

// Base64 decodes the text of a String node as standard base64.
func (n *Node) Base64() ([]byte, error) {
	if n == nil || n.Type != StringType {
		return nil, ErrTypeMismatch
	}
	return base64.StdEncoding.DecodeString(n.Text())
}
