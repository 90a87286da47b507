package parse

import (
	"bytes"
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// permissive parses a JSON like value: maps with quoted keys, arrays,
// quoted strings, bare case insensitive true, false and null, and
// numbers with an optional sign, 0x hex or a decimal point.
func (p *parser) permissive(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errorf("nesting deeper than %d", p.opts.maxDepth)
	}
	c := p.peek()
	switch {
	case c == '{':
		return p.parseMap(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'T':
		return p.keyword("true", ir.FromBool(true))
	case c == 'f' || c == 'F':
		return p.keyword("false", ir.FromBool(false))
	case c == 'n' || c == 'N':
		return p.keyword("null", ir.Null())
	case '0' <= c && c <= '9', c == '-', c == '+', c == '.':
		return p.parseNumber()
	case p.eof():
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("%q is not a value", c)
	}
}

func (p *parser) parseMap(depth int) (*ir.Node, error) {
	p.i++
	res := ir.NewMap()
	p.skipWS()
	if p.peek() == '}' {
		p.i++
		return res, nil
	}
	for {
		p.skipWS()
		if p.peek() != '"' {
			return nil, p.errorf("expected quoted key")
		}
		p.i++
		n := bytes.IndexByte(p.d[p.i:], '"')
		if n < 0 {
			return nil, p.errorf("unterminated key")
		}
		key := string(p.d[p.i : p.i+n])
		p.i += n + 1
		p.skipWS()
		if p.peek() != ':' {
			return nil, p.errorf("expected ':' after key %q", key)
		}
		p.i++
		p.skipWS()
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Put(key, v)
		p.skipWS()
		switch p.peek() {
		case ',':
			p.i++
			p.skipWS()
			if p.peek() == '}' {
				p.i++
				return res, nil
			}
		case '}':
			p.i++
			return res, nil
		default:
			return nil, p.errorf("expected ',' or '}' in map")
		}
	}
}

func (p *parser) parseArray(depth int) (*ir.Node, error) {
	p.i++
	res := ir.NewArray()
	p.skipWS()
	if p.peek() == ']' {
		p.i++
		return res, nil
	}
	for {
		p.skipWS()
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		p.skipWS()
		switch p.peek() {
		case ',':
			p.i++
			p.skipWS()
			if p.peek() == ']' {
				p.i++
				return res, nil
			}
		case ']':
			p.i++
			return res, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

// parseString reads a quoted string.  A backslash takes the next byte
// literally.  %XX sequences are kept as they appear; a literal '"' or NUL
// is escaped into stored form.
func (p *parser) parseString() (*ir.Node, error) {
	start := p.i
	p.i++
	var b strings.Builder
	for !p.eof() {
		c := p.d[p.i]
		p.i++
		switch c {
		case '"':
			return ir.FromEscaped(b.String()), nil
		case '\\':
			if p.eof() {
				break
			}
			storeByte(&b, p.d[p.i])
			p.i++
		default:
			storeByte(&b, c)
		}
	}
	p.i = start
	return nil, p.errorf("unterminated string")
}

func storeByte(b *strings.Builder, c byte) {
	switch c {
	case '"':
		b.WriteString("%22")
	case 0:
		b.WriteString("%00")
	default:
		b.WriteByte(c)
	}
}

// keyword matches word case insensitively.  It must be followed by a
// blank, ',', '}', ']' or the end of input.
func (p *parser) keyword(word string, res *ir.Node) (*ir.Node, error) {
	end := p.i + len(word)
	if end > len(p.d) || !strings.EqualFold(string(p.d[p.i:end]), word) {
		return nil, p.errorf("%q is not a value", p.peek())
	}
	if end < len(p.d) && !isDelim(p.d[end]) {
		return nil, p.errorf("bad keyword %q", p.d[p.i:end+1])
	}
	p.i = end
	return res, nil
}

func isDelim(c byte) bool {
	return isWS(c) || c == ',' || c == '}' || c == ']'
}

// parseNumber reads an Integer, or a Double when the token holds a '.'
// or a decimal exponent.  Integers are signed 8 byte values unless they
// only fit unsigned; 0x selects hex.
func (p *parser) parseNumber() (*ir.Node, error) {
	j := p.i
	for j < len(p.d) && !isDelim(p.d[j]) && p.d[j] != ':' {
		j++
	}
	tok := string(p.d[p.i:j])
	digits := strings.TrimLeft(tok, "+-")
	hex := strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X")
	if !hex && strings.ContainsAny(tok, ".eE") {
		v, n := ir.ScanFloat(tok)
		if n == 0 {
			return nil, p.errorf("bad number %q", tok)
		}
		p.i += n
		return ir.FromFloat(v), nil
	}
	base := 10
	if hex {
		base = 16
	}
	v, n := ir.ScanInteger(tok, base)
	if n == 0 {
		return nil, p.errorf("bad number %q", tok)
	}
	p.i += n
	return ir.FromInteger(v), nil
}
