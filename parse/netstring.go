package parse

import (
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// splitNet reads the header of a net-string at the current position and
// returns its payload and tag, leaving the parser after the tag.
func (p *parser) splitNet() (payload []byte, payloadOff int, tag byte, err error) {
	start := p.i
	n := 0
	for !p.eof() && '0' <= p.d[p.i] && p.d[p.i] <= '9' {
		if n > len(p.d) {
			return nil, 0, 0, p.errorf("net-string length overflows input")
		}
		n = n*10 + int(p.d[p.i]-'0')
		p.i++
	}
	if p.i == start {
		return nil, 0, 0, p.errorf("expected net-string length")
	}
	p.skipWS()
	if p.peek() != ':' {
		return nil, 0, 0, p.errorf("expected ':' after net-string length")
	}
	p.i++
	if p.i+n >= len(p.d) {
		return nil, 0, 0, p.errorf("net-string length %d runs past end of input", n)
	}
	payloadOff = p.i
	payload = p.d[p.i : p.i+n]
	tag = p.d[p.i+n]
	p.i += n + 1
	return payload, payloadOff, tag, nil
}

// netString parses "len:payload tag".  Map and array payloads hold nested
// values of either grammar, optionally separated by ','.
func (p *parser) netString(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errorf("nesting deeper than %d", p.opts.maxDepth)
	}
	start := p.i
	payload, off, tag, err := p.splitNet()
	if err != nil {
		return nil, err
	}
	switch tag {
	case ',':
		return ir.FromString(string(payload)), nil
	case '#':
		v, _ := ir.ScanInteger(string(payload), 0)
		return ir.FromInteger(v), nil
	case '^':
		v, _ := ir.ScanFloat(string(payload))
		return ir.FromFloat(v), nil
	case '!':
		s := string(payload)
		switch {
		case len(s) >= 4 && strings.EqualFold(s[:4], "true"):
			return ir.FromBool(true), nil
		case len(s) >= 5 && strings.EqualFold(s[:5], "false"):
			return ir.FromBool(false), nil
		}
		p.i = start
		return nil, p.errorf("bad boolean %q", s)
	case '~':
		return ir.Null(), nil
	case '}':
		sub := newParser(payload, p.base+off, p.opts)
		return sub.netMap(depth)
	case ']':
		sub := newParser(payload, p.base+off, p.opts)
		return sub.netArray(depth)
	default:
		p.i = start
		return nil, p.errorf("unknown net-string tag %q", tag)
	}
}

func (p *parser) netMap(depth int) (*ir.Node, error) {
	res := ir.NewMap()
	for {
		p.skipSep()
		if p.eof() {
			return res, nil
		}
		keyOff := p.i
		k, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if !k.IsString() {
			p.i = keyOff
			return nil, p.errorf("map key is %s, not String", k.Type)
		}
		p.skipSep()
		if p.eof() {
			return nil, p.errorf("missing value for key %q", k.Text())
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Put(k.Text(), v)
	}
}

func (p *parser) netArray(depth int) (*ir.Node, error) {
	res := ir.NewArray()
	for {
		p.skipSep()
		if p.eof() {
			return res, nil
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
	}
}
