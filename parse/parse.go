package parse

import (
	"fmt"

	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/ir"
)

// Parse parses one value from d.  Input whose first non blank bytes are
// a decimal length followed by ':' is read as a net-string, anything
// else with the permissive grammar.  Trailing bytes after the value are
// ignored unless Strict is given.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, 0, newOpts(opts))
	p.skipWS()
	if p.eof() {
		return nil, p.errorf("empty input")
	}
	res, err := p.value(0)
	if err != nil {
		return nil, p.log(err)
	}
	if err := p.finish(); err != nil {
		return nil, p.log(err)
	}
	return res, nil
}

// ParsePermissive parses d with the permissive grammar only.  Net-strings
// are still accepted as nested values.
func ParsePermissive(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, 0, newOpts(opts))
	p.skipWS()
	res, err := p.permissive(0)
	if err != nil {
		return nil, p.log(err)
	}
	if err := p.finish(); err != nil {
		return nil, p.log(err)
	}
	return res, nil
}

// ParseNetString parses d as a single net-string.
func ParseNetString(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, 0, newOpts(opts))
	p.skipWS()
	res, err := p.netString(0)
	if err != nil {
		return nil, p.log(err)
	}
	if err := p.finish(); err != nil {
		return nil, p.log(err)
	}
	return res, nil
}

type parser struct {
	d    []byte
	i    int
	base int
	opts *parseOpts
}

func newParser(d []byte, base int, opts *parseOpts) *parser {
	return &parser{d: d, base: base, opts: opts}
}

func (p *parser) eof() bool { return p.i >= len(p.d) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.d[p.i]
}

func (p *parser) errorf(f string, args ...any) error {
	return &Error{Offset: p.base + p.i, Msg: fmt.Sprintf(f, args...)}
}

func (p *parser) log(err error) error {
	if debug.Parse() {
		end := min(p.i+48, len(p.d))
		debug.Logf("%v near %q", err, p.d[p.i:end])
	}
	return err
}

func (p *parser) finish() error {
	p.skipWS()
	if p.opts.strict && !p.eof() {
		return p.errorf("trailing data %q", p.peek())
	}
	return nil
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *parser) skipWS() {
	for !p.eof() && isWS(p.d[p.i]) {
		p.i++
	}
}

// skipSep skips blanks and at most one ','.
func (p *parser) skipSep() {
	p.skipWS()
	if p.peek() == ',' {
		p.i++
		p.skipWS()
	}
}

// atNetString reports whether a run of digits followed by ':' starts at
// the current position.
func (p *parser) atNetString() bool {
	j := p.i
	for j < len(p.d) && '0' <= p.d[j] && p.d[j] <= '9' {
		j++
	}
	return j > p.i && j < len(p.d) && p.d[j] == ':'
}

// value parses either grammar, choosing by lookahead.
func (p *parser) value(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errorf("nesting deeper than %d", p.opts.maxDepth)
	}
	if p.atNetString() {
		return p.netString(depth)
	}
	return p.permissive(depth)
}
