package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/gomap"
	"github.com/Hertig-family/MicroCPPON/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent  int
	newline bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the format selected by EncodeFormat, pretty
// JSON by default.  A nil node encodes as null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	var (
		buf []byte
		err error
	)
	switch es.format {
	case format.JSONFormat, format.CompactFormat:
		e := &encoder{es: es, pretty: es.format == format.JSONFormat}
		e.json(node, 0)
		buf = e.buf
	case format.NetStringFormat:
		buf = appendNet(nil, node)
	case format.DumpFormat:
		e := &encoder{es: es}
		e.dump(node, "")
		buf = append(e.buf, '\n')
	case format.CDumpFormat:
		e := &encoder{es: es}
		e.cdump(node)
		buf = e.buf
	case format.YAMLFormat:
		buf, err = gomap.MarshalYAML(node)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
	if es.newline && (len(buf) == 0 || buf[len(buf)-1] != '\n') {
		buf = append(buf, '\n')
	}
	_, err = w.Write(buf)
	return err
}

// String returns the encoding of node as a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type encoder struct {
	es     *EncState
	pretty bool
	buf    []byte
}

func (e *encoder) put(t ir.Type, a ColorAttr, s string) {
	if e.es.Color != nil {
		s = e.es.Color(t, a, s)
	}
	e.buf = append(e.buf, s...)
}

func (e *encoder) raw(s string) {
	e.buf = append(e.buf, s...)
}

func (e *encoder) nl(depth int) {
	if !e.pretty {
		return
	}
	e.buf = append(e.buf, '\n')
	e.buf = append(e.buf, strings.Repeat(" ", e.es.indent*depth)...)
}
