package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// Decoder reads a stream of values.  Each value is a balanced {...} or
// [...], a quoted string, a net-string, or a bare token ending at a
// blank.
type Decoder struct {
	r    *bufio.Reader
	opts []ParseOption
}

func NewDecoder(r io.Reader, opts ...ParseOption) *Decoder {
	return &Decoder{r: bufio.NewReader(r), opts: opts}
}

// Decode reads and parses the next value.  It returns io.EOF when the
// stream ends before a value starts and io.ErrUnexpectedEOF when it ends
// inside one.
func (d *Decoder) Decode() (*ir.Node, error) {
	raw, err := d.next()
	if err != nil {
		return nil, err
	}
	return Parse(raw, d.opts...)
}

// ReadObj reads a single value from r.  It may buffer input past the end
// of the value; use a Decoder to read several.
func ReadObj(r io.Reader) (*ir.Node, error) {
	return NewDecoder(r).Decode()
}

func (d *Decoder) next() ([]byte, error) {
	c, err := d.skipWS()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte(c)
	switch {
	case c == '{' || c == '[':
		err = d.balanced(buf)
	case c == '"':
		err = d.quoted(buf)
	case '0' <= c && c <= '9':
		err = d.netOrNumber(buf)
	default:
		err = d.bare(buf)
	}
	if errors.Is(err, io.EOF) {
		if c != '{' && c != '[' && c != '"' && buf.Len() > 0 {
			return buf.Bytes(), nil
		}
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Decoder) skipWS() (byte, error) {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isWS(c) {
			return c, nil
		}
	}
}

func (d *Decoder) balanced(buf *bytes.Buffer) error {
	level := 1
	for level > 0 {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		buf.WriteByte(c)
		switch c {
		case '{', '[':
			level++
		case '}', ']':
			level--
		case '"':
			if err := d.quoted(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Decoder) quoted(buf *bytes.Buffer) error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		buf.WriteByte(c)
		switch c {
		case '\\':
			c, err = d.r.ReadByte()
			if err != nil {
				return err
			}
			buf.WriteByte(c)
		case '"':
			return nil
		}
	}
}

// netOrNumber reads the rest of a net-string whose first length digit
// is already in buf, or a bare number when no ':' follows the digits.
func (d *Decoder) netOrNumber(buf *bytes.Buffer) error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		if c == ':' {
			break
		}
		if c < '0' || c > '9' {
			if err := d.r.UnreadByte(); err != nil {
				return err
			}
			return d.bare(buf)
		}
		buf.WriteByte(c)
	}
	n, err := strconv.Atoi(buf.String())
	if err != nil {
		return fmt.Errorf("%w: bad net-string length %q", ErrParse, buf.String())
	}
	buf.WriteByte(':')
	if _, err := io.CopyN(buf, d.r, int64(n)+1); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (d *Decoder) bare(buf *bytes.Buffer) error {
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		if isWS(c) {
			return nil
		}
		buf.WriteByte(c)
	}
}
