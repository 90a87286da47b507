package objfile

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is the codec wrapped around a file's contents.
type Compression int

const (
	None Compression = iota
	Zstd
	Gzip
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// SplitName returns the compression named by the last suffix of name
// and the format suffix in front of it, lower cased.
func SplitName(name string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(name))
	c := None
	switch ext {
	case ".zst", ".zstd":
		c = Zstd
	case ".gz":
		c = Gzip
	case ".lz4":
		c = LZ4
	}
	if c != None {
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}
	return c, ext
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("zstd decoder: %v", err))
		}
		return dec
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("zstd encoder: %v", err))
		}
		return enc
	},
}

// decompress reads all of r through codec c.
func decompress(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case Zstd:
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		dec := zstdDecoderPool.Get().(*zstd.Decoder)
		defer zstdDecoderPool.Put(dec)
		res, err := dec.DecodeAll(d, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return res, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case LZ4:
		d, err := io.ReadAll(lz4.NewReader(r))
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return d, nil
	default:
		return io.ReadAll(r)
	}
}

// compress writes d to w through codec c.
func compress(w io.Writer, c Compression, d []byte) error {
	switch c {
	case Zstd:
		enc := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(enc)
		_, err := w.Write(enc.EncodeAll(d, nil))
		return err
	case Gzip:
		zw := gzip.NewWriter(w)
		if _, err := zw.Write(d); err != nil {
			return err
		}
		return zw.Close()
	case LZ4:
		zw := lz4.NewWriter(w)
		if _, err := io.Copy(zw, bytes.NewReader(d)); err != nil {
			return err
		}
		return zw.Close()
	default:
		_, err := w.Write(d)
		return err
	}
}
