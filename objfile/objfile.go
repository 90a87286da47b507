package objfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/gomap"
	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/parse"
)

// Load reads the file at path and parses it according to its name.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	return LoadReader(f, path, opts...)
}

// LoadReader reads r as if it were the contents of a file called name.
func LoadReader(r io.Reader, name string, opts ...parse.ParseOption) (*ir.Node, error) {
	c, ext := SplitName(name)
	d, err := decompress(r, c)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	debug.Log().Debugw("load", "name", name, "compression", c, "bytes", len(d))
	switch ext {
	case ".csv":
		return parse.ParseCSV(d), nil
	case ".tsv":
		return parse.ParseTSV(d), nil
	case ".yaml", ".yml":
		return gomap.UnmarshalYAML(d)
	}
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return n, nil
}

// Save writes n to path.  The file is written beside path under a
// temporary name and renamed into place, so readers never see a partial
// file.  opts are applied after the format chosen by the name.
func Save(path string, n *ir.Node, opts ...encode.EncodeOption) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	if err := SaveWriter(tmp, path, n, opts...); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// SaveWriter writes n to w in the format and compression name selects.
func SaveWriter(w io.Writer, name string, n *ir.Node, opts ...encode.EncodeOption) error {
	c, ext := SplitName(name)
	buf := &bytes.Buffer{}
	switch ext {
	case ".csv":
		writeDelimited(buf, n, ',')
	case ".tsv":
		writeDelimited(buf, n, '\t')
	default:
		all := append([]encode.EncodeOption{encode.EncodeFormat(formatOf(ext))}, opts...)
		if err := encode.Encode(n, buf, all...); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
	}
	if err := compress(w, c, buf.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func formatOf(ext string) format.Format {
	switch ext {
	case ".json":
		return format.JSONFormat
	case ".net", ".tnet":
		return format.NetStringFormat
	case ".yaml", ".yml":
		return format.YAMLFormat
	default:
		return format.DumpFormat
	}
}

// writeDelimited writes each element of an Array as a record.  An Array
// element supplies its leaves as fields; any other element is a single
// field.
func writeDelimited(buf *bytes.Buffer, n *ir.Node, sep byte) {
	rows := n.Values
	if !n.IsArray() {
		rows = []*ir.Node{n}
	}
	for _, row := range rows {
		fields := row.Values
		if !row.IsArray() {
			fields = []*ir.Node{row}
		}
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(sep)
			}
			if !f.IsContainer() && !f.IsNull() {
				buf.WriteString(f.Text())
			}
		}
		buf.WriteByte('\n')
	}
}
