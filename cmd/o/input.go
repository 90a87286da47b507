package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/objfile"
	"github.com/Hertig-family/MicroCPPON/parse"
)

// getObjFile reads one object from path, or from stdin when path is "-".
// Extensions select the reader and compression as in objfile.Load.
func getObjFile(in io.Reader, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if path == "-" {
		return objfile.LoadReader(in, path, opts...)
	}
	return objfile.Load(path, opts...)
}

// eachInput calls f with each object of the named files, or with each
// object of the stream on stdin when there are no files.
func eachInput(cfg *MainConfig, in io.Reader, files []string, f func(name string, n *ir.Node) error) error {
	if len(files) == 0 {
		dec := parse.NewDecoder(in, cfg.parseOpts()...)
		for i := 0; ; i++ {
			n, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("error decoding object %d: %w", i, err)
			}
			if err := f("-", n); err != nil {
				return err
			}
		}
	}
	for _, file := range files {
		n, err := getObjFile(in, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(file, n); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) write(w io.Writer, n *ir.Node, opts ...encode.EncodeOption) error {
	opts = append(cfg.encOpts(w), opts...)
	if err := encode.Encode(n, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
