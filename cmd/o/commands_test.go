package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/objfile"
	"github.com/Hertig-family/MicroCPPON/parse"
)

const (
	fixtureA = `{"n": 1, "dev": [{"name": "pump", "rpm": 1200, "on": true}], "tags": ["a"]}`
	fixtureB = `{"n": 2, "dev": [{"name": "pump", "rpm": 1300}], "tags": ["a", "b"]}`
)

// writeFixtures writes a.json, b.json and a.tnet into a temp dir and
// returns the dir.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{"a.json": fixtureA, "b.json": fixtureB} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	n, err := parse.Parse([]byte(fixtureA))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.tnet"), []byte(encode.NetString(n)), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func testMain() *MainConfig {
	return &MainConfig{NameKey: "name", Compact: true}
}

func TestGetCommand(t *testing.T) {
	dir := writeFixtures(t)
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	tests := []struct {
		name    string
		args    []string
		in      string
		want    string
		wantErr bool
	}{
		{name: "leaf", args: []string{"dev:0/rpm", a}, want: "1200\n"},
		{name: "container", args: []string{"tags", a, b}, want: "[\"a\"]\n[\"a\",\"b\"]\n"},
		{name: "net string file", args: []string{"dev:0/name", filepath.Join(dir, "a.tnet")}, want: "\"pump\"\n"},
		{name: "stdin stream", args: []string{"n"}, in: fixtureA + "\n" + fixtureB, want: "1\n2\n"},
		{name: "missing", args: []string{"dev:3", a}, wantErr: true},
		{name: "no path", args: nil, wantErr: true},
		{name: "no file", args: []string{"n", filepath.Join(dir, "none.json")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := &GetConfig{MainConfig: testMain()}
			err := runGet(cfg, strings.NewReader(tt.in), out, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", out.String())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestDiffCommand(t *testing.T) {
	dir := writeFixtures(t)
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	tests := []struct {
		name    string
		args    []string
		want    string
		differs bool
	}{
		{
			name:    "differs",
			args:    []string{a, b},
			want:    `{"n":2,"dev":[{"name":"pump","rpm":1300}],"tags":["b"]}` + "\n",
			differs: true,
		},
		{name: "same file", args: []string{a, a}},
		{name: "same across formats", args: []string{a, filepath.Join(dir, "a.tnet")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := &DiffConfig{MainConfig: testMain()}
			err := runDiff(cfg, strings.NewReader(""), out, tt.args)
			if tt.differs != (err != nil) {
				t.Fatalf("differs %t, got err %v", tt.differs, err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
	if err := runDiff(&DiffConfig{MainConfig: testMain()}, strings.NewReader(""), &bytes.Buffer{}, []string{a}); err == nil {
		t.Error("expected usage error for one arg")
	}
}

func TestMergeCommand(t *testing.T) {
	dir := writeFixtures(t)
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	tests := []struct {
		name   string
		update bool
		args   []string
		want   string
	}{
		{
			name: "merge",
			args: []string{a, b},
			want: `{"n":2,"dev":[{"name":"pump","rpm":1300,"on":true}],"tags":["a","b"]}`,
		},
		{
			name:   "update",
			update: true,
			args:   []string{a, b},
			want:   `{"n":2,"dev":[{"name":"pump","rpm":1300}],"tags":["a","b"]}`,
		},
		{
			name: "merge is idempotent",
			args: []string{a, b, b},
			want: `{"n":2,"dev":[{"name":"pump","rpm":1300,"on":true}],"tags":["a","b"]}`,
		},
		{
			name: "target from stdin",
			args: []string{"-", b},
			want: `{"n":2,"dev":[{"name":"pump","rpm":1300,"on":true}],"tags":["a","b"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := &MergeConfig{MainConfig: testMain(), Update: tt.update}
			if err := runMerge(cfg, strings.NewReader(fixtureA), out, tt.args); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tt.want+"\n" {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
	if err := runMerge(&MergeConfig{MainConfig: testMain()}, strings.NewReader(""), &bytes.Buffer{}, []string{a}); err == nil {
		t.Error("expected usage error without sources")
	}
}

func TestNetStringKeyCommand(t *testing.T) {
	dir := writeFixtures(t)
	tnet := filepath.Join(dir, "a.tnet")
	raw, err := os.ReadFile(tnet)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		raw     bool
		args    []string
		in      string
		want    string
		wantErr bool
	}{
		{name: "int", args: []string{"rpm", tnet}, want: "1200\n"},
		{name: "string", args: []string{"name", tnet}, want: "\"pump\"\n"},
		{name: "raw string", raw: true, args: []string{"name", tnet}, want: "pump\n"},
		{name: "container", args: []string{"tags", tnet}, want: "[\"a\"]\n"},
		{name: "stdin", args: []string{"n"}, in: string(raw), want: "1\n"},
		{name: "missing key", args: []string{"volts", tnet}, wantErr: true},
		{name: "no key", args: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := &ProbeConfig{MainConfig: testMain(), Raw: tt.raw}
			err := runProbe(cfg, strings.NewReader(tt.in), out, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", out.String())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestConvertCommand(t *testing.T) {
	dir := writeFixtures(t)
	a := filepath.Join(dir, "a.json")
	want, err := parse.Parse([]byte(fixtureA))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"out.tnet", "out.yaml", "out.json.gz", "out.dump"} {
		t.Run(name, func(t *testing.T) {
			dst := filepath.Join(dir, name)
			cfg := &ConvertConfig{MainConfig: testMain()}
			if err := runConvert(cfg, strings.NewReader(""), &bytes.Buffer{}, []string{a, dst}); err != nil {
				t.Fatal(err)
			}
			got, err := objfile.Load(dst)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("%s: got %s want %s", name, encode.CompactJSON(got), fixtureA)
			}
		})
	}
	t.Run("stdout", func(t *testing.T) {
		out := &bytes.Buffer{}
		f := format.CompactFormat
		cfg := &ConvertConfig{MainConfig: testMain()}
		cfg.OutFormat = &f
		if err := runConvert(cfg, strings.NewReader(""), out, []string{filepath.Join(dir, "a.tnet"), "-"}); err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(out.String()); got != encode.CompactJSON(want) {
			t.Errorf("got %s want %s", got, encode.CompactJSON(want))
		}
	})
	if err := runConvert(&ConvertConfig{MainConfig: testMain()}, strings.NewReader(""), &bytes.Buffer{}, []string{a}); err == nil {
		t.Error("expected usage error for one arg")
	}
}
