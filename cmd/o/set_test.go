package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/parse"
)

func TestSetArgs(t *testing.T) {
	cfg := &SetConfig{MainConfig: &MainConfig{}}
	add := setOptTypeFunc(cfg)
	for _, a := range []string{`a/b=1`, `s=hello`, `l:1={"x": true}`, `f=2.5`} {
		if _, err := add(nil, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	if _, err := add(nil, "novalue"); err == nil {
		t.Error("expected usage error")
	}
	n, err := parse.Parse([]byte(`{"l": [0, 0], "s": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := applySets(n, cfg.Env); err != nil {
		t.Fatal(err)
	}
	got := encode.CompactJSON(n)
	want := `{"l":[0,{"x":true}],"s":"hello","a":{"b":1},"f":2.5000000000}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if err := applySets(n, []setArg{{path: "l:5", val: cfg.Env[0].val}}); err == nil {
		t.Error("expected error setting past the end of an array")
	}
}

func TestGetish(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "patch.json")
	if err := os.WriteFile(p, []byte(`[{"op":"remove","path":"/a"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := getish(false, false, p)
	if err != nil || string(d) != `[{"op":"remove","path":"/a"}]` {
		t.Errorf("file: %q %v", d, err)
	}
	d, err = getish(true, false, p)
	if err != nil || string(d) != p {
		t.Errorf("string: %q %v", d, err)
	}
	d, err = getish(false, false, `{"a":null}`)
	if err != nil || string(d) != `{"a":null}` {
		t.Errorf("literal: %q %v", d, err)
	}
	if _, err := getish(false, true, filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := getish(true, true, p); err == nil {
		t.Error("expected error for -s with -f")
	}
}

func TestNameKeyDefault(t *testing.T) {
	t.Setenv("O_NAME_KEY", "id")
	if got := nameKeyDefault(); got != "id" {
		t.Errorf("got %q", got)
	}
}
