package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/ir"
)

func TestDecoderStream(t *testing.T) {
	in := `{"a":1} [1,2]
16:1:a,1:1#1:b,1:x,} "s\"q"	true 42`
	want := []string{
		`{"a":1}`,
		`[1,2]`,
		`{"a":1,"b":"x"}`,
		`"s%22q"`,
		`true`,
		`42`,
	}
	dec := NewDecoder(strings.NewReader(in))
	for i, w := range want {
		n, err := dec.Decode()
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
		if got := encode.CompactJSON(n); got != w {
			t.Errorf("value %d: got %s want %s", i, got, w)
		}
	}
	if _, err := dec.Decode(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadObj(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"nested", `  [1, {"k": "v"}]  `, arr(ir.FromInt(1), ir.FromKeyVals([]ir.KeyVal{kv("k", ir.FromString("v"))}))},
		{"brace in string", `{"a": "}"}`, ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromString("}"))})},
		{"braces in net-string", `3:{{{,`, ir.FromString("{{{")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadObj(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s", encode.CompactJSON(got))
			}
		})
	}
}

func TestReadObjErrors(t *testing.T) {
	for _, in := range []string{`{"a":1`, `["x`, `10:abc`} {
		if _, err := ReadObj(strings.NewReader(in)); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%q: got %v", in, err)
		}
	}
	if _, err := ReadObj(strings.NewReader("   ")); err != io.EOF {
		t.Errorf("blank: got %v", err)
	}
	if _, err := ReadObj(strings.NewReader(`{"a" 1}`)); !errors.Is(err, ErrParse) {
		t.Errorf("bad value: got %v", err)
	}
}
