package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5), ir.FromString("x")})},
			{Key: "d", Val: ir.NewMap()},
		})},
		{Key: "e", Val: ir.NewArray()},
	})
}

func TestPrettyJSON(t *testing.T) {
	want := `{
  "a": 1,
  "b": {
    "c": [
      1,
      2.5000000000,
      "x"
    ],
    "d": {}
  },
  "e": []
}`
	if diff := cmp.Diff(want, PrettyJSON(sample())); diff != "" {
		t.Errorf("pretty (-want +got):\n%s", diff)
	}
}

func TestCompactJSON(t *testing.T) {
	want := `{"a":1,"b":{"c":[1,2.5000000000,"x"],"d":{}},"e":[]}`
	if got := CompactJSON(sample()); got != want {
		t.Errorf("got %s", got)
	}
}

func TestLeaves(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		json string
		net  string
	}{
		{"null", ir.Null(), "null", "0:~"},
		{"nil", nil, "null", "0:~"},
		{"true", ir.FromBool(true), "true", "4:true!"},
		{"false", ir.FromBool(false), "false", "5:false!"},
		{"int", ir.FromInt(-42), "-42", "3:-42#"},
		{"int8", ir.FromInt8(-128), "-128", "4:-128#"},
		{"uint64", ir.FromUint64(math.MaxUint64), "18446744073709551615", "20:18446744073709551615#"},
		{"double", ir.FromFloat(1.5), "1.5000000000", "12:1.5000000000^"},
		{"double precision", ir.FromDouble(3.14159, 2), "3.14", "12:3.1415900000^"},
		{"double precision 0", ir.FromDouble(2.6, 0), "3", "12:2.6000000000^"},
		{"string", ir.FromString("hello"), `"hello"`, "5:hello,"},
		{"quoted string", ir.FromString(`a"b`), `"a%22b"`, `3:a"b,`},
		{"empty string", ir.FromString(""), `""`, "0:,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactJSON(tt.in); got != tt.json {
				t.Errorf("json: got %s want %s", got, tt.json)
			}
			if got := NetString(tt.in); got != tt.net {
				t.Errorf("net: got %s want %s", got, tt.net)
			}
		})
	}
}

func TestNetStringContainers(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want string
	}{
		{
			name: "map",
			in: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromString("x")},
			}),
			want: "16:1:a,1:1#1:b,1:x,}",
		},
		{
			name: "nested",
			in: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()})},
				{Key: "b", Val: ir.FromBool(true)},
			}),
			want: "25:1:a,7:1:1#0:~]1:b,4:true!}",
		},
		{"empty map", ir.NewMap(), "0:}"},
		{"empty array", ir.NewArray(), "0:]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetString(tt.in); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestEscapeJSON(t *testing.T) {
	in := ir.FromEscaped("a\"{}<>\\'^&\r\n\a\tz")
	want := `"a%22%7B%7D%3C%3E%5C%60%5E%26%0D%0A%0A z"`
	if got := CompactJSON(in); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if got := EscapeJSON("plain"); got != "plain" {
		t.Errorf("got %s", got)
	}
	if got := CompactJSON(ir.FromString(`say "hi" 50%`)); got != `"say %22hi%22 50%25"` {
		t.Errorf("got %s", got)
	}
}

func TestDump(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "s", Val: ir.FromString("x")}})},
		{Key: "l", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})},
	})
	want := "{\n" +
		"\t\"a\": 1,\n" +
		"\t\"m\": \n" +
		"\t{\n" +
		"\t\t\"s\": \"x\"\n" +
		"\t},\n" +
		"\t\"l\": \n" +
		"\t[\n" +
		"\t\ttrue,\n" +
		"\t\tNULL\n" +
		"\t]\n" +
		"}\n"
	if diff := cmp.Diff(want, Dump(n)); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
	if got := Dump(ir.FromDouble(1.25, 1)); got != "1.2500000000\n" {
		t.Errorf("dump double: %q", got)
	}
}

func TestCDump(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("x")},
		{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "n", Val: ir.FromFloat(1.5)}})},
		{Key: "l", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null(), ir.FromInt(2)})},
		{Key: "z", Val: ir.Null()},
	})
	want := `{\"a\": \"x\",\"m\": "` + "\n" + `"{\"n\": 1.5000000000000000},\"l\": "` + "\n" + `"[1,2],\"z\": null}`
	if diff := cmp.Diff(want, CDump(n)); diff != "" {
		t.Errorf("cdump (-want +got):\n%s", diff)
	}
}

func TestEncodeOptions(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(ir.FromSlice([]*ir.Node{ir.FromInt(1)}), buf, Indent(4), TrailingNewline(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[\n    1\n]\n" {
		t.Errorf("got %q", got)
	}
	if f := FormatFromOpts(EncodeFormat(format.DumpFormat)); f != format.DumpFormat {
		t.Errorf("got %s", f)
	}
	_, err = String(ir.Null(), EncodeFormat(format.Format(99)))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("bad format: %v", err)
	}
}

func TestColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	n := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("100%")}})
	got := MustString(n, EncodeFormat(format.CompactFormat), EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape codes in %q", got)
	}
	if !strings.Contains(got, "100%25") {
		t.Errorf("value text lost in %q", got)
	}
	plain := MustString(n, EncodeFormat(format.NetStringFormat), EncodeColors(NewColors()))
	if plain != "11:1:k,4:100%,}" {
		t.Errorf("net-string must not be colored: %q", plain)
	}
}
