package gomap

import (
	"errors"
	"math"
	"testing"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func doc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "z", Val: ir.FromString(`a "quoted" 100%`)},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5), ir.Null(), ir.FromBool(true)})},
		{Key: "u", Val: ir.FromUint64(math.MaxUint64)},
		{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "x/y", Val: ir.FromDouble(3, 2)}})},
	})
}

func TestToAny(t *testing.T) {
	want := map[string]any{
		"z": `a "quoted" 100%`,
		"a": []any{int64(1), 2.5, nil, true},
		"u": uint64(math.MaxUint64),
		"m": map[string]any{"x/y": 3.0},
	}
	if diff := cmp.Diff(want, ToAny(doc())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	ord, ok := ToOrdered(doc()).(yaml.MapSlice)
	if !ok {
		t.Fatalf("got %T", ToOrdered(doc()))
	}
	keys := []string{}
	for _, item := range ord {
		keys = append(keys, item.Key.(string))
	}
	if diff := cmp.Diff([]string{"z", "a", "u", "m"}, keys); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	n, err := FromAny(map[string]any{
		"b":   int8(-3),
		"a":   []uint16{1, 2},
		"c":   nil,
		"s/t": "x",
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "s/t"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if w := n.Get("b").Int.Width(); w != ir.Width8 {
		t.Errorf("width %d", w)
	}
	if !n.Get("a").At(1).Int.Unsigned() || n.Get("a").At(1).Int.Width() != ir.Width16 {
		t.Error("uint16 element lost width")
	}
	if !n.Get("c").IsNull() {
		t.Error("nil")
	}

	_, err = FromAny(make(chan int))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("chan: %v", err)
	}
	_, err = FromAny(map[string]any{"f": func() {}})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("func: %v", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := doc()
	d, err := MarshalYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !out.Equal(in) {
		t.Errorf("round trip mismatch:\n%s", d)
	}
	if diff := cmp.Diff(in.Keys(), out.Keys()); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if out.Get("a").At(0).Int.Unsigned() {
		t.Error("small integers should read back signed")
	}
	empty, err := UnmarshalYAML([]byte("  \n"))
	if err != nil || !empty.IsNull() {
		t.Errorf("empty: %v %v", empty, err)
	}
}

func TestMarshalJSON(t *testing.T) {
	d, err := MarshalJSON(doc())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":"a \"quoted\" 100%","a":[1,2.5,null,true],"u":18446744073709551615,"m":{"x/y":3.0}}`
	if string(d) != want {
		t.Errorf("got %s", d)
	}
	out, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Get("m").Get("x/y").IsDouble() {
		t.Error("3.0 should read back as a Double")
	}
	if _, err := MarshalJSON(ir.FromFloat(math.Inf(1))); !errors.Is(err, ErrUnsupported) {
		t.Errorf("inf: %v", err)
	}
}

func TestApplyMergePatch(t *testing.T) {
	target := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("b")},
		{Key: "c", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "d", Val: ir.FromString("e")},
			{Key: "f", Val: ir.FromString("g")},
		})},
	})
	patch := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("z")},
		{Key: "c", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "f", Val: ir.Null()}})},
	})
	got, err := ApplyMergePatch(target, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("z")},
		{Key: "c", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "d", Val: ir.FromString("e")}})},
	})
	if !got.Equal(want) {
		t.Errorf("got %v", ToAny(got))
	}
	if target.Get("a").Text() != "b" {
		t.Error("target modified")
	}
}

func TestApplyPatch(t *testing.T) {
	target := ir.FromKeyVals([]ir.KeyVal{
		{Key: "list", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
	})
	ops := []byte(`[{"op":"add","path":"/list/1","value":9},{"op":"add","path":"/n","value":"x"}]`)
	got, err := ApplyPatch(target, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"list": []any{int64(1), int64(9), int64(2)},
		"n":    "x",
	}
	if diff := cmp.Diff(want, ToAny(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ApplyPatch(target, []byte(`{`)); err == nil {
		t.Error("expected error for bad patch")
	}
}
