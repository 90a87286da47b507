package ir

import (
	"errors"
	"testing"
)

func pathDoc() *Node {
	// {"x":[{"y":1},{"y":2}],"m":{"Inner":{"v":"deep"}},"grid":[[1,2],[3,4]],"s":"str"}
	return FromKeyVals([]KeyVal{
		{Key: "x", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(2)}}),
		})},
		{Key: "m", Val: FromKeyVals([]KeyVal{
			{Key: "Inner", Val: FromKeyVals([]KeyVal{{Key: "v", Val: FromString("deep")}})},
		})},
		{Key: "grid", Val: FromSlice([]*Node{
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(3), FromInt(4)}),
		})},
		{Key: "s", Val: FromString("str")},
	})
}

func TestFindElement(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want *Node
	}{
		{"x:1/y", FromInt(2)},
		{"x:0/y", FromInt(1)},
		{"m/Inner/v", FromString("deep")},
		{"grid:1:0", FromInt(3)},
		{"grid:0:1", FromInt(2)},
		{"s", FromString("str")},
		{"x:2/y", nil},
		{"x:1/z", nil},
		{"missing", nil},
		{"m/inner/v", nil},
		{"s/deeper", nil},
		{"x:a", nil},
		{"x:-1", nil},
	}
	for _, tt := range tests {
		got := doc.FindElement(tt.path)
		if tt.want == nil {
			if got != nil {
				t.Errorf("%q: expected nil, got %s", tt.path, got.Type)
			}
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%q: got %v", tt.path, got)
		}
	}
}

func TestFindElementReturnsNode(t *testing.T) {
	doc := pathDoc()
	n := doc.FindElement("x:1/y")
	n.Int = NewInt(42, Width64)
	if doc.FindElement("x:1/y").Int.Int64() != 42 {
		t.Error("FindElement returned a copy")
	}
}

func TestFindCaseElement(t *testing.T) {
	doc := pathDoc()
	if got := doc.FindCaseElement("M/inner/V"); !got.Equal(FromString("deep")) {
		t.Errorf("got %v", got)
	}
	if got := doc.FindCaseElement("X:1/Y"); !got.Equal(FromInt(2)) {
		t.Errorf("got %v", got)
	}
}

func TestAppendPath(t *testing.T) {
	m := NewMap()
	v := FromString("v")
	if err := m.Append("a/b/c", v); err != nil {
		t.Fatal(err)
	}
	if got := m.FindElement("a/b/c"); got != v {
		t.Errorf("append/find mismatch: %v", got)
	}
	if !m.Get("a").IsMap() || !m.Get("a").Get("b").IsMap() {
		t.Error("intermediate maps not created")
	}

	if err := m.Append("list", NewArray()); err != nil {
		t.Fatal(err)
	}
	if err := m.Append("list/ignored", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if m.Get("list").Len() != 1 || !m.Get("list").At(0).Equal(FromInt(1)) {
		t.Error("append through array")
	}

	if err := m.Append("s", FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := m.Append("s/t", FromInt(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("append through scalar: %v", err)
	}
	if err := FromSlice(nil).Append("a", Null()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("append on array: %v", err)
	}
}

func TestSetPath(t *testing.T) {
	doc := pathDoc()
	if err := doc.Set("x:1/y", FromInt(7)); err != nil {
		t.Fatal(err)
	}
	if !doc.FindElement("x:1/y").Equal(FromInt(7)) {
		t.Error("set x:1/y")
	}
	if err := doc.Set("grid:1:1", FromString("four")); err != nil {
		t.Fatal(err)
	}
	if !doc.FindElement("grid:1:1").Equal(FromString("four")) {
		t.Error("set grid:1:1")
	}
	if err := doc.Set("x", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if doc.Keys()[0] != "x" {
		t.Error("set moved key")
	}
	if err := doc.Set("new/deep", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if !doc.FindElement("new/deep").Equal(FromInt(1)) {
		t.Error("set created path")
	}
	if err := doc.Set("grid:9:0", FromInt(1)); !errors.Is(err, ErrBadPath) {
		t.Errorf("set out of range: %v", err)
	}
}

func TestFindEqual(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("top")},
		{Key: "kids", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("a")}, {Key: "v", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("b")}, {Key: "v", Val: FromInt(2)}}),
		})},
	})
	got := doc.FindEqual("v", FromInt(2))
	if got == nil || !got.Equal(FromInt(2)) {
		t.Fatalf("got %v", got)
	}
	if doc.FindEqual("v", FromString("2")) != nil {
		t.Error("type must match")
	}
	if doc.FindEqual("name", FromString("top")) != doc.Get("name") {
		t.Error("top level match")
	}
}
