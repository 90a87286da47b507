package query

import (
	"errors"
	"testing"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestMatch(t *testing.T) {
	doc := mustParse(t, `{"name": "pump %231", "rpm": 1200, "temp": 41.5, "on": true,
		"limits": {"max": 1500}, "tags": ["a", "b"]}`)
	tests := []struct {
		src  string
		want bool
	}{
		{`rpm > 1000`, true},
		{`rpm > 1000 && temp < 40`, false},
		{`name == "pump #1"`, true},
		{`name startsWith "pump"`, true},
		{`on`, true},
		{`"b" in tags`, true},
		{`limits.max == 1500`, true},
		{`path("limits/max") > rpm`, true},
		{`has("limits/max") && !has("limits/min")`, true},
		{`path("tags:1") == "b"`, true},
		{`missing == nil`, true},
		{`it.rpm == 1200`, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.Match(doc)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestMatchScalar(t *testing.T) {
	f, err := Compile(`it > 3`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.Match(ir.FromInt(5))
	if err != nil || !got {
		t.Errorf("got %v %v", got, err)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`rpm >`); err == nil {
		t.Error("expected a compile error")
	}
	if _, err := Compile(`1 + 2`); err == nil {
		t.Error("expected a non bool expression to be rejected")
	}
}

func TestSelect(t *testing.T) {
	arr := mustParse(t, `[{"name": "pump", "rpm": 1200}, {"name": "fan", "rpm": 90}, {"name": "fan2", "rpm": 300}]`)
	f, err := Compile(`rpm >= 300`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(arr, f)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.CompactJSON(got); s != `[{"name":"pump","rpm":1200},{"name":"fan2","rpm":300}]` {
		t.Errorf("got %s", s)
	}
	if got.At(0) == arr.At(0) {
		t.Error("Select shares nodes with its input")
	}
	if _, err := Select(ir.NewMap(), f); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}
