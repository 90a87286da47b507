package ir

import (
	"errors"
	"math"
	"testing"
)

func TestIntegerSaturation(t *testing.T) {
	tests := []struct {
		name string
		in   Integer
		op   Op
		x    int64
		want string
	}{
		{"int8 add clamps", NewInt(127, Width8), OpAdd, 5, "127"},
		{"int8 sub clamps", NewInt(-120, Width8), OpSub, 100, "-128"},
		{"int16 mul clamps", NewInt(1000, Width16), OpMul, 1000, "32767"},
		{"int32 in range", NewInt(10, Width32), OpAdd, 5, "15"},
		{"int64 add clamps", NewInt(math.MaxInt64, Width64), OpAdd, 1, "9223372036854775807"},
		{"int64 sub clamps", NewInt(math.MinInt64, Width64), OpSub, 1, "-9223372036854775808"},
		{"uint8 add clamps", NewUint(250, Width8), OpAdd, 10, "255"},
		{"uint8 sub floors", NewUint(3, Width8), OpSub, 10, "0"},
		{"uint64 add clamps", NewUint(math.MaxUint64, Width64), OpAdd, 1, "18446744073709551615"},
		{"div truncates", NewInt(-7, Width32), OpDiv, 2, "-3"},
		{"div min by -1", NewInt(math.MinInt64, Width64), OpDiv, -1, "9223372036854775807"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Do(tt.op, NewInt(tt.x, Width64))
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
			if got.Width() != tt.in.Width() || got.Unsigned() != tt.in.Unsigned() {
				t.Errorf("width/sign changed: %d/%v", got.Width(), got.Unsigned())
			}
		})
	}
}

func TestIntegerDivideByZero(t *testing.T) {
	i := NewInt(9, Width16)
	got, err := i.Do(OpDiv, NewInt(0, Width8))
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
	if got != i {
		t.Errorf("value changed on error: %s", got)
	}
}

func TestIntegerConstructorsClamp(t *testing.T) {
	if got := NewInt(300, Width8).Int64(); got != 127 {
		t.Errorf("NewInt(300, 1) = %d", got)
	}
	if got := NewUint(70000, Width16).Uint64(); got != 65535 {
		t.Errorf("NewUint(70000, 2) = %d", got)
	}
	if got := NewInt(5, Width(3)).Width(); got != Width64 {
		t.Errorf("invalid width normalized to %d", got)
	}
	if got := NewInt(-1, Width8).Convert(Width8, true).Uint64(); got != 0 {
		t.Errorf("convert -1 to unsigned = %d", got)
	}
}

func TestIntegerCmpAcrossWidths(t *testing.T) {
	if NewInt(5, Width8).Cmp(NewUint(5, Width64)) != 0 {
		t.Error("5 != 5 across widths")
	}
	if NewInt(-1, Width64).Cmp(NewUint(math.MaxUint64, Width64)) >= 0 {
		t.Error("-1 >= MaxUint64")
	}
}

func TestNodeDo(t *testing.T) {
	n := FromInt8(127)
	if err := n.Add(5); err != nil {
		t.Fatal(err)
	}
	if n.Int.Int64() != 127 {
		t.Errorf("127 += 5 gave %d", n.Int.Int64())
	}
	d := FromFloat(1.5)
	if err := d.Do(OpMul, FromInt(2)); err != nil {
		t.Fatal(err)
	}
	if d.Double.Value != 3 {
		t.Errorf("1.5 * 2 gave %v", d.Double.Value)
	}
	if err := d.Div(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("double divide by zero: %v", err)
	}
	if err := FromString("x").Add(1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("string add: %v", err)
	}
}
