package ir

import (
	"math"
	"strconv"
)

const (
	// NoPrecision marks a Double whose assigned values are stored verbatim.
	NoPrecision = -1
	// MaxPrecision is the largest precision that enables rounding.
	MaxPrecision = 16

	// UndefinedDouble is returned by ToDouble for values with no numeric
	// reading.
	UndefinedDouble = -999999999.123

	// a new value must move the scaled value by at least this much to be
	// stored.
	hysteresis = 0.75
)

// Double is a float64 with an optional decimal precision.
type Double struct {
	Value     float64
	Precision int
}

// SameDouble reports whether a and b hold the same value.  Unlike ==,
// NaN is the same as NaN.
func SameDouble(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Bounded reports whether d's precision enables rounding with hysteresis.
func (d Double) Bounded() bool {
	return d.Precision >= 0 && d.Precision <= MaxPrecision
}

// Assign sets d to v.  When d is bounded to precision P, v is scaled by
// 10^P and only stored (rounded to P digits) when it differs from the
// scaled current value by at least 0.75; otherwise d is left unchanged.
func (d *Double) Assign(v float64) {
	if !d.Bounded() {
		d.Value = v
		return
	}
	pow := math.Pow(10, float64(d.Precision))
	// explicit conversions keep the products from being fused.
	n := float64(pow * d.Value)
	x := float64(pow * v)
	if t := n - x; t >= hysteresis || t <= -hysteresis {
		d.Value = math.Round(x) / pow
	}
}

// Format renders d with its precision in digits after the decimal point,
// or 10 digits when the precision is not bounded.
func (d Double) Format() string {
	return d.FormatDigits(10)
}

// FormatDigits is like Format but uses def digits for an unbounded
// precision.
func (d Double) FormatDigits(def int) string {
	p := def
	if d.Bounded() {
		p = d.Precision
	}
	return strconv.FormatFloat(d.Value, 'f', p, 64)
}
