package ir

import (
	"fmt"
	"math/big"
	"strconv"
)

// Width is the declared storage width of an Integer in bytes.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

func (w Width) Bits() int { return int(w) * 8 }

// Op is an arithmetic operator applied by Integer.Do and Node.Do.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Integer is a fixed width, signed or unsigned integer.  Arithmetic on an
// Integer is carried out exactly and the result saturates to the range of
// the receiver's width and signedness.
type Integer struct {
	bits     uint64
	width    Width
	unsigned bool
}

// NewInt returns a signed Integer of width w holding v clamped to the
// range of w.  An invalid width is taken as Width64.
func NewInt(v int64, w Width) Integer {
	if !w.Valid() {
		w = Width64
	}
	return clamp(big.NewInt(v), w, false)
}

// NewUint returns an unsigned Integer of width w holding v clamped to the
// range of w.
func NewUint(v uint64, w Width) Integer {
	if !w.Valid() {
		w = Width64
	}
	return clamp(new(big.Int).SetUint64(v), w, true)
}

func (i Integer) Width() Width {
	if i.width == 0 {
		return Width64
	}
	return i.width
}

func (i Integer) Unsigned() bool { return i.unsigned }

// Int64 returns the value as an int64.  Unsigned values above
// math.MaxInt64 saturate.
func (i Integer) Int64() int64 {
	if i.unsigned {
		if i.bits > 1<<63-1 {
			return 1<<63 - 1
		}
		return int64(i.bits)
	}
	return int64(i.bits)
}

// Uint64 returns the value as a uint64.  Negative values saturate to 0.
func (i Integer) Uint64() uint64 {
	if !i.unsigned && int64(i.bits) < 0 {
		return 0
	}
	return i.bits
}

func (i Integer) IsZero() bool { return i.bits == 0 }

func (i Integer) Float64() float64 {
	if i.unsigned {
		return float64(i.bits)
	}
	return float64(int64(i.bits))
}

func (i Integer) String() string {
	if i.unsigned {
		return strconv.FormatUint(i.bits, 10)
	}
	return strconv.FormatInt(int64(i.bits), 10)
}

// Cmp compares the numeric values of i and x regardless of width.
func (i Integer) Cmp(x Integer) int {
	return i.big().Cmp(x.big())
}

// Do returns the result of i op x saturated to the width and signedness
// of i.  Division truncates toward zero.
func (i Integer) Do(op Op, x Integer) (Integer, error) {
	a, b := i.big(), x.big()
	switch op {
	case OpAdd:
		a.Add(a, b)
	case OpSub:
		a.Sub(a, b)
	case OpMul:
		a.Mul(a, b)
	case OpDiv:
		if b.Sign() == 0 {
			return i, ErrDivideByZero
		}
		a.Quo(a, b)
	default:
		return i, fmt.Errorf("unknown operator %s", op)
	}
	return clamp(a, i.Width(), i.unsigned), nil
}

// Convert returns i re-expressed at width w and the given signedness,
// saturating if it does not fit.
func (i Integer) Convert(w Width, unsigned bool) Integer {
	if !w.Valid() {
		w = Width64
	}
	return clamp(i.big(), w, unsigned)
}

func (i Integer) big() *big.Int {
	if i.unsigned {
		return new(big.Int).SetUint64(i.bits)
	}
	return big.NewInt(int64(i.bits))
}

func bounds(w Width, unsigned bool) (lo, hi *big.Int) {
	one := big.NewInt(1)
	if unsigned {
		hi = new(big.Int).Lsh(one, uint(w.Bits()))
		return new(big.Int), hi.Sub(hi, one)
	}
	hi = new(big.Int).Lsh(one, uint(w.Bits()-1))
	lo = new(big.Int).Neg(hi)
	return lo, hi.Sub(hi, one)
}

func clamp(v *big.Int, w Width, unsigned bool) Integer {
	lo, hi := bounds(w, unsigned)
	if v.Cmp(lo) < 0 {
		v = lo
	} else if v.Cmp(hi) > 0 {
		v = hi
	}
	res := Integer{width: w, unsigned: unsigned}
	if unsigned {
		res.bits = v.Uint64()
	} else {
		res.bits = uint64(v.Int64())
	}
	return res
}
