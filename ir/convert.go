package ir

import (
	"math"
	"strconv"
	"strings"
)

// Text returns the decoded text of a String node or the canonical
// rendering of any other leaf.  Containers yield "".
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case StringType:
		return Unescape(n.String)
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case IntegerType:
		return n.Int.String()
	case DoubleType:
		return n.Double.Format()
	case NullType:
		return "null"
	default:
		return ""
	}
}

// ToInt64 converts a leaf to an int64.  Strings are read like C strtol
// with base 0: an optional sign followed by decimal, 0x hex or 0 octal
// digits, ignoring anything after them.
func (n *Node) ToInt64() int64 {
	if n == nil {
		return 0
	}
	switch n.Type {
	case IntegerType:
		return n.Int.Int64()
	case DoubleType:
		return int64(n.Double.Value)
	case BoolType:
		if n.Bool {
			return 1
		}
		return 0
	case StringType:
		v, _ := ScanInt(n.Text(), 0)
		return v
	default:
		return 0
	}
}

// ToDouble converts a leaf to a float64.  Values with no numeric reading
// give UndefinedDouble.
func (n *Node) ToDouble() float64 {
	if n == nil {
		return UndefinedDouble
	}
	switch n.Type {
	case DoubleType:
		return n.Double.Value
	case IntegerType:
		return n.Int.Float64()
	case BoolType:
		if n.Bool {
			return 1
		}
		return 0
	case StringType:
		v, _ := ScanFloat(n.Text())
		return v
	default:
		return UndefinedDouble
	}
}

// ToBool converts a leaf to a bool.  A String is true only when it reads
// "true" in any case.
func (n *Node) ToBool() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case BoolType:
		return n.Bool
	case IntegerType:
		return !n.Int.IsZero()
	case DoubleType:
		return n.Double.Value != 0
	case StringType:
		return strings.EqualFold(n.Text(), "true")
	default:
		return false
	}
}

// Truth reports whether n is "truthy": non empty containers and strings,
// non zero numbers and true.
func Truth(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case MapType, ArrayType:
		return len(n.Values) != 0
	case StringType:
		return n.String != ""
	case IntegerType:
		return !n.Int.IsZero()
	case DoubleType:
		return n.Double.Value != 0
	case BoolType:
		return n.Bool
	default:
		return false
	}
}

// GuessType classifies text: true and false in any case are BoolType,
// digits are IntegerType, digits with a single '.' are DoubleType, the
// empty string is NullType and anything else is StringType.  A leading
// sign is allowed on numbers.
func GuessType(text string) Type {
	if text == "" {
		return NullType
	}
	if strings.EqualFold(text, "true") || strings.EqualFold(text, "false") {
		return BoolType
	}
	s := text
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return StringType
	}
	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			dots++
			if dots > 1 {
				return StringType
			}
		case '0' <= c && c <= '9':
			digits++
		default:
			return StringType
		}
	}
	if digits == 0 {
		return StringType
	}
	if dots == 1 {
		return DoubleType
	}
	return IntegerType
}

// FromGuess returns a node of the type GuessType gives for text.
func FromGuess(text string) *Node {
	switch GuessType(text) {
	case NullType:
		return Null()
	case BoolType:
		return FromBool(strings.EqualFold(text, "true"))
	case IntegerType:
		v, _ := ScanInt(text, 10)
		return FromInt(v)
	case DoubleType:
		v, _ := ScanFloat(text)
		return FromFloat(v)
	default:
		return FromString(text)
	}
}

// ScanInt reads an integer prefix of s the way C strtoll does and returns
// its value and the number of bytes consumed.  base 0 selects 16 for a 0x
// prefix, 8 for a leading 0 and 10 otherwise.  Out of range values
// saturate.  n is 0 when no digits are found.
func ScanInt(s string, base int) (v int64, n int) {
	acc, neg, over, n := scanDigits(s, base)
	switch {
	case n == 0:
		return 0, 0
	case neg && (over || acc > 1<<63):
		return math.MinInt64, n
	case neg:
		return -int64(acc), n
	case over || acc > math.MaxInt64:
		return math.MaxInt64, n
	}
	return int64(acc), n
}

// ScanInteger is ScanInt for values that may not fit an int64.  Unsigned
// text above math.MaxInt64 gives an unsigned 8 byte Integer, saturating
// at math.MaxUint64; everything else gives a signed 8 byte Integer.
func ScanInteger(s string, base int) (Integer, int) {
	acc, neg, over, n := scanDigits(s, base)
	if n != 0 && !neg && (over || acc > math.MaxInt64) {
		if over {
			acc = math.MaxUint64
		}
		return NewUint(acc, Width64), n
	}
	v, n := ScanInt(s, base)
	return NewInt(v, Width64), n
}

func scanDigits(s string, base int) (acc uint64, neg, over bool, n int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if (base == 0 || base == 16) && i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && i+2 < len(s) && isDigit(s[i+2], 16) {
		base = 16
		i += 2
	} else if base == 0 {
		base = 10
		if i < len(s) && s[i] == '0' {
			base = 8
		}
	}
	start := i
	for i < len(s) && isDigit(s[i], base) {
		d, _ := unhex(s[i])
		if acc > (math.MaxUint64-uint64(d))/uint64(base) {
			over = true
		} else {
			acc = acc*uint64(base) + uint64(d)
		}
		i++
	}
	if i == start {
		return 0, false, false, 0
	}
	return acc, neg, over, i
}

// ScanFloat reads a decimal floating point prefix of s the way C strtod
// does and returns its value and the number of bytes consumed.
func ScanFloat(s string) (v float64, n int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i], 10) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i], 10) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j], 10) {
			for j < len(s) && isDigit(s[j], 10) {
				j++
			}
			i = j
		}
	}
	// the prefix is well formed, so the only possible error is a range
	// error, for which ParseFloat still returns the saturated value.
	f, _ := strconv.ParseFloat(s[start:i], 64)
	return f, i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte, base int) bool {
	d, ok := unhex(c)
	return ok && int(d) < base
}
