package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether n and o are the same type with deeply equal
// payloads.  Integers compare by value across widths, strings by decoded
// text, doubles by value with NaN equal to NaN, and maps by key set
// regardless of key order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case NullType:
		return true
	case BoolType:
		return n.Bool == o.Bool
	case IntegerType:
		return n.Int.Cmp(o.Int) == 0
	case DoubleType:
		return SameDouble(n.Double.Value, o.Double.Value)
	case StringType:
		return n.String == o.String || n.Text() == o.Text()
	case ArrayType:
		if len(n.Values) != len(o.Values) {
			return false
		}
		for i, v := range n.Values {
			if !v.Equal(o.Values[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(n.Fields) != len(o.Fields) {
			return false
		}
		for i, f := range n.Fields {
			if !n.Values[i].Equal(o.Get(f)) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare gives a total order on nodes.  Nodes of different types order by
// type rank: Null < Boolean < numbers < String < Array < Map.  Integers
// and Doubles compare numerically with each other.  Maps compare by their
// sorted keys and then by the values under those keys.  A nil node
// compares as Null.
func Compare(a, b *Node) int {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}
	ra, rb := rank(a.Type), rank(b.Type)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(b2i(a.Bool), b2i(b.Bool))
	case IntegerType, DoubleType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.Text(), b.Text())
	case ArrayType:
		return compareArrays(a, b)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntegerType, DoubleType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case MapType:
		return 5
	}
	return 100
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareNumbers(a, b *Node) int {
	if a.Type == IntegerType && b.Type == IntegerType {
		return a.Int.Cmp(b.Int)
	}
	return cmp.Compare(a.ToDouble(), b.ToDouble())
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Node) int {
	ka := slices.Sorted(slices.Values(a.Fields))
	kb := slices.Sorted(slices.Values(b.Fields))
	minLen := min(len(ka), len(kb))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(ka[i]), b.Get(kb[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}
