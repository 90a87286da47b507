package libdiff

import (
	"strings"

	"github.com/Hertig-family/MicroCPPON/ir"
)

// diffLeaf compares candidate against the scalar incumbent and returns
// the candidate, coerced toward the incumbent's type, when it differs.
func diffLeaf(incumbent, candidate *ir.Node) *ir.Node {
	if candidate.IsContainer() || incumbent.IsContainer() {
		return candidate.Clone()
	}
	if candidate.IsNull() {
		if incumbent.IsNull() {
			return nil
		}
		return ir.Null()
	}
	switch incumbent.Type {
	case ir.BoolType:
		r := toBool(candidate)
		if r == incumbent.Bool {
			return nil
		}
		return ir.FromBool(r)

	case ir.DoubleType:
		var r float64
		switch candidate.Type {
		case ir.DoubleType:
			if ir.SameDouble(candidate.Double.Value, incumbent.Double.Value) {
				return nil
			}
			return candidate.Clone()
		case ir.IntegerType:
			r = candidate.Int.Float64()
		case ir.StringType:
			r, _ = ir.ScanFloat(candidate.Text())
		default:
			return candidate.Clone()
		}
		if ir.SameDouble(r, incumbent.Double.Value) {
			return nil
		}
		return ir.FromFloat(r)

	case ir.IntegerType:
		switch candidate.Type {
		case ir.IntegerType:
			if candidate.Int.Cmp(incumbent.Int) == 0 {
				return nil
			}
			return candidate.Clone()
		case ir.StringType:
			v, _ := ir.ScanInt(candidate.Text(), 0)
			if ir.NewInt(v, ir.Width64).Cmp(incumbent.Int) == 0 {
				return nil
			}
			return ir.FromInt(v)
		default:
			return candidate.Clone()
		}

	case ir.StringType:
		if candidate.IsString() && candidate.Text() == incumbent.Text() {
			return nil
		}
		return candidate.Clone()

	default:
		return candidate.Clone()
	}
}

// toBool coerces a scalar for comparison with a Boolean.  Doubles are
// truncated first; strings other than true and false are read as
// decimal integers.
func toBool(n *ir.Node) bool {
	switch n.Type {
	case ir.BoolType:
		return n.Bool
	case ir.IntegerType:
		return !n.Int.IsZero()
	case ir.DoubleType:
		return int64(n.Double.Value) != 0
	case ir.StringType:
		s := n.Text()
		switch {
		case strings.EqualFold(s, "true"):
			return true
		case strings.EqualFold(s, "false"):
			return false
		}
		v, _ := ir.ScanInt(s, 10)
		return v != 0
	}
	return false
}
