package ir

import "fmt"

// Assign sets n to the value of src.  When both are the same type the
// payload is copied in place: a Double keeps its precision and applies
// rounding with hysteresis, and an Integer takes src's width.  When the
// types differ n becomes a deep copy of src.
func (n *Node) Assign(src *Node) {
	if src == nil {
		return
	}
	if n.Type != src.Type {
		src.CloneTo(n)
		return
	}
	switch n.Type {
	case BoolType:
		n.Bool = src.Bool
	case IntegerType:
		n.Int = src.Int
	case DoubleType:
		n.Double.Assign(src.Double.Value)
	case StringType:
		n.String = src.String
	case NullType:
	default:
		src.CloneTo(n)
	}
}

// AssignFloat assigns v to a Double node with rounding and hysteresis.
func (n *Node) AssignFloat(v float64) error {
	if !n.IsDouble() {
		return fmt.Errorf("%w: assign double to %s", ErrTypeMismatch, n.typeName())
	}
	n.Double.Assign(v)
	return nil
}

// SetDouble stores v in a Double node verbatim, bypassing precision.
func (n *Node) SetDouble(v float64) error {
	if !n.IsDouble() {
		return fmt.Errorf("%w: set double on %s", ErrTypeMismatch, n.typeName())
	}
	n.Double.Value = v
	return nil
}

// SetInt stores v in an Integer node, saturating to its width.
func (n *Node) SetInt(v int64) error {
	if !n.IsInteger() {
		return fmt.Errorf("%w: set integer on %s", ErrTypeMismatch, n.typeName())
	}
	n.Int = NewInt(v, Width64).Convert(n.Int.Width(), n.Int.Unsigned())
	return nil
}

// Do applies n = n op x.  Integer nodes saturate to their width; Double
// nodes store the result with Assign.  x may be any numeric or
// convertible leaf.
func (n *Node) Do(op Op, x *Node) error {
	switch {
	case n.IsInteger():
		var operand Integer
		if x.IsInteger() {
			operand = x.Int
		} else {
			operand = NewInt(x.ToInt64(), Width64)
		}
		res, err := n.Int.Do(op, operand)
		if err != nil {
			return err
		}
		n.Int = res
		return nil
	case n.IsDouble():
		a, b := n.Double.Value, x.ToDouble()
		switch op {
		case OpAdd:
			a += b
		case OpSub:
			a -= b
		case OpMul:
			a *= b
		case OpDiv:
			if b == 0 {
				return ErrDivideByZero
			}
			a /= b
		default:
			return fmt.Errorf("unknown operator %s", op)
		}
		n.Double.Assign(a)
		return nil
	default:
		return fmt.Errorf("%w: %s %s", ErrTypeMismatch, n.typeName(), op)
	}
}

func (n *Node) Add(v int64) error { return n.Do(OpAdd, FromInt(v)) }
func (n *Node) Sub(v int64) error { return n.Do(OpSub, FromInt(v)) }
func (n *Node) Mul(v int64) error { return n.Do(OpMul, FromInt(v)) }
func (n *Node) Div(v int64) error { return n.Do(OpDiv, FromInt(v)) }
