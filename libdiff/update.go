package libdiff

import (
	"fmt"

	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/ir"
)

// Update overwrites target with source in place.
//
// It differs from Merge in three ways.  A Double is assigned through the
// target's precision, so changes inside the rounding band are ignored.
// An array element named under nameKey replaces the target element of
// the same name wholesale instead of merging into it.  A source array
// that is empty, unnamed or mixed replaces the target array wholesale.
func Update(target, source *ir.Node, nameKey string) error {
	if target == nil {
		return fmt.Errorf("%w: update of nil", ir.ErrTypeMismatch)
	}
	if source == nil {
		return nil
	}
	update(target, source, nameKey)
	return nil
}

func update(dst, src *ir.Node, nameKey string) {
	switch {
	case dst.IsMap() && src.IsMap():
		for i, k := range src.Fields {
			v := src.Values[i]
			if d := dst.Get(k); d != nil {
				update(d, v, nameKey)
				continue
			}
			dst.Put(k, v.Clone())
		}
	case dst.IsArray() && src.IsArray():
		if !allNamed(src, nameKey) {
			src.CloneTo(dst)
			return
		}
		for _, v := range src.Values {
			name, _ := elemName(v, nameKey)
			if i := findNamed(dst, nameKey, name); i >= 0 {
				if debug.Merge() {
					debug.Logf("update replace element %q", name)
				}
				dst.Values[i] = v.Clone()
				continue
			}
			dst.Values = append(dst.Values, v.Clone())
		}
	default:
		dst.Assign(src)
	}
}

func allNamed(arr *ir.Node, nameKey string) bool {
	if len(arr.Values) == 0 {
		return false
	}
	for _, v := range arr.Values {
		if _, ok := elemName(v, nameKey); !ok {
			return false
		}
	}
	return true
}
