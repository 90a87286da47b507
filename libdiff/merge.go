package libdiff

import (
	"fmt"

	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/ir"
)

// Merge upserts source into target in place.
//
// Scalars of the same type are set; a Double takes the source value
// verbatim, without the target's rounding.  A value of a different type,
// including Null, replaces the target value with a copy.  Maps merge
// key by key and keys missing from target are appended.  Arrays are
// merged as sets: elements that are Maps named under nameKey merge into
// the target element of the same name, or are appended when there is
// none, and other elements are appended unless target already holds an
// equal one.
//
// target never shares nodes with source afterwards.
func Merge(target, source *ir.Node, nameKey string) error {
	if target == nil {
		return fmt.Errorf("%w: merge into nil", ir.ErrTypeMismatch)
	}
	if source == nil {
		return nil
	}
	merge(target, source, nameKey)
	return nil
}

func merge(dst, src *ir.Node, nameKey string) {
	switch {
	case dst.IsMap() && src.IsMap():
		for i, k := range src.Fields {
			v := src.Values[i]
			d := dst.Get(k)
			if d == nil {
				if debug.Merge() {
					debug.Logf("merge add %q: %s", k, v)
				}
				dst.Put(k, v.Clone())
				continue
			}
			merge(d, v, nameKey)
		}
	case dst.IsArray() && src.IsArray():
		mergeArray(dst, src, nameKey)
	case dst.Type != src.Type:
		if debug.Merge() {
			debug.Logf("merge replace %s with %s", dst, src)
		}
		src.CloneTo(dst)
	case src.IsDouble():
		_ = dst.SetDouble(src.Double.Value)
	default:
		dst.Assign(src)
	}
}

func mergeArray(dst, src *ir.Node, nameKey string) {
	set := newNodeSet(dst.Values)
	for _, v := range src.Values {
		if name, ok := elemName(v, nameKey); ok {
			if i := findNamed(dst, nameKey, name); i >= 0 {
				merge(dst.Values[i], v, nameKey)
				continue
			}
		} else if set.has(v) {
			continue
		}
		c := v.Clone()
		dst.Values = append(dst.Values, c)
		set.add(c)
	}
}

// nodeSet finds Equal nodes by hash.
type nodeSet map[uint64][]*ir.Node

func newNodeSet(vs []*ir.Node) nodeSet {
	s := nodeSet{}
	for _, v := range vs {
		s.add(v)
	}
	return s
}

func (s nodeSet) add(v *ir.Node) {
	h := v.Hash()
	s[h] = append(s[h], v)
}

func (s nodeSet) has(v *ir.Node) bool {
	for _, x := range s[v.Hash()] {
		if x.Equal(v) {
			return true
		}
	}
	return false
}
