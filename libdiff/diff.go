package libdiff

import (
	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/ir"
)

// DefaultNameKey is the name key used by the command line tools.
const DefaultNameKey = "name"

// Diff returns a new tree holding the entries of to that are added or
// changed relative to from, or nil when there are none.  Entries only
// in from are not reported.
//
// A scalar in to is first coerced toward the type of the scalar it
// replaces, so Diff is not symmetric: against a Boolean the String
// "0" is false and reports no change.  Container values recurse when
// both sides are the same kind of container and are reported whole
// otherwise.  Array elements that are Maps holding a String under
// nameKey are matched by that name and reported whole when changed;
// other elements are compared by position.  An empty nameKey disables
// matching by name.
//
// The result never shares nodes with from or to.
func Diff(from, to *ir.Node, nameKey string) *ir.Node {
	if to == nil {
		return nil
	}
	if from == nil {
		return to.Clone()
	}
	var res *ir.Node
	switch {
	case from.IsMap() && to.IsMap():
		res = diffMap(from, to, nameKey)
	case from.IsArray() && to.IsArray():
		res = diffArray(from, to, nameKey)
	default:
		res = diffLeaf(from, to)
	}
	if debug.Diff() && res != nil {
		debug.Logf("diff %s -> %s: %s", from, to, res)
	}
	return res
}

func diffMap(from, to *ir.Node, nameKey string) *ir.Node {
	res := ir.NewMap()
	for i, k := range from.Fields {
		v := to.Get(k)
		if v == nil {
			continue
		}
		if d := Diff(from.Values[i], v, nameKey); d != nil {
			res.Put(k, d)
		}
	}
	for i, k := range to.Fields {
		if !from.Has(k) {
			res.Put(k, to.Values[i].Clone())
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func diffArray(from, to *ir.Node, nameKey string) *ir.Node {
	res := ir.NewArray()
	for j, v := range to.Values {
		if name, ok := elemName(v, nameKey); ok {
			old := findNamed(from, nameKey, name)
			if old < 0 || Diff(from.Values[old], v, nameKey) != nil {
				res.Values = append(res.Values, v.Clone())
			}
			continue
		}
		if j >= len(from.Values) {
			res.Values = append(res.Values, v.Clone())
			continue
		}
		old := from.Values[j]
		switch {
		case old.Type != v.Type:
		case v.IsNull():
		case v.IsContainer():
			if Diff(old, v, nameKey) != nil {
				res.Values = append(res.Values, v.Clone())
			}
		case !old.Equal(v):
			res.Values = append(res.Values, v.Clone())
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

// elemName returns the decoded name of an array element that is a Map
// holding a String under nameKey.
func elemName(v *ir.Node, nameKey string) (string, bool) {
	if nameKey == "" || !v.IsMap() {
		return "", false
	}
	n := v.Get(nameKey)
	if !n.IsString() {
		return "", false
	}
	return n.Text(), true
}

// findNamed returns the index of the first element of arr named name,
// or -1.
func findNamed(arr *ir.Node, nameKey, name string) int {
	for i, v := range arr.Values {
		if n, ok := elemName(v, nameKey); ok && n == name {
			return i
		}
	}
	return -1
}
