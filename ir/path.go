package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// A path is a sequence of map keys separated by '/'.  Each key may be
// followed by one or more ":N" suffixes selecting element N of an array,
// so "x:1/y" is field y of the second element of array x and "m:0:2"
// is the third element of the first element of m.

// FindElement resolves path against a Map and returns the node found (not
// a copy), or nil when any segment is missing, an index is out of range or
// a segment is applied to a node of the wrong type.
func (n *Node) FindElement(path string) *Node {
	return n.find(path, false)
}

// FindCaseElement is FindElement with keys matched ignoring case.
func (n *Node) FindCaseElement(path string) *Node {
	return n.find(path, true)
}

func (n *Node) find(path string, fold bool) *Node {
	if !n.IsMap() {
		return nil
	}
	seg, rest, _ := strings.Cut(path, "/")
	key, idxs, err := splitIndex(seg)
	if err != nil {
		return nil
	}
	var v *Node
	if fold {
		v = n.FindCase(key)
	} else {
		v = n.Get(key)
	}
	for _, i := range idxs {
		v = v.At(i)
	}
	if v == nil || rest == "" {
		return v
	}
	return v.find(rest, fold)
}

// splitIndex splits "key:1:2" into "key" and [1 2].
func splitIndex(seg string) (string, []int, error) {
	key, idx, found := strings.Cut(seg, ":")
	if !found {
		return seg, nil, nil
	}
	parts := strings.Split(idx, ":")
	res := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return "", nil, fmt.Errorf("%w: bad index %q in %q", ErrBadPath, p, seg)
		}
		res[i] = v
	}
	return key, res, nil
}

// Append adds v to a Map under key and takes ownership of v.
//
// A key without '/' replaces any existing entry of that name; the new
// entry goes to the end of the key order.  A key with '/' is split at the
// first '/': the head is resolved with FindElement and created as an empty
// Map when missing, then the remainder is appended to it.  When the head
// resolves to an Array, v is pushed onto the array and the remainder is
// ignored.
func (n *Node) Append(key string, v *Node) error {
	if !n.IsMap() {
		return fmt.Errorf("%w: append %q to %s", ErrTypeMismatch, key, n.typeName())
	}
	head, rest, found := strings.Cut(key, "/")
	if !found {
		n.Put(key, v)
		return nil
	}
	c := n.FindElement(head)
	if c == nil {
		if strings.Contains(head, ":") {
			return fmt.Errorf("%w: no array element at %q", ErrBadPath, head)
		}
		c = NewMap()
		n.Put(head, c)
	}
	switch c.Type {
	case MapType:
		return c.Append(rest, v)
	case ArrayType:
		c.Values = append(c.Values, v)
		return nil
	default:
		return fmt.Errorf("%w: %q is %s", ErrTypeMismatch, head, c.Type)
	}
}

// Set stores v at path, replacing the node there in place so that map
// entries keep their position.  Missing intermediate maps are created as
// with Append.  A final ":N" segment replaces an existing array element.
func (n *Node) Set(path string, v *Node) error {
	if !n.IsMap() {
		return fmt.Errorf("%w: set %q on %s", ErrTypeMismatch, path, n.typeName())
	}
	parent, last := n, path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		last = path[i+1:]
		parent = n.FindElement(path[:i])
		if parent == nil {
			if strings.Contains(last, ":") {
				return fmt.Errorf("%w: no array at %q", ErrBadPath, path)
			}
			return n.Append(path, v)
		}
	}
	key, idxs, err := splitIndex(last)
	if err != nil {
		return err
	}
	if len(idxs) == 0 {
		switch parent.Type {
		case MapType:
			if !parent.Replace(key, v) {
				parent.Put(key, v)
			}
			return nil
		case ArrayType:
			parent.Values = append(parent.Values, v)
			return nil
		default:
			return fmt.Errorf("%w: %q is %s", ErrTypeMismatch, path, parent.Type)
		}
	}
	arr := parent.Get(key)
	for _, i := range idxs[:len(idxs)-1] {
		arr = arr.At(i)
	}
	if !arr.ReplaceAt(idxs[len(idxs)-1], v) {
		return fmt.Errorf("%w: no array element at %q", ErrBadPath, path)
	}
	return nil
}

// FindEqual searches a Map depth first, in key order, for an entry named
// name whose value equals search, descending into nested maps and the
// maps held in arrays.  It returns the matching value or nil.
func (n *Node) FindEqual(name string, search *Node) *Node {
	switch n.Type {
	case MapType:
		for i, f := range n.Fields {
			v := n.Values[i]
			if f == name && v.Equal(search) {
				return v
			}
			if res := v.FindEqual(name, search); res != nil {
				return res
			}
		}
	case ArrayType:
		for _, v := range n.Values {
			if res := v.FindEqual(name, search); res != nil {
				return res
			}
		}
	}
	return nil
}
