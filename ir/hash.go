package ir

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the node.  Nodes that are Equal hash to
// the same value; the hash is stable across processes.  A nil node
// hashes as Null.
func (n *Node) Hash() uint64 {
	if n == nil {
		n = Null()
	}
	h := xxhash.New()
	n.hashTo(h)
	return h.Sum64()
}

func (n *Node) hashTo(h *xxhash.Digest) {
	var b [8]byte
	h.Write([]byte{byte(n.Type)})

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case IntegerType:
		h.WriteString(n.Int.String())
	case DoubleType:
		v := n.Double.Value
		switch {
		case v == 0:
			v = 0 // -0 == 0
		case math.IsNaN(v):
			v = math.NaN()
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.Text())
	case ArrayType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapType:
		// key order does not take part in equality, so entries are
		// combined with a commutative sum.
		var sum uint64
		for i, f := range n.Fields {
			eh := xxhash.New()
			eh.WriteString(f)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
}
