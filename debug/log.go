package debug

import (
	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/ir"
)

type Node struct{ *ir.Node }

func (y Node) String() string {
	if y.Node == nil {
		return "<nil>"
	}
	s, err := encode.String(y.Node, encode.EncodeFormat(format.CompactFormat))
	if err != nil {
		return "[raw *ir.Node] " + y.Node.Type.String()
	}
	return s
}

// Logf logs msg at debug level, rendering *ir.Node arguments as compact
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Node{x}
		}
	}
	Log().Debugf(msg, args...)
}
