package parse

type parseOpts struct {
	strict   bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// Strict makes Parse reject input with anything but whitespace after
// the first complete value.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// MaxDepth bounds container nesting.  The default is 512.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{maxDepth: 512}
	for _, f := range opts {
		f(res)
	}
	return res
}
