// Package query filters value trees with expr-lang expressions.
//
// An expression sees the fields of a Map as variables, decoded to plain
// Go values, and the whole value as it:
//
//	rpm > 1000 && name startsWith "pump"
//	has("limits/max") && path("limits/max") < it.rpm
//
// path(p) returns the value at the FindElement path p, or nil, and
// has(p) reports whether there is one.
package query

import (
	"fmt"
	"maps"
	"sync"

	"github.com/Hertig-family/MicroCPPON/debug"
	"github.com/Hertig-family/MicroCPPON/gomap"
	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression.  It is safe for concurrent
// use.
type Filter struct {
	src     string
	program *vm.Program

	mu  sync.Mutex
	cur *ir.Node
}

// Compile compiles src into a Filter.
func Compile(src string) (*Filter, error) {
	f := &Filter{src: src}
	program, err := expr.Compile(src, f.exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	f.program = program
	return f, nil
}

func (f *Filter) String() string { return f.src }

func (f *Filter) exprOpts() []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.Function("path", func(params ...any) (any, error) {
			res := f.cur.FindElement(params[0].(string))
			if res == nil {
				return nil, nil
			}
			return gomap.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			return f.cur.FindElement(params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
	}
}

// Match reports whether n satisfies the filter.
func (f *Filter) Match(n *ir.Node) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = n
	defer func() { f.cur = nil }()

	out, err := vm.Run(f.program, env(n))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: result %T is not a bool", f.src, out)
	}
	if debug.Path() {
		debug.Logf("filter %q on %s: %v", f.src, n, b)
	}
	return b, nil
}

func env(n *ir.Node) map[string]any {
	v := gomap.ToAny(n)
	res := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		maps.Copy(res, m)
	}
	if _, found := res["it"]; !found {
		res["it"] = v
	}
	return res
}

// Select returns a new Array holding copies of the elements of the
// Array n that match f.
func Select(n *ir.Node, f *Filter) (*ir.Node, error) {
	if !n.IsArray() {
		return nil, fmt.Errorf("%w: select from %s", ir.ErrTypeMismatch, n.Type)
	}
	res := ir.NewArray()
	for _, v := range n.Values {
		ok, err := f.Match(v)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Values = append(res.Values, v.Clone())
		}
	}
	return res, nil
}
