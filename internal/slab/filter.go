package slab

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FilterEnv is the environment a filter expression is evaluated against,
// one survivor at a time.
type FilterEnv struct {
	Address string
	Cache   string
	Caller  string
}

// Filter is a compiled survivor filter.
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles a boolean filter expression, e.g.
//
//	Cache == "kmalloc_64" && Caller contains "vfs"
//
// Compilation fails for invalid syntax and for expressions that do not
// produce a boolean.
func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Match reports whether the entry passes the filter.
func (f *Filter) Match(e Entry) (bool, error) {
	out, err := expr.Run(f.program, FilterEnv{
		Address: e.Address,
		Cache:   e.Cache,
		Caller:  e.Caller,
	})
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: result is not a boolean", f.source)
	}
	return keep, nil
}

// Apply returns the entries passing the filter, preserving their order.
func (f *Filter) Apply(entries []Entry) ([]Entry, error) {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return kept, nil
}
