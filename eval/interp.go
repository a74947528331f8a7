//-----------------------------------------------------------------------------
// Copyright (c) 2026-present golisp authors
//
// This file is part of golisp.
//
// golisp is licensed under the MIT License. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package eval implements the tree-walking evaluator: special-form
// dispatch, the application protocol for functions and macros, and the
// quasiquote engine. It allocates exclusively through a golisp.Heap and
// triggers the collector between top-level forms.
package eval

import (
	"fmt"

	"github.com/dstern-lab/golisp"
)

// Interp is the interpreter context: the heap, counters, and root
// environment are gathered here explicitly rather than as package-level
// globals.
type Interp struct {
	heap  *golisp.Heap
	root  *golisp.Frame
	stack []*golisp.Frame // live call-stack frames, additional GC roots
}

// New creates an interpreter with a fresh heap and an empty root frame.
func New() *Interp {
	heap := golisp.NewHeap()
	root := heap.NewFrame("root", nil)
	return &Interp{heap: heap, root: root}
}

// Heap returns the interpreter's heap.
func (in *Interp) Heap() *golisp.Heap { return in.heap }

// Root returns the root frame, the destination of `define`.
func (in *Interp) Root() *golisp.Frame { return in.root }

// pushFrame registers frame as live for the duration of fn, so the
// collector can root through it even though it's only reachable via the
// Go call stack.
func (in *Interp) pushFrame(frame *golisp.Frame, fn func() golisp.Value) golisp.Value {
	in.stack = append(in.stack, frame)
	res := fn()
	in.stack = in.stack[:len(in.stack)-1]
	return res
}

// EvalTopLevel evaluates one top-level form and then triggers a
// collection if the allocation counter has crossed its threshold.
func (in *Interp) EvalTopLevel(form golisp.Value) golisp.Value {
	res := in.Eval(in.root, form)
	if in.heap.ShouldCollect() {
		roots := append([]*golisp.Frame{in.root}, in.stack...)
		in.heap.Collect(roots...)
	}
	return res
}

// Eval dispatches on the value's variant.
func (in *Interp) Eval(frame *golisp.Frame, v golisp.Value) golisp.Value {
	if v == nil {
		return golisp.Nil()
	}
	switch x := v.(type) {
	case *golisp.Symbol:
		if val, ok := golisp.Lookup(frame, x.Name); ok {
			return val
		}
		return in.heap.NewError(fmt.Sprintf("name error: symbol '%s' is undefined", x.Name))
	case *golisp.Cons:
		if x.IsNil() {
			return x
		}
		return in.evalCons(frame, x)
	default:
		// Numbers, strings, booleans, errors, keywords, nil, and
		// callables are all self-evaluating.
		return v
	}
}

func (in *Interp) evalCons(frame *golisp.Frame, form *golisp.Cons) golisp.Value {
	if sym, ok := golisp.GetSymbol(form.Car); ok {
		if handler, ok := specialForms[sym.Name]; ok {
			return handler(in, frame, form.Cdr)
		}
	}
	return in.evalApplication(frame, form)
}

func (in *Interp) errf(format string, args ...any) golisp.Value {
	return in.heap.NewError(fmt.Sprintf(format, args...))
}
