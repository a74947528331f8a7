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

package eval

import "github.com/dstern-lab/golisp"

// evalApplication implements function/macro application for a
// (f a1 … an) form whose head is not a special form.
func (in *Interp) evalApplication(frame *golisp.Frame, form *golisp.Cons) golisp.Value {
	fnVal, isErr := in.resolveHead(frame, form.Car)
	if isErr {
		return fnVal
	}
	callable, ok := golisp.GetCallable(fnVal)
	if !ok {
		return in.errf("type error: %v is not callable", fnVal)
	}

	rawArgs, properList := golisp.Elements(form.Cdr)
	if !properList {
		return in.errf("syntax error: improper argument list in call")
	}

	var args []golisp.Value
	if callable.IsMacro() {
		// A macro receives its arguments unevaluated.
		args = rawArgs
	} else {
		args = make([]golisp.Value, len(rawArgs))
		for i, a := range rawArgs {
			v := in.Eval(frame, a)
			if golisp.IsError(v) {
				return v
			}
			args[i] = v
		}
	}

	res := in.call(frame, callable, args)
	if callable.IsMacro() {
		// The evaluator (unlike apply/macroexpand) re-evaluates a
		// macro's expansion in the calling environment.
		res = in.Eval(frame, res)
	}
	return res
}

// resolveHead evaluates the head of an application, producing a "name
// error" specifically for an undefined function position.
func (in *Interp) resolveHead(frame *golisp.Frame, head golisp.Value) (golisp.Value, bool) {
	if sym, ok := golisp.GetSymbol(head); ok {
		v, found := golisp.Lookup(frame, sym.Name)
		if !found || golisp.IsNil(v) {
			return in.errf("name error: function '%s' is undefined", sym.Name), true
		}
		return v, false
	}
	v := in.Eval(frame, head)
	if golisp.IsError(v) {
		return v, true
	}
	if golisp.IsNil(v) {
		return in.errf("name error: function is undefined"), true
	}
	return v, false
}

// Apply invokes fn with already-evaluated arguments and never re-evaluates
// a macro's result, matching both the `apply` builtin's contract and
// `macroexpand`'s single dispatch step.
func (in *Interp) Apply(frame *golisp.Frame, fn golisp.Value, args []golisp.Value) golisp.Value {
	callable, ok := golisp.GetCallable(fn)
	if !ok {
		return in.errf("type error: %v is not callable", fn)
	}
	return in.call(frame, callable, args)
}

// call implements rest-parameter collection, then dispatch to a builtin
// or a user-defined activation frame.
func (in *Interp) call(frame *golisp.Frame, c *golisp.Callable, args []golisp.Value) golisp.Value {
	if c.Origin == golisp.OriginBuiltin {
		return c.Fn(in, frame, args)
	}

	bound, errVal := bindParams(in, c, args)
	if errVal != nil {
		return errVal
	}
	callFrame := in.heap.NewFrame(c.Name, c.CapturedEnv)
	for name, val := range bound {
		callFrame.Bind(name, val)
	}
	return in.pushFrame(callFrame, func() golisp.Value {
		return in.Eval(callFrame, c.Body)
	})
}

// bindParams binds positions before rest_index to the matching argument;
// the symbol at rest_index (literally named "&") receives the remaining
// arguments consed into a list; any parameter name listed after
// rest_index is undefined at the language level and is bound to nil.
func bindParams(in *Interp, c *golisp.Callable, args []golisp.Value) (map[string]golisp.Value, golisp.Value) {
	bound := make(map[string]golisp.Value, len(c.Params))
	if !c.HasRest {
		if len(args) != len(c.Params) {
			return nil, in.errf("arity error: %s expects %d argument(s), got %d", displayName(c), len(c.Params), len(args))
		}
		for i, p := range c.Params {
			bound[p.Name] = args[i]
		}
		return bound, nil
	}

	if len(args) < c.RestIndex {
		return nil, in.errf("arity error: %s expects at least %d argument(s), got %d", displayName(c), c.RestIndex, len(args))
	}
	for i := 0; i < c.RestIndex; i++ {
		bound[c.Params[i].Name] = args[i]
	}
	rest := in.heap.NewList(args[c.RestIndex:]...)
	bound[c.Params[c.RestIndex].Name] = rest
	for i := c.RestIndex + 1; i < len(c.Params); i++ {
		bound[c.Params[i].Name] = golisp.Nil()
	}
	return bound, nil
}

func displayName(c *golisp.Callable) string {
	if c.Name == "" {
		return "lambda"
	}
	return c.Name
}

// Macroexpand expands a macro call once (full=false) or repeatedly while
// the head resolves to a macro (full=true), per the `macroexpand-1` and
// `macroexpand` builtins.
func (in *Interp) Macroexpand(frame *golisp.Frame, form golisp.Value, full bool) golisp.Value {
	cur := form
	for {
		c, ok := golisp.GetCons(cur)
		if !ok || c.IsNil() {
			return cur
		}
		sym, ok := golisp.GetSymbol(c.Car)
		if !ok {
			return cur
		}
		v, found := golisp.Lookup(frame, sym.Name)
		if !found {
			return cur
		}
		callable, ok := golisp.GetCallable(v)
		if !ok || !callable.IsMacro() {
			return cur
		}
		args, properList := golisp.Elements(c.Cdr)
		if !properList {
			return in.errf("syntax error: improper argument list in macro call")
		}
		cur = in.call(frame, callable, args)
		if golisp.IsError(cur) || !full {
			return cur
		}
	}
}
