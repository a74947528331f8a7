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

// specialFormFn implements one special form's semantics, receiving the
// form's argument list (the cdr of the whole form) unevaluated.
type specialFormFn func(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value

// specialForms is filled in init because its handlers reach back into
// Eval, which reads this map; a package-level initialiser would form an
// initialization cycle.
var specialForms map[string]specialFormFn

func init() {
	specialForms = map[string]specialFormFn{
		"quote":      evalQuote,
		"quasiquote": evalQuasiquote,
		"eval":       evalEval,
		"define":     evalDefine,
		"set":        evalSet,
		"let":        evalLet,
		"if":         evalIf,
		"do":         evalDo,
		"lambda":     evalLambda,
		"macro":      evalMacro,
	}
}

func evalQuote(in *Interp, _ *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok {
		return in.errf("syntax error: improper argument list to quote")
	}
	if len(elems) != 1 {
		return in.errf("arity error: quote expects exactly 1 argument, got %d", len(elems))
	}
	return elems[0]
}

func evalQuasiquote(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) != 1 {
		return in.errf("syntax error: quasiquote expects exactly 1 argument")
	}
	return in.quasiquote(frame, elems[0])
}

func evalEval(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) != 1 {
		return in.errf("arity error: eval expects exactly 1 argument")
	}
	first := in.Eval(frame, elems[0])
	if golisp.IsError(first) {
		return first
	}
	return in.Eval(frame, first)
}

func evalDefine(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) != 2 {
		return in.errf("arity error: define expects exactly 2 arguments (name value)")
	}
	sym, ok := golisp.GetSymbol(elems[0])
	if !ok {
		return in.errf("type error: define's first argument must be a symbol")
	}
	val := in.Eval(frame, elems[1])
	if golisp.IsError(val) {
		return val
	}
	golisp.BindRoot(frame, sym.Name, val)
	return golisp.Nil()
}

func evalSet(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) == 0 {
		return in.errf("arity error: set expects at least one (name value) pair")
	}
	if _, isSym := golisp.GetSymbol(elems[0]); isSym {
		if len(elems) != 2 {
			return in.errf("arity error: set expects exactly 2 arguments (name value)")
		}
		return setOne(in, frame, elems[0], elems[1])
	}
	for _, pairForm := range elems {
		pair, ok := golisp.GetCons(pairForm)
		if !ok || pair.IsNil() {
			return in.errf("type error: set pair must be a (name value) list")
		}
		pairElems, ok := golisp.Elements(pair)
		if !ok || len(pairElems) != 2 {
			return in.errf("type error: set pair must have exactly 2 elements")
		}
		if res := setOne(in, frame, pairElems[0], pairElems[1]); golisp.IsError(res) {
			return res
		}
	}
	return golisp.Nil()
}

func setOne(in *Interp, frame *golisp.Frame, nameForm, valueForm golisp.Value) golisp.Value {
	sym, ok := golisp.GetSymbol(nameForm)
	if !ok {
		return in.errf("type error: set's name argument must be a symbol")
	}
	val := in.Eval(frame, valueForm)
	if golisp.IsError(val) {
		return val
	}
	if !golisp.SetExisting(frame, sym.Name, val) {
		frame.Bind(sym.Name, val)
	}
	return golisp.Nil()
}

func evalIf(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) < 2 || len(elems) > 3 {
		return in.errf("arity error: if expects 2 or 3 arguments, got %d", len(elems))
	}
	cond := in.Eval(frame, elems[0])
	if golisp.IsError(cond) {
		return cond
	}
	if golisp.Truthy(cond) {
		return in.Eval(frame, elems[1])
	}
	if len(elems) == 3 {
		return in.Eval(frame, elems[2])
	}
	return golisp.Nil()
}

func evalDo(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok {
		return in.errf("syntax error: improper argument list to do")
	}
	return evalSequence(in, frame, elems)
}

func evalSequence(in *Interp, frame *golisp.Frame, forms []golisp.Value) golisp.Value {
	var res golisp.Value = golisp.Nil()
	for _, f := range forms {
		res = in.Eval(frame, f)
		if golisp.IsError(res) {
			return res
		}
	}
	return res
}

func evalLet(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) == 0 {
		return in.errf("syntax error: let expects a binding list and a body")
	}
	bindings, ok := golisp.Elements(elems[0])
	if !ok || len(bindings)%2 != 0 {
		return in.errf("syntax error: let bindings must be an even-length flat list")
	}

	type binding struct {
		name string
		val  golisp.Value
	}
	bound := make([]binding, 0, len(bindings)/2)
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := golisp.GetSymbol(bindings[i])
		if !ok {
			return in.errf("type error: let binding name must be a symbol")
		}
		val := in.Eval(frame, bindings[i+1]) // evaluated in the parent env
		if golisp.IsError(val) {
			return val
		}
		bound = append(bound, binding{sym.Name, val})
	}

	child := in.Heap().NewFrame("let", frame)
	for _, b := range bound {
		child.Bind(b.name, b.val)
	}
	return in.pushFrame(child, func() golisp.Value {
		return evalSequence(in, child, elems[1:])
	})
}

func evalLambda(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	params, body, errVal := parseLambdaSpec(in, args)
	if errVal != nil {
		return errVal
	}
	restIndex := findRestIndex(params)
	captured := in.Heap().NewFrame("closure", frame)
	return in.Heap().NewUserFunction(params, restIndex, body, captured)
}

func evalMacro(in *Interp, frame *golisp.Frame, args golisp.Value) golisp.Value {
	params, body, errVal := parseLambdaSpec(in, args)
	if errVal != nil {
		return errVal
	}
	restIndex := findRestIndex(params)
	captured := in.Heap().NewFrame("macro", frame)
	return in.Heap().NewUserMacro(params, restIndex, body, captured)
}

// parseLambdaSpec parses the shared (params body...) shape of `lambda` and
// `macro`. body is wrapped as an implicit `do` so multi-form bodies work
// the same as a single form. errVal is non-nil on any malformed input.
func parseLambdaSpec(in *Interp, args golisp.Value) (params []*golisp.Symbol, body golisp.Value, errVal golisp.Value) {
	elems, ok := golisp.Elements(args)
	if !ok || len(elems) < 2 {
		return nil, nil, in.errf("syntax error: expected (params body...)")
	}
	paramElems, ok := golisp.Elements(elems[0])
	if !ok {
		return nil, nil, in.errf("syntax error: parameter list must be a proper list")
	}
	params = make([]*golisp.Symbol, 0, len(paramElems))
	for _, p := range paramElems {
		sym, ok := golisp.GetSymbol(p)
		if !ok {
			return nil, nil, in.errf("type error: parameter must be a symbol")
		}
		params = append(params, sym)
	}
	body = wrapDo(in, elems[1:])
	return params, body, nil
}

// wrapDo packages a body sequence as (do e1 e2 … en) so lambda/macro can
// store a single Value for their Body field.
func wrapDo(in *Interp, forms []golisp.Value) golisp.Value {
	if len(forms) == 1 {
		return forms[0]
	}
	elems := append([]golisp.Value{in.Heap().NewSymbol("do")}, forms...)
	return in.Heap().NewList(elems...)
}

// findRestIndex returns the zero-based position of the literal symbol '&'
// in params, or -1 if absent.
func findRestIndex(params []*golisp.Symbol) int {
	for i, p := range params {
		if p.Name == "&" {
			return i
		}
	}
	return -1
}
