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

package builtin

// List cell and sequence primitives: cons, car, cdr, setcar, setcdr,
// list, append, len, find, last, copy.

import "github.com/dstern-lab/golisp"

func biCons(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 2 {
		return arityError(i, "cons", len(args), "2")
	}
	return i.Heap().NewCons(args[0], args[1])
}

func biCar(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "car", len(args), "1")
	}
	pair, errVal := getPair(i, "car", args, 0)
	if errVal != nil {
		return errVal
	}
	return pair.Car
}

func biCdr(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "cdr", len(args), "1")
	}
	pair, errVal := getPair(i, "cdr", args, 0)
	if errVal != nil {
		return errVal
	}
	return pair.Cdr
}

func biSetcar(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 2 {
		return arityError(i, "setcar", len(args), "2")
	}
	pair, errVal := getPair(i, "setcar", args, 0)
	if errVal != nil {
		return errVal
	}
	pair.Car = args[1]
	return golisp.Nil()
}

func biSetcdr(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 2 {
		return arityError(i, "setcdr", len(args), "2")
	}
	pair, errVal := getPair(i, "setcdr", args, 0)
	if errVal != nil {
		return errVal
	}
	pair.Cdr = args[1]
	return golisp.Nil()
}

func biList(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	return i.Heap().NewList(args...)
}

// biAppend concatenates every argument, each of which must be a proper
// list (including the last): a non-list argument in any position is a
// type error.
func biAppend(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) == 0 {
		return golisp.Nil()
	}
	var out []golisp.Value
	for idx := range args {
		elems, errVal := getList(i, "append", args, idx)
		if errVal != nil {
			return errVal
		}
		out = append(out, elems...)
	}
	var result golisp.Value = golisp.Nil()
	for idx := len(out) - 1; idx >= 0; idx-- {
		result = i.Heap().NewCons(out[idx], result)
	}
	return result
}

func biLen(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "len", len(args), "1")
	}
	elems, errVal := getList(i, "len", args, 0)
	if errVal != nil {
		return errVal
	}
	return i.Heap().NewNumber(int64(len(elems)))
}

// biFind applies the predicate argument to each element of the list
// argument, in order, and returns the first element it returns truthy
// for, or nil if none matches. This is the same apply-a-predicate
// convention `map`/`filter`/`reduce` use in stdlib/core.lisp, not a
// structural-equality lookup.
func biFind(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 2 {
		return arityError(i, "find", len(args), "2")
	}
	pred, errVal := getCallable(i, "find", args, 0)
	if errVal != nil {
		return errVal
	}
	elems, errVal := getList(i, "find", args, 1)
	if errVal != nil {
		return errVal
	}
	for _, e := range elems {
		res := i.Apply(frame, pred, []golisp.Value{e})
		if golisp.IsError(res) {
			return res
		}
		if golisp.Truthy(res) {
			return e
		}
	}
	return golisp.Nil()
}

func biLast(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "last", len(args), "1")
	}
	elems, errVal := getList(i, "last", args, 0)
	if errVal != nil {
		return errVal
	}
	if len(elems) == 0 {
		return golisp.Nil()
	}
	return elems[len(elems)-1]
}

// biCopy returns a shallow copy of a proper list's spine; atoms are
// returned unchanged.
func biCopy(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "copy", len(args), "1")
	}
	cons, ok := golisp.GetCons(args[0])
	if !ok {
		return args[0]
	}
	elems, properList := golisp.Elements(cons)
	if !properList {
		return typeError(i, "copy", 0, args[0])
	}
	return i.Heap().NewList(elems...)
}
