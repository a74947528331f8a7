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

// Package builtin implements the built-in surface the evaluator requires
// to be pre-bound in the root frame: list primitives, type predicates,
// apply, macroexpand(-1), import, and the arithmetic/comparison operators
// the shipped standard library is written against.
package builtin

import (
	"fmt"

	"github.com/dstern-lab/golisp"
)

// arityError builds the arity-error value builtins return on a wrong
// argument count.
func arityError(i golisp.Interp, name string, got int, want string) golisp.Value {
	return i.Heap().NewError(fmt.Sprintf("arity error: %s expects %s argument(s), got %d", name, want, got))
}

// typeError builds the type-error value builtins return when an argument
// doesn't match the expected variant.
func typeError(i golisp.Interp, name string, pos int, obj golisp.Value) golisp.Value {
	return i.Heap().NewError(fmt.Sprintf("type error: %s argument %d has unexpected type %s", name, pos+1, describe(obj)))
}

func describe(obj golisp.Value) string {
	if golisp.IsNil(obj) {
		return "nil"
	}
	return obj.Kind().String()
}

// getCons returns args[pos] as a (possibly nil) *golisp.Cons.
func getCons(i golisp.Interp, name string, args []golisp.Value, pos int) (*golisp.Cons, golisp.Value) {
	c, ok := golisp.GetCons(args[pos])
	if !ok {
		return nil, typeError(i, name, pos, args[pos])
	}
	return c, nil
}

// getPair returns args[pos] as a non-nil *golisp.Cons.
func getPair(i golisp.Interp, name string, args []golisp.Value, pos int) (*golisp.Cons, golisp.Value) {
	c, errVal := getCons(i, name, args, pos)
	if errVal != nil {
		return nil, errVal
	}
	if c.IsNil() {
		return nil, typeError(i, name, pos, args[pos])
	}
	return c, nil
}

// getList returns args[pos]'s elements, requiring a proper list.
func getList(i golisp.Interp, name string, args []golisp.Value, pos int) ([]golisp.Value, golisp.Value) {
	elems, ok := golisp.Elements(args[pos])
	if !ok {
		return nil, typeError(i, name, pos, args[pos])
	}
	return elems, nil
}

func getNumber(i golisp.Interp, name string, args []golisp.Value, pos int) (*golisp.Number, golisp.Value) {
	n, ok := args[pos].(*golisp.Number)
	if !ok {
		return nil, typeError(i, name, pos, args[pos])
	}
	return n, nil
}

func getCallable(i golisp.Interp, name string, args []golisp.Value, pos int) (*golisp.Callable, golisp.Value) {
	c, ok := golisp.GetCallable(args[pos])
	if !ok {
		return nil, typeError(i, name, pos, args[pos])
	}
	return c, nil
}
