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

// Arithmetic and comparison operators, pre-bound alongside the rest of
// the builtin surface for the shipped standard library to run against.

import "github.com/dstern-lab/golisp"

func biAdd(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	var sum int64
	for idx := range args {
		n, errVal := getNumber(i, "+", args, idx)
		if errVal != nil {
			return errVal
		}
		sum += n.Val
	}
	return i.Heap().NewNumber(sum)
}

func biSub(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) == 0 {
		return arityError(i, "-", 0, "at least 1")
	}
	first, errVal := getNumber(i, "-", args, 0)
	if errVal != nil {
		return errVal
	}
	if len(args) == 1 {
		return i.Heap().NewNumber(-first.Val)
	}
	acc := first.Val
	for idx := 1; idx < len(args); idx++ {
		n, errVal := getNumber(i, "-", args, idx)
		if errVal != nil {
			return errVal
		}
		acc -= n.Val
	}
	return i.Heap().NewNumber(acc)
}

func biMul(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	acc := int64(1)
	for idx := range args {
		n, errVal := getNumber(i, "*", args, idx)
		if errVal != nil {
			return errVal
		}
		acc *= n.Val
	}
	return i.Heap().NewNumber(acc)
}

func biDiv(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) < 1 {
		return arityError(i, "/", len(args), "at least 1")
	}
	first, errVal := getNumber(i, "/", args, 0)
	if errVal != nil {
		return errVal
	}
	if len(args) == 1 {
		if first.Val == 0 {
			return i.Heap().NewError("arithmetic error: division by zero")
		}
		return i.Heap().NewNumber(1 / first.Val)
	}
	acc := first.Val
	for idx := 1; idx < len(args); idx++ {
		n, errVal := getNumber(i, "/", args, idx)
		if errVal != nil {
			return errVal
		}
		if n.Val == 0 {
			return i.Heap().NewError("arithmetic error: division by zero")
		}
		acc /= n.Val
	}
	return i.Heap().NewNumber(acc)
}

// biEqual implements `=` as general structural equality, not just
// numeric comparison, so that `(= a a)` holds for any non-callable a.
func biEqual(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) < 2 {
		return arityError(i, "=", len(args), "at least 2")
	}
	for idx := 1; idx < len(args); idx++ {
		if !valuesEqual(args[0], args[idx]) {
			return i.Heap().NewBool(false)
		}
	}
	return i.Heap().NewBool(true)
}

func valuesEqual(a, b golisp.Value) bool {
	if golisp.IsNil(a) || golisp.IsNil(b) {
		return golisp.IsNil(a) && golisp.IsNil(b)
	}
	return a.Equal(b)
}

func biLess(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	return numCompare(i, "<", args, func(a, b int64) bool { return a < b })
}

func biGreater(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	return numCompare(i, ">", args, func(a, b int64) bool { return a > b })
}

func numCompare(i golisp.Interp, name string, args []golisp.Value, cmp func(a, b int64) bool) golisp.Value {
	if len(args) < 2 {
		return arityError(i, name, len(args), "at least 2")
	}
	prev, errVal := getNumber(i, name, args, 0)
	if errVal != nil {
		return errVal
	}
	for idx := 1; idx < len(args); idx++ {
		n, errVal := getNumber(i, name, args, idx)
		if errVal != nil {
			return errVal
		}
		if !cmp(prev.Val, n.Val) {
			return i.Heap().NewBool(false)
		}
		prev = n
	}
	return i.Heap().NewBool(true)
}
