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

import "github.com/dstern-lab/golisp"

// interp is the minimal surface Install needs: enough to register
// builtins into the root frame without package builtin depending on
// package eval.
type interp interface {
	Heap() *golisp.Heap
	Root() *golisp.Frame
}

// Install binds every required built-in plus the nil/true/false constants
// into interp's root frame.
func Install(in interp) {
	heap := in.Heap()
	root := in.Root()

	bind := func(name string, fn golisp.BuiltinFn) {
		root.Bind(name, heap.NewBuiltinFunction(name, fn))
	}

	bind("cons", biCons)
	bind("car", biCar)
	bind("cdr", biCdr)
	bind("setcar", biSetcar)
	bind("setcdr", biSetcdr)
	bind("list", biList)
	bind("append", biAppend)
	bind("len", biLen)
	bind("find", biFind)
	bind("last", biLast)
	bind("copy", biCopy)
	bind("type", biType)
	bind("print", biPrint)
	bind("read", biRead)
	bind("apply", biApply)
	bind("error", biError)
	bind("macroexpand", biMacroexpand)
	bind("macroexpand-1", biMacroexpand1)
	bind("import", biImport)

	bind("=", biEqual)
	bind("<", biLess)
	bind(">", biGreater)
	bind("+", biAdd)
	bind("-", biSub)
	bind("*", biMul)
	bind("/", biDiv)

	root.Bind("nil", golisp.Nil())
	root.Bind("true", heap.NewBool(true))
	root.Bind("false", heap.NewBool(false))
}
