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

// type, print, read, apply, error, macroexpand(-1), import.

import (
	"fmt"
	"os"
	"strings"

	"github.com/dstern-lab/golisp"
	"github.com/dstern-lab/golisp/reader"
)

func biType(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "type", len(args), "1")
	}
	if golisp.IsNil(args[0]) {
		return i.Heap().NewString([]byte(golisp.KindNil.String()))
	}
	return i.Heap().NewString([]byte(args[0].Kind().String()))
}

func biPrint(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	var sb strings.Builder
	for idx, a := range args {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		_, _ = golisp.Print(&sb, a)
	}
	fmt.Fprintln(os.Stdout, sb.String())
	if len(args) == 0 {
		return golisp.Nil()
	}
	return args[len(args)-1]
}

// biRead parses one form out of a string argument, allocating through the
// same heap as the rest of the running interpreter.
func biRead(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "read", len(args), "1")
	}
	str, ok := args[0].(*golisp.Str)
	if !ok {
		return typeError(i, "read", 0, args[0])
	}
	val, ok := reader.New(i.Heap(), str.Bytes).ReadForm()
	if !ok {
		return golisp.Nil()
	}
	return val
}

// biApply flattens its trailing list argument: `(apply f x1 … xk last)`
// splices the elements of `last` if it is a proper list (nil adds no
// arguments), else passes `last` itself as the final argument, then calls
// f without re-evaluating a macro's result.
func biApply(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) < 2 {
		return arityError(i, "apply", len(args), "at least 2")
	}
	callable, errVal := getCallable(i, "apply", args, 0)
	if errVal != nil {
		return errVal
	}
	fixed := args[1 : len(args)-1]
	last := args[len(args)-1]
	tailElems, properList := golisp.Elements(last)
	var flat []golisp.Value
	flat = append(flat, fixed...)
	if properList {
		flat = append(flat, tailElems...)
	} else {
		flat = append(flat, last)
	}
	return i.Apply(frame, callable, flat)
}

func biError(i golisp.Interp, _ *golisp.Frame, args []golisp.Value) golisp.Value {
	var sb strings.Builder
	for idx, a := range args {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
	}
	if sb.Len() == 0 {
		return i.Heap().NewError("unspecified user error")
	}
	return i.Heap().NewError(sb.String())
}

func biMacroexpand1(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "macroexpand-1", len(args), "1")
	}
	return i.Macroexpand(frame, args[0], false)
}

func biMacroexpand(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "macroexpand", len(args), "1")
	}
	return i.Macroexpand(frame, args[0], true)
}

// biImport reads and evaluates every top-level form in the named file
// against the root frame, the same convention `core.lisp`/`iteration.lisp`
// are loaded with at startup.
func biImport(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
	if len(args) != 1 {
		return arityError(i, "import", len(args), "1")
	}
	str, ok := args[0].(*golisp.Str)
	if !ok {
		return typeError(i, "import", 0, args[0])
	}
	src, err := os.ReadFile(string(str.Bytes))
	if err != nil {
		return i.Heap().NewError(fmt.Sprintf("import error: %s", err))
	}
	forms := reader.New(i.Heap(), src).ReadAll()
	var res golisp.Value = golisp.Nil()
	for _, f := range forms {
		res = i.Eval(i.Root(), f)
		if golisp.IsError(res) {
			return res
		}
	}
	return res
}
