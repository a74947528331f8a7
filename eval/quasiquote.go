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

// quasiquote rewrites a quasiquoted template, producing a fresh cons
// spine that shares unmodified atoms with the template but never mutates
// it: each (unquote x) cell encountered anywhere in the structure is
// replaced by the result of evaluating x in frame. Nested quasiquote is
// not tracked specially and is therefore not supported.
func (in *Interp) quasiquote(frame *golisp.Frame, template golisp.Value) golisp.Value {
	cons, ok := golisp.GetCons(template)
	if !ok || cons.IsNil() {
		return template
	}

	if sym, ok := golisp.GetSymbol(cons.Car); ok && sym.Name == "unquote" {
		args, properList := golisp.Elements(cons.Cdr)
		if !properList || len(args) != 1 {
			return in.errf("syntax error: unquote expects exactly 1 argument")
		}
		return in.Eval(frame, args[0])
	}

	car := in.quasiquote(frame, cons.Car)
	if golisp.IsError(car) {
		return car
	}
	cdr := in.quasiquote(frame, cons.Cdr)
	if golisp.IsError(cdr) {
		return cdr
	}
	return in.heap.NewCons(car, cdr)
}
