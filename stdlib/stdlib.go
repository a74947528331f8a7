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

// Package stdlib embeds the Lisp-level standard library, shipped as
// ordinary source text, and loads it into a freshly built interpreter
// before any user source runs.
package stdlib

import (
	_ "embed"

	"github.com/dstern-lab/golisp"
	"github.com/dstern-lab/golisp/reader"
)

//go:embed core.lisp
var core string

//go:embed iteration.lisp
var iteration string

// interp is the minimal surface Load needs from the evaluator.
type interp interface {
	Eval(frame *golisp.Frame, obj golisp.Value) golisp.Value
	Heap() *golisp.Heap
	Root() *golisp.Frame
}

// Load reads and evaluates core.lisp then iteration.lisp against in's root
// frame, the same read+eval entry point ordinary user files go through.
func Load(in interp) golisp.Value {
	for _, src := range []string{core, iteration} {
		if res := loadSource(in, src); golisp.IsError(res) {
			return res
		}
	}
	return golisp.Nil()
}

func loadSource(in interp, src string) golisp.Value {
	forms := reader.ReadAllString(in.Heap(), src)
	var res golisp.Value = golisp.Nil()
	for _, f := range forms {
		res = in.Eval(in.Root(), f)
		if golisp.IsError(res) {
			return res
		}
	}
	return res
}
