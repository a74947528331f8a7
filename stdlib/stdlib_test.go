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

package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstern-lab/golisp"
	"github.com/dstern-lab/golisp/builtin"
	"github.com/dstern-lab/golisp/eval"
	"github.com/dstern-lab/golisp/reader"
	"github.com/dstern-lab/golisp/stdlib"
)

// newLoaded builds an interpreter with the full builtin surface plus the
// embedded core.lisp/iteration.lisp standard library loaded into its root
// frame, the same bootstrap sequence cmd/golisp/main.go runs.
func newLoaded(t *testing.T) *eval.Interp {
	t.Helper()
	in := eval.New()
	builtin.Install(in)
	require.False(t, golisp.IsError(stdlib.Load(in)))
	return in
}

func run(t *testing.T, in *eval.Interp, src string) golisp.Value {
	t.Helper()
	forms := reader.ReadAllString(in.Heap(), src)
	var res golisp.Value = golisp.Nil()
	for _, f := range forms {
		res = in.EvalTopLevel(f)
	}
	return res
}

func TestLoadSucceeds(t *testing.T) {
	newLoaded(t)
}

func TestNot(t *testing.T) {
	in := newLoaded(t)
	assert.Equal(t, "false", run(t, in, "(not true)").String())
	assert.Equal(t, "true", run(t, in, "(not false)").String())
	assert.Equal(t, "true", run(t, in, "(not nil)").String())
}

func TestAndShortCircuitsAndReturnsLastTruthy(t *testing.T) {
	in := newLoaded(t)
	assert.Equal(t, "false", run(t, in, "(and true false)").String())
	assert.Equal(t, "3", run(t, in, "(and 1 2 3)").String())
	assert.Equal(t, "true", run(t, in, "(and)").String())
}

func TestOrReturnsFirstTruthy(t *testing.T) {
	in := newLoaded(t)
	assert.Equal(t, "1", run(t, in, "(or false 1 2)").String())
	assert.Equal(t, "false", run(t, in, "(or)").String())
	assert.Equal(t, "false", run(t, in, "(or false false)").String())
}

func TestWhenAndUnless(t *testing.T) {
	in := newLoaded(t)
	assert.Equal(t, "5", run(t, in, "(when true 5)").String())
	assert.Equal(t, "false", run(t, in, "(when false 5)").String())
	assert.Equal(t, "5", run(t, in, "(unless false 5)").String())
	assert.Equal(t, "false", run(t, in, "(unless true 5)").String())
}

func TestMapReduceFilter(t *testing.T) {
	in := newLoaded(t)
	res := run(t, in, "(map (lambda (x) (* x 2)) (list 1 2 3))")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "(2 4 6)", res.String())

	res = run(t, in, "(reduce (lambda (acc x) (+ acc x)) 0 (list 1 2 3 4))")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "10", res.String())

	res = run(t, in, "(filter (lambda (x) (> x 2)) (list 1 2 3 4))")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "(3 4)", res.String())
}

func TestDotimesFromEmbeddedIterationLisp(t *testing.T) {
	in := newLoaded(t)
	run(t, in, "(define x 0)")
	run(t, in, "(dotimes (define x (+ x 1)) 5)")
	res := run(t, in, "x")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "5", res.String())
}

func TestWhileFromEmbeddedIterationLisp(t *testing.T) {
	in := newLoaded(t)
	run(t, in, "(define n 0)")
	res := run(t, in, "(while (< n 3) (define n (+ n 1)))")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "3", run(t, in, "n").String())
}
