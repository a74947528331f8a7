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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstern-lab/golisp"
)

func TestQuasiquoteScalarIsIdentity(t *testing.T) {
	in := New()
	frame := in.Root()
	n := in.Heap().NewNumber(7)
	assert.Equal(t, n, in.quasiquote(frame, n))
}

func TestQuasiquoteNilIsIdentity(t *testing.T) {
	in := New()
	res := in.quasiquote(in.Root(), golisp.Nil())
	assert.True(t, res.IsNil())
}

func TestQuasiquoteNestedListSubstitution(t *testing.T) {
	in := New()
	frame := in.Root()
	golisp.BindRoot(frame, "c", in.Heap().NewNumber(5))

	res := run(t, in, "`(a (b ,c) d)")
	require.False(t, golisp.IsError(res))
	assert.Equal(t, "(a (b 5) d)", res.String())
}

func TestQuasiquoteBuildsFreshSpineNotSharedWithTemplate(t *testing.T) {
	in := New()
	golisp.BindRoot(in.Root(), "c", in.Heap().NewNumber(1))

	template := run(t, in, "'(a ,c)")
	before := template.String()

	_ = in.quasiquote(in.Root(), template)

	assert.Equal(t, before, template.String())
}
